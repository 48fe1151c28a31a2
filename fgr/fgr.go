package fgr

// IncidentEdge is one entry of a variable's reverse-incidence list: the
// (group, factor, slot) triple touching the variable, plus the offset of
// that edge's message pair within the shared arena.ArenaState buffers.
type IncidentEdge struct {
	GroupIdx   int // index into FGR.Groups
	FactorIdx  int // factor index within that group
	Slot       int // slot index within that factor
	EdgeOffset int // base offset into F2V/V2F; message spans [off, off+k)
}

// CompiledGroup is one FactorGroup after compilation: all addressing is by
// dense integer id and flat slice offset, ready for branch-free kernels.
type CompiledGroup struct {
	Name       string
	Kind       FactorKind
	NumFactors int

	// FactorSlotOffset has length NumFactors+1; factor f's slots span
	// [FactorSlotOffset[f], FactorSlotOffset[f+1]) in VarIDs/EdgeOffset.
	FactorSlotOffset []int
	// VarIDs[s] is the dense variable id connected at flattened slot s.
	VarIDs []int
	// EdgeOffset[s] is slot s's base offset into the arena's F2V/V2F
	// arrays; the message there spans [EdgeOffset[s], EdgeOffset[s]+k).
	EdgeOffset []int

	// FactorConfigOffset (KindEnumerated only) has length NumFactors+1;
	// factor f's rows span [FactorConfigOffset[f], FactorConfigOffset[f+1])
	// in LogPotentials, in row-major configuration order.
	FactorConfigOffset []int

	// PairwiseK0/PairwiseK1 (KindPairwise only): the uniform shape shared
	// by every factor in the group.
	PairwiseK0, PairwiseK1 int

	// LogPotentials is the group's log-potential table (nil for
	// KindOR/KindAND, whose -inf structure is never materialized).
	LogPotentials []float64
}

// Slots returns factor f's slot range [lo, hi) into VarIDs/EdgeOffset.
func (g *CompiledGroup) Slots(f int) (lo, hi int) {
	return g.FactorSlotOffset[f], g.FactorSlotOffset[f+1]
}

// ConfigRange (KindEnumerated only) returns factor f's row range [lo, hi)
// into LogPotentials.
func (g *CompiledGroup) ConfigRange(f int) (lo, hi int) {
	return g.FactorConfigOffset[f], g.FactorConfigOffset[f+1]
}

// FGR is the immutable, flat, index-based compiled factor graph. It is
// built once by Compile and shared read-only across every inference
// session that runs against it.
type FGR struct {
	// VarOffset has length NumVars+1; variable v's evidence/belief slot
	// spans [VarOffset[v], VarOffset[v+1]).
	VarOffset []int
	NumVars   int
	// VarTotal == VarOffset[NumVars], the total evidence-array length.
	VarTotal int

	// GroupVarStart/GroupVarCount map a variable group's name to its
	// dense id range [start, start+count).
	GroupVarStart map[string]int
	GroupVarCount map[string]int

	Groups    []CompiledGroup
	GroupIdx  map[string]int // factor group name -> index into Groups

	// EdgeTotal == sum of k_e over every edge; F2V/V2F arena arrays have
	// exactly this length.
	EdgeTotal int

	// Incidence is the CSR reverse-mapping from variable to incident
	// edges: variable v's edges span
	// Incidence[IncidenceOffset[v]:IncidenceOffset[v+1]].
	IncidenceOffset []int
	Incidence       []IncidentEdge

	// MaxDegree is the largest number of incident edges any variable has;
	// used by sdlpd's documented default step size (spec §9 open
	// question): eta = temperature / MaxDegree.
	MaxDegree int
}

// VarSize returns variable v's number of discrete states k.
func (f *FGR) VarSize(v int) int {
	return f.VarOffset[v+1] - f.VarOffset[v]
}

// VariableID resolves a (group, local index) reference to a dense id.
func (f *FGR) VariableID(group string, index int) (int, error) {
	start, ok := f.GroupVarStart[group]
	if !ok {
		return 0, ErrUnknownVariableGroup
	}
	if index < 0 || index >= f.GroupVarCount[group] {
		return 0, ErrVariableIndexRange
	}
	return start + index, nil
}

// Degree returns the number of incident edges of variable v.
func (f *FGR) Degree(v int) int {
	return f.IncidenceOffset[v+1] - f.IncidenceOffset[v]
}

// IncidentEdges returns variable v's incident edges.
func (f *FGR) IncidentEdges(v int) []IncidentEdge {
	return f.Incidence[f.IncidenceOffset[v]:f.IncidenceOffset[v+1]]
}
