package fgr

// FactorKind tags the kernel family a FactorGroup's factors share. Spec
// §9's REDESIGN FLAGS call for a tagged-variant registry in place of
// dynamic dispatch; FactorKind is that tag.
type FactorKind int

const (
	// KindEnumerated factors carry an explicit (configuration, log-value)
	// table over the Cartesian product of their connected variables.
	KindEnumerated FactorKind = iota
	// KindPairwise factors carry a dense k1×k2 log-potential matrix;
	// every factor in the group shares (k1,k2).
	KindPairwise
	// KindOR factors impose child = OR(parents) over binary variables.
	KindOR
	// KindAND factors impose child = AND(parents) over binary variables.
	KindAND
)

// String renders a FactorKind for diagnostics.
func (k FactorKind) String() string {
	switch k {
	case KindEnumerated:
		return "enumerated"
	case KindPairwise:
		return "pairwise"
	case KindOR:
		return "or"
	case KindAND:
		return "and"
	default:
		return "unknown"
	}
}

// VariableGroup is a uniform-shape batch of categorical variables, as
// supplied by the (out-of-scope) high-level construction layer.
type VariableGroup struct {
	// Name identifies the group; must be unique across a Compile call.
	Name string
	// NumStates[i] is the number of discrete states k of the i-th
	// variable in this group. k must be >= 2.
	NumStates []int
}

// VarRef addresses one variable by (group name, local index within group).
type VarRef struct {
	Group string
	Index int
}

// FactorGroup is a homogeneous batch of factors of one FactorKind, as
// supplied by the (out-of-scope) high-level construction layer.
type FactorGroup struct {
	// Name identifies the group; must be unique across a Compile call.
	Name string
	Kind FactorKind

	// Edges[f] lists, in stable slot order, the variables factor f
	// connects to. For KindPairwise, len(Edges[f]) must be 2 for every
	// f. For KindOR/KindAND, the last slot is the child and the
	// preceding slots are parents; len(Edges[f]) must be >= 2.
	Edges [][]VarRef

	// LogPotentials holds the group's baseline log-potential values.
	// Semantics depend on Kind:
	//   KindEnumerated: concatenation, per factor, of configCount_f
	//     values in row-major configuration order (slot 0 varies
	//     slowest); after Compile, CompiledGroup.ConfigRange locates
	//     factor f's slice.
	//   KindPairwise: concatenation, per factor, of k1*k2 values in
	//     row-major (a,b) order.
	//   KindOR / KindAND: ignored; must be nil. The kernel derives the
	//     implicit -inf structure analytically and never materializes
	//     it (spec §3 invariant).
	LogPotentials []float64
}
