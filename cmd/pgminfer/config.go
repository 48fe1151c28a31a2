package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arcbelief/pgmcore/fgr"
)

// RunDescription is the YAML schema for a `pgminfer run` input file: a
// full factor graph plus evidence and backend tuning, so a graph can be
// described once on disk and run with either backend.
type RunDescription struct {
	VariableGroups []VariableGroupSpec `yaml:"variable_groups"`
	FactorGroups   []FactorGroupSpec   `yaml:"factor_groups"`
	Evidence       map[string][]float64 `yaml:"evidence"`

	Backend       string  `yaml:"backend"` // "bp" or "sdlp"
	Temperature   float64 `yaml:"temperature"`
	Damping       float64 `yaml:"damping"`
	StepSize      float64 `yaml:"step_size"`
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
}

// VariableGroupSpec mirrors fgr.VariableGroup for YAML decoding.
type VariableGroupSpec struct {
	Name      string `yaml:"name"`
	NumStates []int  `yaml:"num_states"`
}

// EdgeSpec mirrors fgr.VarRef for YAML decoding.
type EdgeSpec struct {
	Group string `yaml:"group"`
	Index int    `yaml:"index"`
}

// FactorGroupSpec mirrors fgr.FactorGroup for YAML decoding.
type FactorGroupSpec struct {
	Name          string         `yaml:"name"`
	Kind          string         `yaml:"kind"` // "enumerated", "pairwise", "or", "and"
	Edges         [][]EdgeSpec   `yaml:"edges"`
	LogPotentials []float64      `yaml:"log_potentials"`
}

// LoadRunDescription reads and decodes a RunDescription from path.
func LoadRunDescription(path string) (*RunDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rd RunDescription
	if err := yaml.Unmarshal(data, &rd); err != nil {
		return nil, err
	}
	return &rd, nil
}

func parseKind(s string) (fgr.FactorKind, error) {
	switch s {
	case "enumerated":
		return fgr.KindEnumerated, nil
	case "pairwise":
		return fgr.KindPairwise, nil
	case "or":
		return fgr.KindOR, nil
	case "and":
		return fgr.KindAND, nil
	default:
		return 0, errUnknownKind(s)
	}
}

// Compile converts the YAML-decoded RunDescription into a compiled fgr.FGR.
func (rd *RunDescription) Compile() (*fgr.FGR, error) {
	vgs := make([]fgr.VariableGroup, len(rd.VariableGroups))
	for i, v := range rd.VariableGroups {
		vgs[i] = fgr.VariableGroup{Name: v.Name, NumStates: v.NumStates}
	}

	fgs := make([]fgr.FactorGroup, len(rd.FactorGroups))
	for i, fgSpec := range rd.FactorGroups {
		kind, err := parseKind(fgSpec.Kind)
		if err != nil {
			return nil, err
		}
		edges := make([][]fgr.VarRef, len(fgSpec.Edges))
		for j, e := range fgSpec.Edges {
			refs := make([]fgr.VarRef, len(e))
			for k, r := range e {
				refs[k] = fgr.VarRef{Group: r.Group, Index: r.Index}
			}
			edges[j] = refs
		}
		fgs[i] = fgr.FactorGroup{Name: fgSpec.Name, Kind: kind, Edges: edges, LogPotentials: fgSpec.LogPotentials}
	}

	return fgr.Compile(vgs, fgs)
}
