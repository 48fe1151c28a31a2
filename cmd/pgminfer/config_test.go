package main

import "testing"

func TestLoadRunDescription_CompilesChain(t *testing.T) {
	rd, err := LoadRunDescription("testdata/chain.yaml")
	if err != nil {
		t.Fatalf("LoadRunDescription: %v", err)
	}
	if rd.Backend != "bp" {
		t.Fatalf("backend = %q, want bp", rd.Backend)
	}

	f, err := rd.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if f.NumVars != 2 {
		t.Fatalf("NumVars = %d, want 2", f.NumVars)
	}
}

func TestParseKind_RejectsUnknown(t *testing.T) {
	if _, err := parseKind("nonsense"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
