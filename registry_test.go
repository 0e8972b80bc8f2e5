package ucum

import "testing"

func TestNewRegistryBuildsWithoutError(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("NewRegistry: unexpected error: %v", err)
	}
	if _, ok := r.FindAtom("g"); !ok {
		t.Error("expected base atom \"g\" to be registered")
	}
	if _, ok := r.FindPrefix("k"); !ok {
		t.Error("expected prefix \"k\" to be registered")
	}
}

func TestRegistrySplitPrefixPrefersLongestMatch(t *testing.T) {
	r := DefaultRegistry()
	split, ok := r.splitPrefix("dag")
	if !ok {
		t.Fatal("splitPrefix(\"dag\"): expected a match")
	}
	if split.prefix.Code != "da" || split.atom.Code != "g" {
		t.Errorf("splitPrefix(\"dag\") = prefix=%q atom=%q, want prefix=da atom=g", split.prefix.Code, split.atom.Code)
	}
}

func TestRegistrySplitPrefixRejectsNonMetricAtom(t *testing.T) {
	r := DefaultRegistry()
	if _, ok := r.splitPrefix("kmin"); ok {
		t.Error("splitPrefix(\"kmin\"): min is not metric, expected no match")
	}
}

func TestRegistrySplitPrefixRejectsBracketedAtom(t *testing.T) {
	r := DefaultRegistry()
	if _, ok := r.splitPrefix("[klb_av]"); ok {
		t.Error("splitPrefix on bracketed code: expected no match")
	}
}

func TestRegistryPropertyIndex(t *testing.T) {
	r := DefaultRegistry()
	codes, ok := r.PropertyIndex("mass")
	if !ok || len(codes) == 0 {
		t.Fatal("PropertyIndex(\"mass\"): expected at least one atom")
	}
	found := false
	for _, c := range codes {
		if c == "g" {
			found = true
		}
	}
	if !found {
		t.Errorf("PropertyIndex(\"mass\") = %v, want to contain \"g\"", codes)
	}
}

func TestRegistryAtomCodesAreUnique(t *testing.T) {
	// DefaultRegistry's own essence table must never register the same
	// code twice; this is a regression guard on essence_data.go, not a
	// test of duplicate-handling logic (construction already proves that).
	seen := make(map[string]bool)
	DefaultRegistry().IterAtoms(func(a *Atom) {
		if seen[a.Code] {
			t.Errorf("duplicate atom code in essence table: %q", a.Code)
		}
		seen[a.Code] = true
	})
}
