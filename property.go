package ucum

import "sort"

// Property identifies the physical quantity an atom measures (mass,
// pressure, level, arbitrary, ...). Unlike the teacher's measure.go, whose
// Measure enum was a small closed set of its own SI quantities, UCUM's
// essence table carries an open set of classifier strings (see
// essence_data.go), so Property wraps a string rather than an int constant
// set; ListProperties below gives callers the closed set actually present
// in a given registry, which plays the role the teacher's Measure.String()
// table played.
type Property string

// ListProperties returns every distinct property classifier registered in
// r, sorted, for discovery/search UIs (spec.md §6 search/explain surface).
func ListProperties(r *Registry) []string {
	seen := make(map[string]struct{})
	r.IterAtoms(func(a *Atom) { seen[a.Property] = struct{}{} })
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// AtomsForProperty returns the atom codes registered under property, or an
// ErrUnknownProperty error if no atom carries that classifier.
func AtomsForProperty(r *Registry, property string) ([]string, error) {
	codes, ok := r.PropertyIndex(property)
	if !ok {
		return nil, &Error{Kind: ErrUnknownProperty, Code: property}
	}
	return codes, nil
}
