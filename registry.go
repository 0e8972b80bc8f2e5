package ucum

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry is the immutable compiled table of atoms and prefixes.
// Construction happens once; every returned reference is stable for the
// Registry's lifetime, and reads are unsynchronised and race-free because
// no writes occur after NewRegistry returns (spec.md §4.1, §5).
type Registry struct {
	atoms    map[string]*Atom
	prefixes map[string]*Prefix
	// sortedPrefixCodes lists prefix codes longest-first. The splitter (S)
	// does not read it: splitPrefix tries candidate lengths 3, 2, 1
	// directly, which gives the same longest-first order ("da" before "d").
	sortedPrefixCodes []string
	// byProperty groups atom codes under their classifier string, built
	// once at construction for O(1) amortised property_index lookups.
	byProperty map[string][]string
}

// NewRegistry builds the compiled registry from the essence tables in
// essence_data.go. A duplicate atom or prefix code is a fatal build-time
// error, returned rather than panicked, per spec.md §4.1. Pass a non-nil
// *zap.Logger to receive structured diagnostics during the build; nil
// uses a no-op logger.
func NewRegistry(logger *zap.Logger) (*Registry, error) {
	log := buildLogger(logger)

	r := &Registry{
		atoms:      make(map[string]*Atom),
		prefixes:   make(map[string]*Prefix),
		byProperty: make(map[string][]string),
	}

	for _, a := range buildEssenceAtoms() {
		a := a
		if _, dup := r.atoms[a.Code]; dup {
			return nil, fmt.Errorf("ucum: duplicate atom code %q", a.Code)
		}
		r.atoms[a.Code] = &a
		r.byProperty[a.Property] = append(r.byProperty[a.Property], a.Code)
		log.Debug("registered atom", zap.String("code", a.Code), zap.String("property", a.Property))
	}

	for _, p := range buildEssencePrefixes() {
		p := p
		if _, dup := r.prefixes[p.Code]; dup {
			return nil, fmt.Errorf("ucum: duplicate prefix code %q", p.Code)
		}
		r.prefixes[p.Code] = &p
		log.Debug("registered prefix", zap.String("code", p.Code))
	}

	for prop := range r.byProperty {
		sort.Strings(r.byProperty[prop])
	}

	codes := make([]string, 0, len(r.prefixes))
	for c := range r.prefixes {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return len(codes[i]) > len(codes[j]) })
	r.sortedPrefixCodes = codes

	log.Info("registry built", zap.Int("atoms", len(r.atoms)), zap.Int("prefixes", len(r.prefixes)))
	return r, nil
}

// MustNewRegistry builds the default registry and panics on a build-time
// error (duplicate codes in essence_data.go, which would be a programming
// error in this repository, not a caller mistake). Used to initialise the
// package-level defaultRegistry.
func MustNewRegistry() *Registry {
	r, err := NewRegistry(nil)
	if err != nil {
		panic(err)
	}
	return r
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the package-level registry used by the package-
// level convenience functions (Validate, Analyse, Convert, ...). It is
// built exactly once.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = MustNewRegistry()
	})
	return defaultRegistry
}

// FindAtom performs an exact, case-sensitive lookup.
func (r *Registry) FindAtom(code string) (*Atom, bool) {
	a, ok := r.atoms[code]
	return a, ok
}

// FindPrefix performs an exact, case-sensitive lookup.
func (r *Registry) FindPrefix(code string) (*Prefix, bool) {
	p, ok := r.prefixes[code]
	return p, ok
}

// IterAtoms calls fn for every registered atom, in code order.
func (r *Registry) IterAtoms(fn func(*Atom)) {
	codes := make([]string, 0, len(r.atoms))
	for c := range r.atoms {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	for _, c := range codes {
		fn(r.atoms[c])
	}
}

// IterPrefixes calls fn for every registered prefix, in code order.
func (r *Registry) IterPrefixes(fn func(*Prefix)) {
	codes := make([]string, 0, len(r.prefixes))
	for c := range r.prefixes {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	for _, c := range codes {
		fn(r.prefixes[c])
	}
}

// PropertyIndex returns the codes of every atom registered under the
// given property classifier, or (nil, false) if the property is unknown.
func (r *Registry) PropertyIndex(property string) ([]string, bool) {
	codes, ok := r.byProperty[property]
	return codes, ok
}

// splitResult pairs a matched prefix with the metric atom it scales, the
// outcome of the prefix splitter (S). Grounded on the teacher's
// quantity.go, which paired a Prefix with a Measure the same way; here it
// pairs a Prefix with the Atom the evaluator actually needs.
type splitResult struct {
	prefix *Prefix
	atom   *Atom
}

// splitPrefix implements the prefix splitter (S) of spec.md §4.2: for
// lengths 3, 2, 1 (longest first), try to peel a known prefix off the
// front of code and find a metric atom in the remainder. Bracketed atoms
// and atoms not starting with a letter are opaque to splitting.
func (r *Registry) splitPrefix(code string) (splitResult, bool) {
	if code == "" || strings.HasPrefix(code, "[") {
		return splitResult{}, false
	}
	first := rune(code[0])
	if !(first >= 'A' && first <= 'Z') && !(first >= 'a' && first <= 'z') {
		return splitResult{}, false
	}

	for _, plen := range []int{3, 2, 1} {
		if plen >= len(code) {
			continue
		}
		candidate := code[:plen]
		prefix, ok := r.prefixes[candidate]
		if !ok {
			continue
		}
		rest := code[plen:]
		atom, ok := r.atoms[rest]
		if !ok || !atom.IsMetric {
			continue
		}
		return splitResult{prefix: prefix, atom: atom}, true
	}
	return splitResult{}, false
}
