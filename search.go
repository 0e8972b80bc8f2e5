package ucum

import (
	"regexp"
	"sort"
	"strings"
)

// SearchMode selects how Search's query is matched against a registry's
// atom codes and display names.
type SearchMode int

const (
	// SearchSubstring matches query as a case-sensitive substring.
	SearchSubstring SearchMode = iota
	// SearchCaseInsensitive matches query as a case-insensitive substring.
	SearchCaseInsensitive
	// SearchFuzzy ranks atoms by Levenshtein distance from query and
	// returns the closest matches, for "did you mean" suggestions.
	SearchFuzzy
	// SearchRegex treats query as a regular expression matched against the
	// atom code.
	SearchRegex
)

// SearchOptions configures Search.
type SearchOptions struct {
	Mode     SearchMode
	Property string // restrict to this property classifier, if non-empty
	Limit    int    // 0 means unlimited
}

// SearchResult is one match, with the edit distance populated only in
// SearchFuzzy mode (0 in every other mode, including an exact match).
type SearchResult struct {
	Code     string
	Distance int
}

// Search looks up atoms in r matching query under opts.
func Search(r *Registry, query string, opts SearchOptions) []SearchResult {
	var candidates []*Atom
	r.IterAtoms(func(a *Atom) {
		if opts.Property != "" && a.Property != opts.Property {
			return
		}
		candidates = append(candidates, a)
	})

	var results []SearchResult
	switch opts.Mode {
	case SearchRegex:
		re, err := regexp.Compile(query)
		if err != nil {
			return nil
		}
		for _, a := range candidates {
			if re.MatchString(a.Code) {
				results = append(results, SearchResult{Code: a.Code})
			}
		}

	case SearchCaseInsensitive:
		q := strings.ToLower(query)
		for _, a := range candidates {
			if strings.Contains(strings.ToLower(a.Code), q) || strings.Contains(strings.ToLower(a.DisplayName), q) {
				results = append(results, SearchResult{Code: a.Code})
			}
		}

	case SearchFuzzy:
		for _, a := range candidates {
			results = append(results, SearchResult{Code: a.Code, Distance: levenshtein(query, a.Code)})
		}
		sort.Slice(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })

	default: // SearchSubstring
		for _, a := range candidates {
			if strings.Contains(a.Code, query) || strings.Contains(a.DisplayName, query) {
				results = append(results, SearchResult{Code: a.Code})
			}
		}
	}

	if opts.Mode != SearchFuzzy {
		sort.Slice(results, func(i, j int) bool { return results[i].Code < results[j].Code })
	}
	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results
}

// suggestClosest returns the single closest registered atom code to code by
// Levenshtein distance, used to populate Error.Suggest on an
// ErrUnknownUnit/ErrUnknownPrefix result. Returns "" if the registry has no
// atoms within a distance worth suggesting.
func suggestClosest(r *Registry, code string) string {
	const maxUsefulDistance = 3
	best := ""
	bestDist := maxUsefulDistance + 1
	r.IterAtoms(func(a *Atom) {
		d := levenshtein(code, a.Code)
		if d < bestDist {
			bestDist = d
			best = a.Code
		}
	})
	if bestDist > maxUsefulDistance {
		return ""
	}
	return best
}

// levenshtein computes the classic edit distance between a and b using a
// two-row dynamic-programming table.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
