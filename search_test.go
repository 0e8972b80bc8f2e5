package ucum

import "testing"

func TestSearchSubstring(t *testing.T) {
	results := Search(DefaultRegistry(), "mol", SearchOptions{Mode: SearchSubstring})
	found := false
	for _, r := range results {
		if r.Code == "mol" {
			found = true
		}
	}
	if !found {
		t.Errorf("Search(%q) = %v, want to contain %q", "mol", results, "mol")
	}
}

func TestSearchPropertyFilter(t *testing.T) {
	results := Search(DefaultRegistry(), "", SearchOptions{Mode: SearchSubstring, Property: "pressure"})
	if len(results) == 0 {
		t.Fatal("Search restricted to property \"pressure\": expected at least one result")
	}
}

func TestSearchFuzzyOrdersByDistance(t *testing.T) {
	results := Search(DefaultRegistry(), "gram", SearchOptions{Mode: SearchFuzzy, Limit: 5})
	if len(results) == 0 {
		t.Fatal("SearchFuzzy: expected results")
	}
	for i := 1; i < len(results); i++ {
		if results[i].Distance < results[i-1].Distance {
			t.Fatalf("SearchFuzzy results not sorted by distance: %v", results)
		}
	}
}

func TestSearchRegex(t *testing.T) {
	results := Search(DefaultRegistry(), "^deg", SearchOptions{Mode: SearchRegex})
	for _, r := range results {
		if len(r.Code) < 3 || r.Code[:3] != "deg" {
			t.Errorf("SearchRegex(%q) matched %q unexpectedly", "^deg", r.Code)
		}
	}
}

func TestLevenshteinIdentical(t *testing.T) {
	if got := levenshtein("kg", "kg"); got != 0 {
		t.Errorf("levenshtein(kg, kg) = %d, want 0", got)
	}
}

func TestLevenshteinSingleEdit(t *testing.T) {
	if got := levenshtein("kg", "kgs"); got != 1 {
		t.Errorf("levenshtein(kg, kgs) = %d, want 1", got)
	}
}

func TestSuggestClosestFindsTypo(t *testing.T) {
	got := suggestClosest(DefaultRegistry(), "gg")
	if got == "" {
		t.Fatalf("suggestClosest(%q): expected a suggestion, got none", "gg")
	}
	if levenshtein("gg", got) > 3 {
		t.Errorf("suggestClosest(%q) = %q, distance too large", "gg", got)
	}
}

func TestSuggestClosestNoneWithinRange(t *testing.T) {
	got := suggestClosest(DefaultRegistry(), "zzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	if got != "" {
		t.Errorf("suggestClosest on a wildly unrelated string = %q, want \"\"", got)
	}
}
