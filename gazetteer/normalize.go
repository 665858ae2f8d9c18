package gazetteer

import "strings"

// Normalize canonicalizes a raw place name into a lookup key: lowercase,
// leading/trailing whitespace trimmed, internal whitespace runs collapsed to
// single spaces. Deterministic and side-effect free; an empty input yields an
// empty key, which resolvers treat as "not found".
//
// strings.ToLower is Unicode-aware, so names like "Zürich" normalize
// correctly rather than being corrupted by byte-level ASCII folding.
func Normalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// ContainsFold reports whether needle occurs inside haystack after
// normalization. It is an auxiliary containment signal for callers that want
// substring matching independent of edit distance; it does not participate
// in fuzzy ranking.
func ContainsFold(haystack, needle string) bool {
	n := Normalize(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Normalize(haystack), n)
}
