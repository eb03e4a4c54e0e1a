package utils

import "strings"

// JoinWithConjunction renders items the way you'd say them out loud:
// "A", "A and B", "A, B, and C". The conjunction is usually "and" or "or".
// items must be non-empty; an empty call is a bug in the caller and panics.
func JoinWithConjunction(items []string, conjunction string) string {
	switch len(items) {
	case 0:
		panic("JoinWithConjunction called with no items")
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conjunction + " " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", " + conjunction + " " + items[len(items)-1]
	}
}

// DedupPreserveOrder drops repeated values, keeping the first occurrence of
// each in its original position.
func DedupPreserveOrder[T comparable](items []T) []T {
	seen := make(map[T]bool, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
