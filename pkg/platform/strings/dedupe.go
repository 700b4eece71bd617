// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// DedupeAndTrimLower removes duplicates and empty strings from a slice,
// trimming and lowercasing each element. Order is preserved.
//
// Example:
//
//	DedupeAndTrimLower([]string{"  SET_TOWN ", "add_thought", "Set_Town", ""})
//	// Returns: []string{"set_town", "add_thought"}
func DedupeAndTrimLower(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.ToLower(strings.TrimSpace(v))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// SplitList splits a comma-separated list and normalizes it with
// DedupeAndTrimLower. An empty input yields an empty, non-nil slice.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return DedupeAndTrimLower(strings.Split(s, ","))
}
