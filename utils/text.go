// Package utils provides utility functions for the application.
package utils

import (
	"strings"
)

// Normalize canonicalizes free text for comparisons: non-breaking spaces
// become ordinary spaces, en/em dashes become hyphens, the result is
// trimmed, lowercased, and internal whitespace runs collapse to one space.
// Empty input yields the empty string. Idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "–", "-")
	s = strings.ReplaceAll(s, "—", "-")
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// ContainsNormalized reports whether the normalized haystack contains the
// normalized needle. An empty needle never matches.
func ContainsNormalized(haystack, needle string) bool {
	n := Normalize(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Normalize(haystack), n)
}

// PathSeparator joins waypoint labels in displayed route paths.
const PathSeparator = " → "

// ReversePath reverses a route path string like "A → B → C" so the
// waypoints read C → B → A. Single-waypoint paths are returned unchanged.
func ReversePath(path string) string {
	if path == "" {
		return ""
	}
	raw := strings.Split(path, "→")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) <= 1 {
		return path
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, PathSeparator)
}
