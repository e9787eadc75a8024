// Package utils provides utility functions for the application.
package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

// ParsePrice extracts a numeric amount from a rate-sheet cell. Thousands
// separators, currency symbols, and non-breaking spaces are stripped, then
// the first signed decimal number found anywhere in the string wins, so
// "USD 850 approx" parses to 850. Returns (0, false) when no numeric
// substring exists. Rate sheets carry inconsistent annotation text; the
// first-number policy can pick up an unintended number from malformed cells.
func ParsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	m := numberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParsePercent parses an insurance-rate style percentage, stripping a
// trailing % before applying the same first-number policy as ParsePrice.
func ParsePercent(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return 0, false
	}
	return ParsePrice(strings.ReplaceAll(s, "%", ""))
}

// Day-first layouts come first: rate validity cells are typed by operations
// staff in DD/MM/YYYY and DD-MM-YYYY far more often than the ISO forms.
var dateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"2/1/2006",
	"2-1-2006",
	"2006-01-02",
	"02-Jan-2006",
	"2-Jan-2006",
	"02 Jan 2006",
	"January 2, 2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
}

// ParseDate parses a date or date-like free text cell. Returns (zero, false)
// for empty or unrecognized input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatMoney renders an amount as currency, e.g. 1250 -> "$1,250.00".
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	whole := int64(v)
	frac := int64((v-float64(whole))*100 + 0.5)
	if frac >= 100 {
		whole++
		frac -= 100
	}
	s := strconv.FormatInt(whole, 10)
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	out := fmt.Sprintf("$%s.%02d", b.String(), frac)
	if neg {
		return "-" + out
	}
	return out
}

// FormatDate renders a date uniformly for display, e.g. "14-Mar-2026".
func FormatDate(t time.Time) string {
	return t.Format("02-Jan-2006")
}

// CleanContainerSize maps free-typed container sizes onto the two supported
// labels where possible ("20 feet" -> "20ft"); anything else passes through
// trimmed.
func CleanContainerSize(s string) string {
	n := Normalize(s)
	if n == "" {
		return ""
	}
	if strings.Contains(n, "20") {
		return "20ft"
	}
	if strings.Contains(n, "40") {
		return "40ft"
	}
	return strings.TrimSpace(s)
}
