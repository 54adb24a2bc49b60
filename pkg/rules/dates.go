// Package rules holds the membership lifecycle and billing-status business
// rules. Every function is a pure, side-effect-free leaf: callers pass the
// current day in explicitly, dates travel as ISO YYYY-MM-DD strings, and a
// date that fails to parse never satisfies a rule.
package rules

import "time"

const dayLayout = "2006-01-02"

// ParseDay parses an ISO YYYY-MM-DD day string.
func ParseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDay renders t as an ISO YYYY-MM-DD day string.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}
