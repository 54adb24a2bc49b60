package rules

// IsExpired reports whether a membership ending on endDate has lapsed as of
// today. A membership expires at the start of its end date: one ending today
// is already expired. Dates that fail to parse do not count as expired;
// status helpers degrade to inactive instead.
func IsExpired(endDate, today string) bool {
	end, ok := ParseDay(endDate)
	if !ok {
		return false
	}
	now, ok := ParseDay(today)
	if !ok {
		return false
	}
	return !end.After(now)
}

// IsActive reports whether a membership has started and not yet expired.
// Any unparseable date makes the membership inactive.
func IsActive(startDate, endDate, today string) bool {
	start, ok := ParseDay(startDate)
	if !ok {
		return false
	}
	now, ok := ParseDay(today)
	if !ok {
		return false
	}
	if start.After(now) {
		return false
	}
	if _, ok := ParseDay(endDate); !ok {
		return false
	}
	return !IsExpired(endDate, today)
}
