package rules

// AttendanceFrequency counts attendance records dated inside the rolling
// 30-day window ending today, inclusive at both ends. A nil or empty record
// list counts as zero; unparseable dates are skipped.
func AttendanceFrequency(dates []string, today string) int {
	now, ok := ParseDay(today)
	if !ok {
		return 0
	}
	windowStart := now.AddDate(0, 0, -30)

	count := 0
	for _, d := range dates {
		day, ok := ParseDay(d)
		if !ok {
			continue
		}
		if !day.Before(windowStart) && !day.After(now) {
			count++
		}
	}
	return count
}
