package utils

import "time"

// Gym-local time (Nairobi, EAT +03:00). Check-in days and clock stamps are
// taken on the gym's wall clock, not the server's.
var gymLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Africa/Nairobi"); err == nil {
		return loc
	}
	return time.FixedZone("EAT", 3*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// TodayLocal returns the gym-local calendar day as YYYY-MM-DD.
func TodayLocal() string {
	return time.Now().In(gymLoc).Format("2006-01-02")
}

// NowClock returns the gym-local wall-clock time as HH:MM.
func NowClock() string {
	return time.Now().In(gymLoc).Format("15:04")
}

// StartOfWeek returns the most recent Monday (or today if Monday) in
// gym-local time, used by the revenue windows.
func StartOfWeek(t time.Time) time.Time {
	local := t.In(gymLoc)
	offset := (int(local.Weekday()) + 6) % 7
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, gymLoc)
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first day of the current month in gym-local time.
func StartOfMonth(t time.Time) time.Time {
	local := t.In(gymLoc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, gymLoc)
}

// StartOfDay returns gym-local midnight for t.
func StartOfDay(t time.Time) time.Time {
	local := t.In(gymLoc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, gymLoc)
}
