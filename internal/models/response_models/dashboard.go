package response_models

type DashboardStats struct {
	TotalMembers   int64      `json:"total_members"`
	ActiveMembers  int64      `json:"active_members"`
	TodayCheckIns  int64      `json:"today_check_ins"`
	WeeklyCheckIns []DayCount `json:"weekly_check_ins"`
}

// DayCount is one point of the 7-day check-in series, oldest first.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
