package rules

import "testing"

func TestAttendanceFrequency(t *testing.T) {
	t.Parallel()

	today := "2026-03-31"

	cases := []struct {
		name  string
		dates []string
		want  int
	}{
		{name: "nil records", dates: nil, want: 0},
		{name: "empty records", dates: []string{}, want: 0},
		{name: "all today", dates: []string{"2026-03-31", "2026-03-31", "2026-03-31"}, want: 3},
		{name: "exactly 30 days ago is included", dates: []string{"2026-03-01"}, want: 1},
		{name: "exactly 31 days ago is excluded", dates: []string{"2026-02-28"}, want: 0},
		{name: "future dates are excluded", dates: []string{"2026-04-01"}, want: 0},
		{name: "mixed window", dates: []string{"2026-02-28", "2026-03-01", "2026-03-15", "2026-03-31", "2026-04-01"}, want: 3},
		{name: "unparseable dates are skipped", dates: []string{"yesterday", "2026-03-30"}, want: 1},
		{name: "order does not matter", dates: []string{"2026-03-31", "2026-02-01", "2026-03-02"}, want: 2},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			if got := AttendanceFrequency(testCase.dates, today); got != testCase.want {
				t.Fatalf("AttendanceFrequency(%v) = %d, want %d", testCase.dates, got, testCase.want)
			}
		})
	}
}

func TestAttendanceFrequency_BadToday(t *testing.T) {
	t.Parallel()

	if got := AttendanceFrequency([]string{"2026-03-31"}, "not-a-day"); got != 0 {
		t.Fatalf("expected 0 for unparseable today, got %d", got)
	}
}
