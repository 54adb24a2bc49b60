package rules

import "testing"

func TestIsExpired(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		endDate string
		today   string
		want    bool
	}{
		{name: "ends yesterday", endDate: "2026-03-09", today: "2026-03-10", want: true},
		{name: "ends today is already expired", endDate: "2026-03-10", today: "2026-03-10", want: true},
		{name: "ends tomorrow", endDate: "2026-03-11", today: "2026-03-10", want: false},
		{name: "ends far in the past", endDate: "2020-01-01", today: "2026-03-10", want: true},
		{name: "unparseable end date", endDate: "not-a-date", today: "2026-03-10", want: false},
		{name: "empty end date", endDate: "", today: "2026-03-10", want: false},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			if got := IsExpired(testCase.endDate, testCase.today); got != testCase.want {
				t.Fatalf("IsExpired(%q, %q) = %v, want %v", testCase.endDate, testCase.today, got, testCase.want)
			}
		})
	}
}

func TestIsActive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		startDate string
		endDate   string
		today     string
		want      bool
	}{
		{name: "started and not expired", startDate: "2026-01-01", endDate: "2026-12-31", today: "2026-03-10", want: true},
		{name: "starts today", startDate: "2026-03-10", endDate: "2026-04-10", today: "2026-03-10", want: true},
		{name: "ends today", startDate: "2026-01-01", endDate: "2026-03-10", today: "2026-03-10", want: false},
		{name: "ends tomorrow", startDate: "2026-01-01", endDate: "2026-03-11", today: "2026-03-10", want: true},
		{name: "not started yet", startDate: "2026-03-11", endDate: "2026-12-31", today: "2026-03-10", want: false},
		{name: "expired", startDate: "2025-01-01", endDate: "2025-12-31", today: "2026-03-10", want: false},
		{name: "expired even before start", startDate: "2026-04-01", endDate: "2025-12-31", today: "2026-03-10", want: false},
		{name: "unparseable start date", startDate: "??", endDate: "2026-12-31", today: "2026-03-10", want: false},
		{name: "unparseable end date", startDate: "2026-01-01", endDate: "soon", today: "2026-03-10", want: false},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			got := IsActive(testCase.startDate, testCase.endDate, testCase.today)
			if got != testCase.want {
				t.Fatalf("IsActive(%q, %q, %q) = %v, want %v",
					testCase.startDate, testCase.endDate, testCase.today, got, testCase.want)
			}
		})
	}
}

// Whenever a membership is expired it must also be inactive, regardless of
// its start date.
func TestIsActive_NeverActiveWhenExpired(t *testing.T) {
	t.Parallel()

	today := "2026-03-10"
	for _, endDate := range []string{"2026-03-09", today} {
		for _, startDate := range []string{"2020-01-01", "2026-03-09", "2026-03-10", "2027-01-01", "garbage"} {
			if IsActive(startDate, endDate, today) {
				t.Fatalf("expected inactive for membership ending %q with start %q", endDate, startDate)
			}
		}
	}
}
