package rules

import "testing"

func TestIsOverdue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		dueDate string
		status  string
		today   string
		want    bool
	}{
		{name: "pending past due", dueDate: "2026-03-09", status: "pending", today: "2026-03-10", want: true},
		{name: "pending due today", dueDate: "2026-03-10", status: "pending", today: "2026-03-10", want: false},
		{name: "pending due tomorrow", dueDate: "2026-03-11", status: "pending", today: "2026-03-10", want: false},
		{name: "paid past due", dueDate: "2026-03-09", status: "paid", today: "2026-03-10", want: false},
		{name: "no due date pending", dueDate: "", status: "pending", today: "2026-03-10", want: false},
		{name: "no due date paid", dueDate: "", status: "paid", today: "2026-03-10", want: false},
		{name: "unparseable due date", dueDate: "next week", status: "pending", today: "2026-03-10", want: false},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			got := IsOverdue(testCase.dueDate, testCase.status, testCase.today)
			if got != testCase.want {
				t.Fatalf("IsOverdue(%q, %q, %q) = %v, want %v",
					testCase.dueDate, testCase.status, testCase.today, got, testCase.want)
			}
		})
	}
}
