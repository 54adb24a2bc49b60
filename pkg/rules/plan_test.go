package rules

import "testing"

func TestPlanEndDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		startDate string
		planType  PlanType
		want      string
		wantErr   bool
	}{
		{name: "monthly mid-month", startDate: "2026-01-15", planType: PlanMonthly, want: "2026-02-15"},
		{name: "annual mid-month", startDate: "2026-01-15", planType: PlanAnnual, want: "2027-01-15"},
		{name: "monthly end-of-month spillover", startDate: "2026-01-31", planType: PlanMonthly, want: "2026-03-03"},
		{name: "annual on leap day", startDate: "2028-02-29", planType: PlanAnnual, want: "2029-03-01"},
		{name: "invalid start date", startDate: "2026-13-40", planType: PlanMonthly, wantErr: true},
		{name: "unknown plan type", startDate: "2026-01-15", planType: PlanType("weekly"), wantErr: true},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			got, err := PlanEndDate(testCase.startDate, testCase.planType)
			if testCase.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != testCase.want {
				t.Fatalf("PlanEndDate(%q, %q) = %q, want %q", testCase.startDate, testCase.planType, got, testCase.want)
			}
		})
	}
}

func TestPlanAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		price    int64
		planType PlanType
		want     int64
	}{
		{name: "monthly keeps listed price", price: 2500, planType: PlanMonthly, want: 2500},
		{name: "annual is twelve monthly charges", price: 3500, planType: PlanAnnual, want: 42000},
		{name: "annual applies no discount", price: 4500, planType: PlanAnnual, want: 54000},
		{name: "zero price", price: 0, planType: PlanAnnual, want: 0},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			if got := PlanAmount(testCase.price, testCase.planType); got != testCase.want {
				t.Fatalf("PlanAmount(%d, %q) = %d, want %d", testCase.price, testCase.planType, got, testCase.want)
			}
		})
	}
}

func TestPlanTypeValid(t *testing.T) {
	t.Parallel()

	if !PlanMonthly.Valid() || !PlanAnnual.Valid() {
		t.Fatal("expected monthly and annual to be valid plan types")
	}
	if PlanType("weekly").Valid() || PlanType("").Valid() {
		t.Fatal("expected unknown plan types to be invalid")
	}
}
