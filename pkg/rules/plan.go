package rules

import "fmt"

// PlanType is the billing cadence of a membership plan.
type PlanType string

const (
	PlanMonthly PlanType = "monthly"
	PlanAnnual  PlanType = "annual"
)

// Valid reports whether p is a known plan type.
func (p PlanType) Valid() bool {
	return p == PlanMonthly || p == PlanAnnual
}

// PlanEndDate derives a membership end date from its start date: one calendar
// month out for monthly plans, one calendar year for annual. Month arithmetic
// normalizes overflow days forward (Jan 31 + 1 month lands in early March).
func PlanEndDate(startDate string, planType PlanType) (string, error) {
	start, ok := ParseDay(startDate)
	if !ok {
		return "", fmt.Errorf("invalid start date %q", startDate)
	}
	switch planType {
	case PlanMonthly:
		return FormatDay(start.AddDate(0, 1, 0)), nil
	case PlanAnnual:
		return FormatDay(start.AddDate(1, 0, 0)), nil
	default:
		return "", fmt.Errorf("unknown plan type %q", planType)
	}
}

// PlanAmount derives the charge for a plan: the listed monthly price, or
// twelve monthly charges for annual billing. Annual billing is a plain
// multiplication; no discount is applied.
func PlanAmount(price int64, planType PlanType) int64 {
	if planType == PlanAnnual {
		return price * 12
	}
	return price
}
