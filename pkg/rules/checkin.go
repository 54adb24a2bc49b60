package rules

// CheckInOutcome is the verdict on one check-in attempt.
type CheckInOutcome string

const (
	CheckInMemberNotFound CheckInOutcome = "member_not_found"
	CheckInAlreadyToday   CheckInOutcome = "already_checked_in_today"
	CheckInExpired        CheckInOutcome = "membership_expired"
	CheckInAllowed        CheckInOutcome = "allowed"
)

// CheckInInput is the state a check-in attempt is judged against: whether the
// member exists, whether a check-in already exists for them today, and their
// membership end date.
type CheckInInput struct {
	MemberFound    bool
	CheckedInToday bool
	EndDate        string
	Today          string
}

// checkInRules is evaluated top to bottom and the first matching predicate
// decides the outcome. The order is load-bearing: it determines which
// rejection a member sees when several conditions hold at once.
var checkInRules = []struct {
	rejected func(CheckInInput) bool
	outcome  CheckInOutcome
}{
	{func(in CheckInInput) bool { return !in.MemberFound }, CheckInMemberNotFound},
	{func(in CheckInInput) bool { return in.CheckedInToday }, CheckInAlreadyToday},
	{func(in CheckInInput) bool { return IsExpired(in.EndDate, in.Today) }, CheckInExpired},
}

// DecideCheckIn runs the check-in decision table.
func DecideCheckIn(in CheckInInput) CheckInOutcome {
	for _, rule := range checkInRules {
		if rule.rejected(in) {
			return rule.outcome
		}
	}
	return CheckInAllowed
}
