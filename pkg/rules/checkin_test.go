package rules

import "testing"

func TestDecideCheckIn(t *testing.T) {
	t.Parallel()

	today := "2026-03-10"

	cases := []struct {
		name string
		in   CheckInInput
		want CheckInOutcome
	}{
		{
			name: "member with valid membership is allowed",
			in:   CheckInInput{MemberFound: true, EndDate: "2026-03-11", Today: today},
			want: CheckInAllowed,
		},
		{
			name: "membership ending today is refused",
			in:   CheckInInput{MemberFound: true, EndDate: today, Today: today},
			want: CheckInExpired,
		},
		{
			name: "unknown member",
			in:   CheckInInput{MemberFound: false, EndDate: "2026-03-11", Today: today},
			want: CheckInMemberNotFound,
		},
		{
			name: "repeat check-in same day",
			in:   CheckInInput{MemberFound: true, CheckedInToday: true, EndDate: "2026-03-11", Today: today},
			want: CheckInAlreadyToday,
		},
		{
			name: "membership ended yesterday",
			in:   CheckInInput{MemberFound: true, EndDate: "2026-03-09", Today: today},
			want: CheckInExpired,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			if got := DecideCheckIn(testCase.in); got != testCase.want {
				t.Fatalf("DecideCheckIn(%+v) = %q, want %q", testCase.in, got, testCase.want)
			}
		})
	}
}

// When several rejection conditions hold at once the table order decides
// which one wins: not-found beats duplicate beats expired.
func TestDecideCheckIn_Precedence(t *testing.T) {
	t.Parallel()

	today := "2026-03-10"
	expired := "2026-03-09"

	allFail := CheckInInput{MemberFound: false, CheckedInToday: true, EndDate: expired, Today: today}
	if got := DecideCheckIn(allFail); got != CheckInMemberNotFound {
		t.Fatalf("expected member-not-found to win, got %q", got)
	}

	dupAndExpired := CheckInInput{MemberFound: true, CheckedInToday: true, EndDate: expired, Today: today}
	if got := DecideCheckIn(dupAndExpired); got != CheckInAlreadyToday {
		t.Fatalf("expected duplicate to beat expired, got %q", got)
	}
}
