package rules

const paidStatus = "paid"

// IsOverdue reports whether a payment not yet marked paid is past its due
// date. An absent or unparseable due date is never overdue.
func IsOverdue(dueDate, paymentStatus, today string) bool {
	if paymentStatus == paidStatus {
		return false
	}
	due, ok := ParseDay(dueDate)
	if !ok {
		return false
	}
	now, ok := ParseDay(today)
	if !ok {
		return false
	}
	return due.Before(now)
}
