package response_models

import "github.com/google/uuid"

// MemberResponse carries the stored member plus the derived status fields
// the admin views render (active/expired/overdue badges and the rolling
// 30-day visit count).
type MemberResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`

	PlanID   uuid.UUID `json:"plan_id"`
	PlanName string    `json:"plan_name,omitempty"`
	PlanType string    `json:"plan_type"`

	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	PaymentAmount  int64  `json:"payment_amount"`
	PaymentDueDate string `json:"payment_due_date,omitempty"`
	PaymentStatus  string `json:"payment_status"`

	ActiveStatus        string `json:"active_status"` // "Active" | "Inactive"
	Expired             bool   `json:"expired"`
	Overdue             bool   `json:"overdue"`
	AttendanceFrequency int    `json:"attendance_frequency"`

	AttendanceRecords []AttendanceRecord `json:"attendance_records,omitempty"`
	RecentWorkouts    []WorkoutResponse  `json:"recent_workouts,omitempty"`
}

type AttendanceRecord struct {
	ID   uuid.UUID `json:"id"`
	Date string    `json:"date"`
}
