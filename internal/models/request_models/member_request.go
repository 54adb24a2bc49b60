package request_models

// MemberRequest is used for both create and update. EndDate and
// PaymentAmount are accepted but normally left empty: the service derives
// them from the plan and re-derives on any change to start date, plan or
// plan type, overwriting whatever was submitted.
type MemberRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`

	PlanID   string `json:"plan_id" binding:"required,uuid"`
	PlanType string `json:"plan_type" binding:"required,oneof=monthly annual"`

	StartDate      string `json:"start_date" binding:"required"`
	EndDate        string `json:"end_date"`
	PaymentAmount  *int64 `json:"payment_amount"`
	PaymentDueDate string `json:"payment_due_date"`
}
