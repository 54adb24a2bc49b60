package request_models

// CreatePaymentRequest records a charge. Amount may be omitted, in which
// case it is derived from the plan price and the member's plan type.
type CreatePaymentRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
	PlanID   string `json:"plan_id" binding:"required,uuid"`
	Amount   *int64 `json:"amount" binding:"omitempty,min=0"`
	Method   string `json:"method" binding:"required,oneof=cash stripe mpesa"`
	Notes    string `json:"notes"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid failed refunded"`
}
