package response_models

import "github.com/google/uuid"

type PaymentResponse struct {
	ID         uuid.UUID `json:"id"`
	MemberID   uuid.UUID `json:"member_id"`
	MemberName string    `json:"member_name,omitempty"`
	PlanID     uuid.UUID `json:"plan_id"`
	PlanName   string    `json:"plan_name,omitempty"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	Method     string    `json:"payment_method"`
	Status     string    `json:"status"`
	PaidAt     *int64    `json:"paid_at,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  int64     `json:"created_at"`
}
