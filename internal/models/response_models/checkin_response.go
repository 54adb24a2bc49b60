package response_models

import "github.com/google/uuid"

type CheckInResponse struct {
	ID         uuid.UUID `json:"id"`
	MemberID   uuid.UUID `json:"member_id"`
	MemberName string    `json:"member_name"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
}
