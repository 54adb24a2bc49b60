package request_models

type CheckInRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
}
