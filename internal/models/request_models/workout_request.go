package request_models

type WorkoutRequest struct {
	MemberID        string `json:"member_id" binding:"required,uuid"`
	Exercise        string `json:"exercise" binding:"required"`
	Sets            int32  `json:"sets" binding:"required,min=1"`
	DurationMinutes int32  `json:"duration_minutes" binding:"omitempty,min=0"`
	Date            string `json:"date"` // defaults to today
}
