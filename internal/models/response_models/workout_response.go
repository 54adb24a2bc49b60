package response_models

import "github.com/google/uuid"

type WorkoutResponse struct {
	ID              uuid.UUID `json:"id"`
	MemberID        uuid.UUID `json:"member_id"`
	Exercise        string    `json:"exercise"`
	Sets            int32     `json:"sets"`
	DurationMinutes int32     `json:"duration_minutes"`
	Date            string    `json:"date"`
}
