package response_models

import "github.com/google/uuid"

type PlanResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Price        int64     `json:"price"`
	Currency     string    `json:"currency"`
	DurationDays *int32    `json:"duration_days,omitempty"`
	IsActive     bool      `json:"is_active"`
}
