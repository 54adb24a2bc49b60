package request_models

type CreatePlanRequest struct {
	Code         string  `json:"code" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	Price        int64   `json:"price" binding:"required,min=0"`
	Currency     string  `json:"currency"`
	DurationDays *int32  `json:"duration_days"`
}
