package db_models

import (
	"gorm.io/datatypes"
)

type Plan struct {
	BaseModel
	Code         string `gorm:"uniqueIndex"` // e.g. "essential", "group", "wellness"
	Name         string
	Description  *string
	Price        int64  // per monthly-equivalent unit, whole shillings
	Currency     string `gorm:"size:3"` // "KES"
	DurationDays *int32
	IsActive     bool `gorm:"default:true"`
	// Feature flags, class limits, etc.
	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
