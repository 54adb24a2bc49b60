package db_models

import "github.com/google/uuid"

type Workout struct {
	BaseModel
	MemberID        uuid.UUID `gorm:"index"`
	Exercise        string
	Sets            int32
	DurationMinutes int32
	Date            string `gorm:"size:10"`

	Member Member `gorm:"foreignKey:MemberID"`
}
