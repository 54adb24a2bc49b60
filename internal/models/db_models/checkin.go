package db_models

import "github.com/google/uuid"

// CheckIn is one successful attendance event. Records are append-only and
// never edited. The composite unique index on (member_id, date) enforces
// at-most-one check-in per member per calendar day at the storage layer, so
// two near-simultaneous requests cannot both commit.
type CheckIn struct {
	BaseModel
	MemberID uuid.UUID `gorm:"index;uniqueIndex:idx_checkins_member_day"`
	Date     string    `gorm:"size:10;uniqueIndex:idx_checkins_member_day"`
	Time     string    `gorm:"size:5"` // HH:MM, gym-local
	// Display name snapshot taken at check-in time; survives member renames.
	MemberName string

	Member Member `gorm:"foreignKey:MemberID"`
}
