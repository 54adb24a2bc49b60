package db_models

import (
	"strings"

	"github.com/google/uuid"

	"gymflow/pkg/rules"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Member is one gym member. Calendar fields are ISO YYYY-MM-DD strings so
// comparisons stay string-sortable end to end; EndDate and PaymentAmount are
// derived from the plan, never entered directly.
type Member struct {
	BaseModel
	FirstName string
	LastName  string
	Email     string `gorm:"index"`
	Phone     string

	PlanID   uuid.UUID      `gorm:"index"`
	PlanType rules.PlanType `gorm:"size:16"`

	StartDate      string `gorm:"size:10"`
	EndDate        string `gorm:"size:10"`
	PaymentAmount  int64
	PaymentDueDate string        `gorm:"size:10"`
	PaymentStatus  PaymentStatus `gorm:"size:16;default:pending"`

	Plan     Plan      `gorm:"foreignKey:PlanID"`
	CheckIns []CheckIn `gorm:"foreignKey:MemberID"`
	Workouts []Workout `gorm:"foreignKey:MemberID"`
}

// Name returns the display identity used on check-in snapshots.
func (m *Member) Name() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}
