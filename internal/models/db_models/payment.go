package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TxnStatus string

const (
	TxnPending  TxnStatus = "pending"
	TxnPaid     TxnStatus = "paid"
	TxnFailed   TxnStatus = "failed"
	TxnRefunded TxnStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodStripe PaymentMethod = "stripe"
	MethodMpesa  PaymentMethod = "mpesa"
)

// Payment is one recorded charge against a member. The gateway itself is
// external; stripe/mpesa rows are recorded after the processor confirms.
type Payment struct {
	BaseModel
	MemberID uuid.UUID     `gorm:"index"`
	PlanID   uuid.UUID     `gorm:"index"`
	Amount   int64         // whole shillings, never negative
	Currency string        `gorm:"size:3"`
	Method   PaymentMethod `gorm:"size:16;index"`
	Status   TxnStatus     `gorm:"size:16;index"`
	PaidAt   *int64
	Notes    string

	// Processor receipts, reference numbers, failure reasons.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Member Member `gorm:"foreignKey:MemberID"`
	Plan   Plan   `gorm:"foreignKey:PlanID"`
}
