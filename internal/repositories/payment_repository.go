package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymflow/internal/models/db_models"
)

// PaymentFilter narrows payment listings; zero values mean "no filter".
type PaymentFilter struct {
	MemberID *uuid.UUID
	Method   string
}

// MethodTotals is the paid amount and row count for one payment method.
type MethodTotals struct {
	Amount int64
	Count  int64
}

type PaymentRepositoryInterface interface {
	Insert(ctx context.Context, payment *db_models.Payment) error
	Update(ctx context.Context, payment *db_models.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Payment, error)
	Find(ctx context.Context, filter PaymentFilter) ([]db_models.Payment, error)
	SumPaidSince(ctx context.Context, since int64) (int64, error)
	SumPaidByMethod(ctx context.Context) (map[db_models.PaymentMethod]MethodTotals, error)
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepositoryInterface {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Insert(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PaymentRepository) Update(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).Preload("Member").Preload("Plan").First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) Find(ctx context.Context, filter PaymentFilter) ([]db_models.Payment, error) {
	query := r.db.WithContext(ctx).Preload("Member").Preload("Plan")
	if filter.MemberID != nil {
		query = query.Where("member_id = ?", *filter.MemberID)
	}
	if filter.Method != "" {
		query = query.Where("method = ?", filter.Method)
	}

	var payments []db_models.Payment
	if err := query.Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// SumPaidSince totals paid payments whose paid_at is at or after since
// (unix seconds). since <= 0 means all time.
func (r *PaymentRepository) SumPaidSince(ctx context.Context, since int64) (int64, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Payment{}).
		Where("status = ?", db_models.TxnPaid)
	if since > 0 {
		query = query.Where("paid_at >= ?", since)
	}

	var total *int64
	if err := query.Select("SUM(amount)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *PaymentRepository) SumPaidByMethod(ctx context.Context) (map[db_models.PaymentMethod]MethodTotals, error) {
	var rows []struct {
		Method db_models.PaymentMethod
		Total  int64
		Cnt    int64
	}
	err := r.db.WithContext(ctx).Model(&db_models.Payment{}).
		Select("method, SUM(amount) AS total, COUNT(*) AS cnt").
		Where("status = ?", db_models.TxnPaid).
		Group("method").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[db_models.PaymentMethod]MethodTotals, len(rows))
	for _, row := range rows {
		totals[row.Method] = MethodTotals{Amount: row.Total, Count: row.Cnt}
	}
	return totals, nil
}
