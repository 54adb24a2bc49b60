package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymflow/internal/models/db_models"
)

type PlanRepositoryInterface interface {
	Insert(ctx context.Context, plan *db_models.Plan) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error)
	FindAll(ctx context.Context) ([]db_models.Plan, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepositoryInterface {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) FindAll(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("price ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
