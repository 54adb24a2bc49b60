package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymflow/internal/models/db_models"
)

type CheckInRepositoryInterface interface {
	Insert(ctx context.Context, checkIn *db_models.CheckIn) error
	ExistsForMemberOn(ctx context.Context, memberID uuid.UUID, date string) (bool, error)
	FindByDate(ctx context.Context, date string) ([]db_models.CheckIn, error)
	FindByMember(ctx context.Context, memberID uuid.UUID) ([]db_models.CheckIn, error)
	DatesByMember(ctx context.Context, memberID uuid.UUID) ([]string, error)
	CountOn(ctx context.Context, date string) (int64, error)
}

type CheckInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) CheckInRepositoryInterface {
	return &CheckInRepository{db: db}
}

func (r *CheckInRepository) Insert(ctx context.Context, checkIn *db_models.CheckIn) error {
	return r.db.WithContext(ctx).Create(checkIn).Error
}

func (r *CheckInRepository) ExistsForMemberOn(ctx context.Context, memberID uuid.UUID, date string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.CheckIn{}).
		Where("member_id = ? AND date = ?", memberID, date).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CheckInRepository) FindByDate(ctx context.Context, date string) ([]db_models.CheckIn, error) {
	var checkIns []db_models.CheckIn
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("created_at DESC").
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *CheckInRepository) FindByMember(ctx context.Context, memberID uuid.UUID) ([]db_models.CheckIn, error) {
	var checkIns []db_models.CheckIn
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("date DESC").
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *CheckInRepository) DatesByMember(ctx context.Context, memberID uuid.UUID) ([]string, error) {
	var dates []string
	err := r.db.WithContext(ctx).Model(&db_models.CheckIn{}).
		Where("member_id = ?", memberID).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *CheckInRepository) CountOn(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.CheckIn{}).
		Where("date = ?", date).
		Count(&count).Error
	return count, err
}
