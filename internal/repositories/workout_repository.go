package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymflow/internal/models/db_models"
)

type WorkoutRepositoryInterface interface {
	Insert(ctx context.Context, workout *db_models.Workout) error
	Update(ctx context.Context, workout *db_models.Workout) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Workout, error)
	FindAll(ctx context.Context) ([]db_models.Workout, error)
	RecentByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]db_models.Workout, error)
}

type WorkoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepositoryInterface {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) Insert(ctx context.Context, workout *db_models.Workout) error {
	return r.db.WithContext(ctx).Create(workout).Error
}

func (r *WorkoutRepository) Update(ctx context.Context, workout *db_models.Workout) error {
	return r.db.WithContext(ctx).Save(workout).Error
}

func (r *WorkoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Workout{}, "id = ?", id).Error
}

func (r *WorkoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Workout, error) {
	var workout db_models.Workout
	err := r.db.WithContext(ctx).First(&workout, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

func (r *WorkoutRepository) FindAll(ctx context.Context) ([]db_models.Workout, error) {
	var workouts []db_models.Workout
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// RecentByMember returns the member's workouts newest first, bounded to
// limit (the profile view shows 10).
func (r *WorkoutRepository) RecentByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]db_models.Workout, error) {
	var workouts []db_models.Workout
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Limit(limit).
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}
