package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymflow/internal/models/db_models"
)

type MemberRepositoryInterface interface {
	Insert(ctx context.Context, member *db_models.Member) error
	Update(ctx context.Context, member *db_models.Member) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Member, error)
	FindAll(ctx context.Context) ([]db_models.Member, error)
}

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepositoryInterface {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Insert(ctx context.Context, member *db_models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *MemberRepository) Update(ctx context.Context, member *db_models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *MemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Member{}, "id = ?", id).Error
}

func (r *MemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).Preload("Plan").First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) FindAll(ctx context.Context) ([]db_models.Member, error) {
	var members []db_models.Member
	err := r.db.WithContext(ctx).Preload("Plan").Order("created_at DESC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
