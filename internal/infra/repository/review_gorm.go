package repository

import (
	"context"

	"gorm.io/gorm"

	"schoolsite/internal/domain/model"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) List(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) Create(ctx context.Context, rev model.Review) (model.Review, error) {
	if err := r.db.WithContext(ctx).Create(&rev).Error; err != nil {
		return model.Review{}, err
	}
	return rev, nil
}
