package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

type SchoolInfoGormRepository struct {
	db *gorm.DB
}

func NewSchoolInfoGormRepository(db *gorm.DB) *SchoolInfoGormRepository {
	return &SchoolInfoGormRepository{db: db}
}

func (r *SchoolInfoGormRepository) GetOrCreate(ctx context.Context) (model.SchoolInfo, error) {
	var info model.SchoolInfo
	err := r.db.WithContext(ctx).First(&info, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = model.SchoolInfo{ID: 1}
		if err := r.db.WithContext(ctx).Create(&info).Error; err != nil {
			return model.SchoolInfo{}, err
		}
		return info, nil
	}
	if err != nil {
		return model.SchoolInfo{}, err
	}
	return info, nil
}

func (r *SchoolInfoGormRepository) Update(ctx context.Context, info model.SchoolInfo) error {
	info.ID = 1
	res := r.db.WithContext(ctx).Model(&model.SchoolInfo{ID: 1}).
		Select("address", "email", "phone", "about", "map_iframe").
		Updates(info)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
