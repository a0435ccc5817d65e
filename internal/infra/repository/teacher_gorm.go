package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

type TeacherGormRepository struct {
	db *gorm.DB
}

func NewTeacherGormRepository(db *gorm.DB) *TeacherGormRepository {
	return &TeacherGormRepository{db: db}
}

func (r *TeacherGormRepository) List(ctx context.Context, includeInactive bool) ([]model.Teacher, error) {
	tx := r.db.WithContext(ctx).Model(&model.Teacher{})
	if !includeInactive {
		tx = tx.Where("is_active = ?", true)
	}

	var teachers []model.Teacher
	err := tx.Order("display_order asc").Order("name asc").Find(&teachers).Error
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *TeacherGormRepository) FindByID(ctx context.Context, id int64) (model.Teacher, error) {
	var t model.Teacher
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Teacher{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Teacher{}, err
	}
	return t, nil
}

func (r *TeacherGormRepository) Create(ctx context.Context, t model.Teacher) (model.Teacher, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Teacher{}, err
	}
	return t, nil
}

func (r *TeacherGormRepository) Update(ctx context.Context, t model.Teacher) error {
	res := r.db.WithContext(ctx).Model(&model.Teacher{ID: t.ID}).
		Select("name", "subject", "bio", "email", "phone", "photo_path", "is_active", "display_order").
		Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *TeacherGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Teacher{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
