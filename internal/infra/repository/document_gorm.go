package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

type DocumentGormRepository struct {
	db *gorm.DB
}

func NewDocumentGormRepository(db *gorm.DB) *DocumentGormRepository {
	return &DocumentGormRepository{db: db}
}

func (r *DocumentGormRepository) List(ctx context.Context, q repo.DocumentListQuery) ([]model.Document, error) {
	tx := r.db.WithContext(ctx).Model(&model.Document{})

	if q.Audience != "" {
		tx = tx.Where("audience = ?", q.Audience)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.PublicOnly {
		tx = tx.Where("is_public = ?", true)
	}

	var docs []model.Document
	err := tx.Order("uploaded_at desc").Order("id desc").Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DocumentGormRepository) FindByID(ctx context.Context, id int64) (model.Document, error) {
	var d model.Document
	err := r.db.WithContext(ctx).First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Document{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Document{}, err
	}
	return d, nil
}

func (r *DocumentGormRepository) Create(ctx context.Context, d model.Document) (model.Document, error) {
	if err := r.db.WithContext(ctx).Create(&d).Error; err != nil {
		return model.Document{}, err
	}
	return d, nil
}

func (r *DocumentGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Document{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
