package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

type ProductImageGormRepository struct {
	db *gorm.DB
}

func NewProductImageGormRepository(db *gorm.DB) *ProductImageGormRepository {
	return &ProductImageGormRepository{db: db}
}

func (r *ProductImageGormRepository) List(ctx context.Context, productID *int64) ([]model.ProductImage, error) {
	tx := r.db.WithContext(ctx).Model(&model.ProductImage{})
	if productID != nil {
		tx = tx.Where("product_id = ?", *productID)
	}

	var images []model.ProductImage
	err := tx.Order("display_order asc").Order("id asc").Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ProductImageGormRepository) FindByID(ctx context.Context, id int64) (model.ProductImage, error) {
	var img model.ProductImage
	err := r.db.WithContext(ctx).First(&img, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductImage{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

func (r *ProductImageGormRepository) CountByProductID(ctx context.Context, productID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ProductImage{}).
		Where("product_id = ?", productID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ProductImageGormRepository) MaxOrder(ctx context.Context, productID int64) (int, error) {
	// -1 when the product has no images yet, so next = max+1 starts at 0
	var max *int
	err := r.db.WithContext(ctx).Model(&model.ProductImage{}).
		Where("product_id = ?", productID).
		Select("MAX(display_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

func (r *ProductImageGormRepository) Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error) {
	if err := r.db.WithContext(ctx).Create(&img).Error; err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

func (r *ProductImageGormRepository) SetOrder(ctx context.Context, id int64, order int) error {
	res := r.db.WithContext(ctx).Model(&model.ProductImage{}).
		Where("id = ?", id).
		Update("display_order", order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductImageGormRepository) Delete(ctx context.Context, id int64) (model.ProductImage, error) {
	img, err := r.FindByID(ctx, id)
	if err != nil {
		return model.ProductImage{}, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.ProductImage{}, id).Error; err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

func (r *ProductImageGormRepository) DeleteByIDs(ctx context.Context, productID int64, ids []int64) ([]model.ProductImage, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var images []model.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND id IN ?", productID, ids).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}

	err = r.db.WithContext(ctx).
		Where("product_id = ? AND id IN ?", productID, ids).
		Delete(&model.ProductImage{}).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ProductImageGormRepository) DeleteByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	var images []model.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}

	err = r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductImage{}).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}
