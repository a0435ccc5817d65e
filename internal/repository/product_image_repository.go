package repository

import (
	"context"

	"schoolsite/internal/domain/model"
)

type ProductImageRepository interface {
	// List returns images ordered by (display_order, id); productID narrows
	// the result when non-nil.
	List(ctx context.Context, productID *int64) ([]model.ProductImage, error)
	FindByID(ctx context.Context, id int64) (model.ProductImage, error)
	CountByProductID(ctx context.Context, productID int64) (int64, error)
	MaxOrder(ctx context.Context, productID int64) (int, error)

	Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error)
	SetOrder(ctx context.Context, id int64, order int) error
	// Deletes return the removed rows so the caller can clean up files
	// after the transaction commits.
	Delete(ctx context.Context, id int64) (model.ProductImage, error)
	DeleteByIDs(ctx context.Context, productID int64, ids []int64) ([]model.ProductImage, error)
	DeleteByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error)
}
