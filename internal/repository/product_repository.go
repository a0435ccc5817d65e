package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"schoolsite/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// Catalog listing filters; typed instead of ad-hoc query composition.
type ProductListQuery struct {
	Page     int
	Limit    int
	Category string // exact category name
	Search   string // substring match on name/description
	InStock  *bool
}

type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	// ListCategoryNames returns the distinct category names present among
	// categorized products, name-ordered.
	ListCategoryNames(ctx context.Context) ([]string, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindByUUID(ctx context.Context, id uuid.UUID) (model.Product, error)
	// FindByUUIDs resolves a batch in one query; missing UUIDs are simply
	// absent from the result.
	FindByUUIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}
