package repository

import (
	"context"

	"github.com/google/uuid"

	"schoolsite/internal/domain/model"
)

type CategoryWithCount struct {
	model.Category
	Count int64 `json:"count"`
}

type CategoryRepository interface {
	// ListWithCounts annotates each category with its live product count.
	ListWithCounts(ctx context.Context) ([]CategoryWithCount, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	FindByUUID(ctx context.Context, id uuid.UUID) (model.Category, error)
	FindByName(ctx context.Context, name string) (model.Category, error)

	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	// Delete detaches products (FK SET NULL) rather than deleting them.
	Delete(ctx context.Context, id int64) error
}
