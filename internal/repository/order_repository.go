package repository

import (
	"context"

	"schoolsite/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, o model.Order) (model.Order, error)
	// SetNumber assigns the human-readable sequence number derived from the
	// order's own pk; called inside the creation transaction.
	SetNumber(ctx context.Context, id int64, number string) error
	FindByID(ctx context.Context, id int64) (model.Order, error)
	List(ctx context.Context, page, limit int) ([]model.Order, int64, error)
	UpdateAdminNote(ctx context.Context, id int64, note string) error
}
