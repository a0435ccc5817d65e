package repository

import (
	"context"

	"schoolsite/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	// CountByProductID backs the "cannot delete a referenced product" check.
	CountByProductID(ctx context.Context, productID int64) (int64, error)
}
