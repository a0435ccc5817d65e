package repository

import (
	"context"

	"gorm.io/gorm"

	repo "schoolsite/internal/repository"
)

type txReposGorm struct {
	products      repo.ProductRepository
	orders        repo.OrderRepository
	orderItems    repo.OrderItemRepository
	productImages repo.ProductImageRepository
}

func (r *txReposGorm) Products() repo.ProductRepository           { return r.products }
func (r *txReposGorm) Orders() repo.OrderRepository               { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository       { return r.orderItems }
func (r *txReposGorm) ProductImages() repo.ProductImageRepository { return r.productImages }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// repositories are rebound to the tx handle
		r := &txReposGorm{
			products:      NewProductGormRepository(tx),
			orders:        NewOrderGormRepository(tx),
			orderItems:    NewOrderItemGormRepository(tx),
			productImages: NewProductImageGormRepository(tx),
		}
		return fn(r)
	})
}
