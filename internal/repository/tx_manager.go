package repository

import "context"

// TxRepos exposes the repositories rebound to a live transaction.
type TxRepos interface {
	Products() ProductRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	ProductImages() ProductImageRepository
}

// TransactionManager hides begin/commit/rollback from the usecases.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
