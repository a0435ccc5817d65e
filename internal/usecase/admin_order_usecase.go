package usecase

import (
	"context"
	"strings"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

// AdminOrderUsecase is the back-office view over placed orders. Orders are
// immutable after creation except for the administrative note.
type AdminOrderUsecase struct {
	tx repo.TransactionManager
}

func NewAdminOrderUsecase(tx repo.TransactionManager) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx}
}

type OrderOutput struct {
	model.Order
	Items []model.OrderItem `json:"items"`
}

type OrderListOutput struct {
	Items      []OrderOutput `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

func (u *AdminOrderUsecase) List(ctx context.Context, page, limit int) (OrderListOutput, error) {
	var out OrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().List(ctx, page, limit)
		if err != nil {
			return err
		}

		out.Items = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return err
			}
			out.Items = append(out.Items, OrderOutput{Order: o, Items: items})
		}

		totalPages := int((total + int64(limit) - 1) / int64(limit))
		if totalPages < 1 {
			totalPages = 1
		}
		out.Pagination = Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
		return nil
	})
	if err != nil {
		return OrderListOutput{}, apperr.Internal()
	}
	return out, nil
}

func (u *AdminOrderUsecase) Get(ctx context.Context, id int64) (OrderOutput, error) {
	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return err
		}

		out = OrderOutput{Order: o, Items: items}
		return nil
	})
	if err == repo.ErrNotFound {
		return OrderOutput{}, apperr.NotFound()
	}
	if err != nil {
		return OrderOutput{}, apperr.Internal()
	}
	return out, nil
}

func (u *AdminOrderUsecase) UpdateNote(ctx context.Context, id int64, note string) (OrderOutput, error) {
	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().UpdateAdminNote(ctx, id, strings.TrimSpace(note)); err != nil {
			return err
		}

		o, err := r.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return err
		}
		out = OrderOutput{Order: o, Items: items}
		return nil
	})
	if err == repo.ErrNotFound {
		return OrderOutput{}, apperr.NotFound()
	}
	if err != nil {
		return OrderOutput{}, apperr.Internal()
	}
	return out, nil
}
