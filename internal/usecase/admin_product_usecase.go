package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

// AdminProductUsecase is the privileged catalog CRUD surface.
type AdminProductUsecase struct {
	tx         repo.TransactionManager
	products   repo.ProductRepository
	categories repo.CategoryRepository
	store      FileStore
}

func NewAdminProductUsecase(
	tx repo.TransactionManager,
	products repo.ProductRepository,
	categories repo.CategoryRepository,
	store FileStore,
) *AdminProductUsecase {
	return &AdminProductUsecase{
		tx:         tx,
		products:   products,
		categories: categories,
		store:      store,
	}
}

type ProductListOutput struct {
	Items      []model.Product `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

func (u *AdminProductUsecase) List(ctx context.Context, page, limit int) (ProductListOutput, error) {
	items, total, err := u.products.List(ctx, repo.ProductListQuery{Page: page, Limit: limit})
	if err != nil {
		return ProductListOutput{}, apperr.Internal()
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	return ProductListOutput{
		Items: items,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (u *AdminProductUsecase) Get(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, apperr.NotFound()
	}
	if err != nil {
		return model.Product{}, apperr.Internal()
	}
	return p, nil
}

type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  *uuid.UUID // external category id, nil detaches
	InStock     bool
	Sizes       []string
	Colors      []string
}

func (u *AdminProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := u.validate(in); err != nil {
		return model.Product{}, err
	}

	categoryID, err := u.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return model.Product{}, err
	}

	p, err := u.products.Create(ctx, model.Product{
		UUID:        uuid.New(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  categoryID,
		InStock:     in.InStock,
		Sizes:       in.Sizes,
		Colors:      in.Colors,
	})
	if err != nil {
		return model.Product{}, apperr.Internal()
	}
	return u.Get(ctx, p.ID)
}

func (u *AdminProductUsecase) Update(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	if err := u.validate(in); err != nil {
		return model.Product{}, err
	}

	categoryID, err := u.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return model.Product{}, err
	}

	err = u.products.Update(ctx, model.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  categoryID,
		InStock:     in.InStock,
		Sizes:       in.Sizes,
		Colors:      in.Colors,
	})
	if err == repo.ErrNotFound {
		return model.Product{}, apperr.NotFound()
	}
	if err != nil {
		return model.Product{}, apperr.Internal()
	}
	return u.Get(ctx, id)
}

// Delete removes a product and its image rows atomically, then cleans up the
// image files. Products referenced by order items cannot be deleted: the
// snapshots must stay traceable to a real row.
func (u *AdminProductUsecase) Delete(ctx context.Context, id int64) error {
	var removed []model.ProductImage

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		n, err := r.OrderItems().CountByProductID(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperr.New(http.StatusConflict, apperr.CodeProductInUse,
				"product is referenced by existing orders")
		}

		removed, err = r.ProductImages().DeleteByProductID(ctx, id)
		if err != nil {
			return err
		}

		return r.Products().Delete(ctx, id)
	})
	if err == repo.ErrNotFound {
		return apperr.NotFound()
	}
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return err
		}
		return apperr.Internal()
	}

	for _, img := range removed {
		_ = u.store.Remove(img.FilePath)
	}
	return nil
}

func (u *AdminProductUsecase) validate(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.Validation("name", "name is required")
	}
	if in.Price.IsNegative() {
		return apperr.Validation("price", "price must be >= 0")
	}
	return nil
}

func (u *AdminProductUsecase) resolveCategory(ctx context.Context, id *uuid.UUID) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	c, err := u.categories.FindByUUID(ctx, *id)
	if err == repo.ErrNotFound {
		return nil, apperr.Validation("category", "category not found")
	}
	if err != nil {
		return nil, apperr.Internal()
	}
	return &c.ID, nil
}
