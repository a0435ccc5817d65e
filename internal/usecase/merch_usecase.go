package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

// MerchUsecase serves the public storefront read path.
type MerchUsecase struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
	media      MediaURL
}

// MediaURL turns a stored relative path into a client-facing URL.
type MediaURL func(rel string) string

func NewMerchUsecase(products repo.ProductRepository, categories repo.CategoryRepository, media MediaURL) *MerchUsecase {
	return &MerchUsecase{products: products, categories: categories, media: media}
}

type ListMerchInput struct {
	Page     int
	Limit    int
	Category string
	Search   string
	InStock  *bool
}

type MerchItem struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image"`
	Images      []string        `json:"images"`
	Category    *string         `json:"category"`
	InStock     bool            `json:"inStock"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type MerchListOutput struct {
	Items      []MerchItem `json:"items"`
	Pagination Pagination  `json:"pagination"`
	Categories []string    `json:"categories"`
}

func (u *MerchUsecase) List(ctx context.Context, in ListMerchInput) (MerchListOutput, error) {
	q := repo.ProductListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Category: in.Category,
		Search:   in.Search,
		InStock:  in.InStock,
	}

	items, total, err := u.products.List(ctx, q)
	if err != nil {
		return MerchListOutput{}, apperr.Internal()
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	if totalPages < 1 {
		totalPages = 1
	}
	// requesting past the end serves the last page instead of an empty one
	if q.Page > totalPages {
		q.Page = totalPages
		items, _, err = u.products.List(ctx, q)
		if err != nil {
			return MerchListOutput{}, apperr.Internal()
		}
	}

	names, err := u.products.ListCategoryNames(ctx)
	if err != nil {
		return MerchListOutput{}, apperr.Internal()
	}

	out := MerchListOutput{
		Items: make([]MerchItem, 0, len(items)),
		Pagination: Pagination{
			Page:       q.Page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
		Categories: names,
	}
	for _, p := range items {
		out.Items = append(out.Items, u.toMerchItem(p))
	}
	return out, nil
}

func (u *MerchUsecase) GetByUUID(ctx context.Context, id uuid.UUID) (MerchItem, error) {
	p, err := u.products.FindByUUID(ctx, id)
	if err == repo.ErrNotFound {
		return MerchItem{}, apperr.NotFound()
	}
	if err != nil {
		return MerchItem{}, apperr.Internal()
	}
	return u.toMerchItem(p), nil
}

func (u *MerchUsecase) Categories(ctx context.Context) ([]repo.CategoryWithCount, error) {
	rows, err := u.categories.ListWithCounts(ctx)
	if err != nil {
		return nil, apperr.Internal()
	}
	return rows, nil
}

func (u *MerchUsecase) toMerchItem(p model.Product) MerchItem {
	item := MerchItem{
		ID:          p.UUID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Images:      make([]string, 0, len(p.Images)),
		InStock:     p.InStock,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, img := range p.Images {
		item.Images = append(item.Images, u.media(img.FilePath))
	}
	if len(item.Images) > 0 {
		item.Image = &item.Images[0]
	}
	if p.Category != nil {
		item.Category = &p.Category.Name
	}
	return item
}
