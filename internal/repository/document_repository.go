package repository

import (
	"context"

	"schoolsite/internal/domain/model"
)

type DocumentListQuery struct {
	Audience   string
	Category   string
	PublicOnly bool
}

type DocumentRepository interface {
	List(ctx context.Context, q DocumentListQuery) ([]model.Document, error)
	FindByID(ctx context.Context, id int64) (model.Document, error)

	Create(ctx context.Context, d model.Document) (model.Document, error)
	Delete(ctx context.Context, id int64) error
}
