package repository

import (
	"context"

	"schoolsite/internal/domain/model"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]model.Review, error) // newest first
	Create(ctx context.Context, r model.Review) (model.Review, error)
}
