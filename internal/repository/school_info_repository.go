package repository

import (
	"context"

	"schoolsite/internal/domain/model"
)

type SchoolInfoRepository interface {
	// GetOrCreate returns the singleton row, creating an empty one on first
	// access.
	GetOrCreate(ctx context.Context) (model.SchoolInfo, error)
	Update(ctx context.Context, info model.SchoolInfo) error
}
