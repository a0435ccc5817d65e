package repository

import (
	"context"

	"schoolsite/internal/domain/model"
)

type TeacherRepository interface {
	// List orders by (display_order, name); inactive rows are included only
	// for privileged callers.
	List(ctx context.Context, includeInactive bool) ([]model.Teacher, error)
	FindByID(ctx context.Context, id int64) (model.Teacher, error)

	Create(ctx context.Context, t model.Teacher) (model.Teacher, error)
	Update(ctx context.Context, t model.Teacher) error
	Delete(ctx context.Context, id int64) error
}
