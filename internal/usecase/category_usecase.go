package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

type CategoryUsecase struct {
	categories repo.CategoryRepository
}

func NewCategoryUsecase(categories repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categories: categories}
}

func (u *CategoryUsecase) List(ctx context.Context) ([]repo.CategoryWithCount, error) {
	rows, err := u.categories.ListWithCounts(ctx)
	if err != nil {
		return nil, apperr.Internal()
	}
	return rows, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, apperr.Validation("name", "name is required")
	}
	if _, err := u.categories.FindByName(ctx, name); err == nil {
		return model.Category{}, apperr.Validation("name", "category already exists")
	} else if err != repo.ErrNotFound {
		return model.Category{}, apperr.Internal()
	}

	c, err := u.categories.Create(ctx, model.Category{
		UUID: uuid.New(),
		Name: name,
		Slug: slugify(name),
	})
	if err != nil {
		return model.Category{}, apperr.Internal()
	}
	return c, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, id uuid.UUID, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, apperr.Validation("name", "name is required")
	}

	c, err := u.categories.FindByUUID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, apperr.NotFound()
	}
	if err != nil {
		return model.Category{}, apperr.Internal()
	}

	c.Name = name
	c.Slug = slugify(name)
	if err := u.categories.Update(ctx, c); err != nil {
		return model.Category{}, apperr.Internal()
	}
	return c, nil
}

// Delete detaches the category's products (FK SET NULL); it never deletes
// them.
func (u *CategoryUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := u.categories.FindByUUID(ctx, id)
	if err == repo.ErrNotFound {
		return apperr.NotFound()
	}
	if err != nil {
		return apperr.Internal()
	}

	if err := u.categories.Delete(ctx, c.ID); err != nil {
		return apperr.Internal()
	}
	return nil
}
