package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
	"schoolsite/internal/usecase"
)

func TestCategoryUsecase_Create_Success(t *testing.T) {
	categories := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(categories)

	categories.On("FindByName", mock.Anything, "School Spirit").
		Return(model.Category{}, repo.ErrNotFound)
	categories.On("Create", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.Name == "School Spirit" && c.Slug == "school-spirit" && c.UUID != uuid.Nil
	})).Return(model.Category{ID: 1, Name: "School Spirit", Slug: "school-spirit"}, nil)

	out, err := uc.Create(context.Background(), "  School Spirit  ")
	assert.NoError(t, err)
	assert.Equal(t, "school-spirit", out.Slug)
	categories.AssertExpectations(t)
}

func TestCategoryUsecase_Create_Duplicate(t *testing.T) {
	categories := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(categories)

	categories.On("FindByName", mock.Anything, "Apparel").
		Return(model.Category{ID: 1, Name: "Apparel"}, nil)

	_, err := uc.Create(context.Background(), "Apparel")
	assertCode(t, err, apperr.CodeValidation, "name")
	categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryUsecase_Create_EmptyName(t *testing.T) {
	uc := usecase.NewCategoryUsecase(new(CategoryRepoMock))

	_, err := uc.Create(context.Background(), "   ")
	assertCode(t, err, apperr.CodeValidation, "name")
}

func TestCategoryUsecase_Update_ReslugsName(t *testing.T) {
	categories := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(categories)

	id := uuid.New()
	categories.On("FindByUUID", mock.Anything, id).
		Return(model.Category{ID: 2, UUID: id, Name: "Old", Slug: "old"}, nil)
	categories.On("Update", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.ID == 2 && c.Name == "Winter Gear" && c.Slug == "winter-gear"
	})).Return(nil)

	out, err := uc.Update(context.Background(), id, "Winter Gear")
	assert.NoError(t, err)
	assert.Equal(t, "winter-gear", out.Slug)
}

func TestCategoryUsecase_Delete_NotFound(t *testing.T) {
	categories := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(categories)

	id := uuid.New()
	categories.On("FindByUUID", mock.Anything, id).Return(model.Category{}, repo.ErrNotFound)

	err := uc.Delete(context.Background(), id)
	assertCode(t, err, apperr.CodeNotFound, "")
}
