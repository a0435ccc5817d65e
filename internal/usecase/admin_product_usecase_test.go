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

func newAdminProductUC(tx *txManagerStub, products *ProductRepoMock, categories *CategoryRepoMock, store *storeMock) *usecase.AdminProductUsecase {
	return usecase.NewAdminProductUsecase(tx, products, categories, store)
}

func TestAdminProductUsecase_Create_Success(t *testing.T) {
	products := new(ProductRepoMock)
	categories := new(CategoryRepoMock)
	uc := newAdminProductUC(newTxManagerStub(), products, categories, &storeMock{})

	catUUID := uuid.New()
	categories.On("FindByUUID", mock.Anything, catUUID).
		Return(model.Category{ID: 5, UUID: catUUID, Name: "Apparel"}, nil)

	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Hoodie" && p.UUID != uuid.Nil &&
			p.CategoryID != nil && *p.CategoryID == 5
	})).Return(model.Product{ID: 9}, nil)
	products.On("FindByID", mock.Anything, int64(9)).
		Return(model.Product{ID: 9, Name: "Hoodie"}, nil)

	out, err := uc.Create(context.Background(), usecase.ProductInput{
		Name:       "  Hoodie  ",
		Price:      dec("35.00"),
		CategoryID: &catUUID,
		InStock:    true,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(9), out.ID)
	products.AssertExpectations(t)
}

func TestAdminProductUsecase_Create_UnknownCategory(t *testing.T) {
	products := new(ProductRepoMock)
	categories := new(CategoryRepoMock)
	uc := newAdminProductUC(newTxManagerStub(), products, categories, &storeMock{})

	catUUID := uuid.New()
	categories.On("FindByUUID", mock.Anything, catUUID).
		Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.Create(context.Background(), usecase.ProductInput{
		Name:       "Hoodie",
		Price:      dec("35.00"),
		CategoryID: &catUUID,
	})
	assertCode(t, err, apperr.CodeValidation, "category")
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminProductUsecase_Create_Invalid(t *testing.T) {
	uc := newAdminProductUC(newTxManagerStub(), new(ProductRepoMock), new(CategoryRepoMock), &storeMock{})

	_, err := uc.Create(context.Background(), usecase.ProductInput{Name: "   "})
	assertCode(t, err, apperr.CodeValidation, "name")

	_, err = uc.Create(context.Background(), usecase.ProductInput{Name: "Hoodie", Price: dec("-1")})
	assertCode(t, err, apperr.CodeValidation, "price")
}

func TestAdminProductUsecase_Delete_BlockedWhenReferenced(t *testing.T) {
	tx := newTxManagerStub()
	uc := newAdminProductUC(tx, new(ProductRepoMock), new(CategoryRepoMock), &storeMock{})

	tx.repos.orderItems.On("CountByProductID", mock.Anything, int64(4)).Return(int64(3), nil)

	err := uc.Delete(context.Background(), 4)
	assertCode(t, err, apperr.CodeProductInUse, "")
	tx.repos.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	tx.repos.images.AssertNotCalled(t, "DeleteByProductID", mock.Anything, mock.Anything)
}

func TestAdminProductUsecase_Delete_RemovesImagesAndFiles(t *testing.T) {
	tx := newTxManagerStub()
	store := &storeMock{}
	uc := newAdminProductUC(tx, new(ProductRepoMock), new(CategoryRepoMock), store)

	tx.repos.orderItems.On("CountByProductID", mock.Anything, int64(4)).Return(int64(0), nil)
	tx.repos.images.On("DeleteByProductID", mock.Anything, int64(4)).
		Return([]model.ProductImage{
			{ID: 1, FilePath: "products/a.jpg"},
			{ID: 2, FilePath: "products/b.jpg"},
		}, nil)
	tx.repos.products.On("Delete", mock.Anything, int64(4)).Return(nil)

	err := uc.Delete(context.Background(), 4)
	assert.NoError(t, err)
	assert.Equal(t, []string{"products/a.jpg", "products/b.jpg"}, store.removed)
}

func TestAdminProductUsecase_Delete_NotFound(t *testing.T) {
	tx := newTxManagerStub()
	store := &storeMock{}
	uc := newAdminProductUC(tx, new(ProductRepoMock), new(CategoryRepoMock), store)

	tx.repos.orderItems.On("CountByProductID", mock.Anything, int64(99)).Return(int64(0), nil)
	tx.repos.images.On("DeleteByProductID", mock.Anything, int64(99)).
		Return([]model.ProductImage{}, nil)
	tx.repos.products.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	err := uc.Delete(context.Background(), 99)
	assertCode(t, err, apperr.CodeNotFound, "")
	// nothing committed, nothing to clean up
	assert.Empty(t, store.removed)
}

func TestAdminProductUsecase_Update_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newAdminProductUC(newTxManagerStub(), products, new(CategoryRepoMock), &storeMock{})

	products.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	_, err := uc.Update(context.Background(), 99, usecase.ProductInput{
		Name:  "Hoodie",
		Price: dec("35.00"),
	})
	assertCode(t, err, apperr.CodeNotFound, "")
}
