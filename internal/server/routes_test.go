package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"schoolsite/internal/config"
	"schoolsite/internal/domain/model"
	"schoolsite/internal/handler"
	repo "schoolsite/internal/repository"
	"schoolsite/internal/server"
	"schoolsite/internal/usecase"
)

type catalogRepoStub struct{}

func (catalogRepoStub) List(context.Context, repo.ProductListQuery) ([]model.Product, int64, error) {
	return []model.Product{{ID: 1, Name: "spirit tee"}}, 1, nil
}
func (catalogRepoStub) ListCategoryNames(context.Context) ([]string, error) { return nil, nil }
func (catalogRepoStub) FindByID(context.Context, int64) (model.Product, error) {
	return model.Product{ID: 1, Name: "spirit tee"}, nil
}
func (catalogRepoStub) FindByUUID(context.Context, uuid.UUID) (model.Product, error) {
	return model.Product{}, repo.ErrNotFound
}
func (catalogRepoStub) FindByUUIDs(context.Context, []uuid.UUID) ([]model.Product, error) {
	return nil, nil
}
func (catalogRepoStub) Create(_ context.Context, p model.Product) (model.Product, error) {
	return p, nil
}
func (catalogRepoStub) Update(context.Context, model.Product) error { return nil }
func (catalogRepoStub) Delete(context.Context, int64) error         { return nil }

type galleryRepoStub struct{}

func (galleryRepoStub) List(context.Context, *int64) ([]model.ProductImage, error) {
	return []model.ProductImage{{ID: 7, ProductID: 1, FilePath: "products/a.jpg"}}, nil
}
func (galleryRepoStub) FindByID(context.Context, int64) (model.ProductImage, error) {
	return model.ProductImage{ID: 7, ProductID: 1, FilePath: "products/a.jpg"}, nil
}
func (galleryRepoStub) CountByProductID(context.Context, int64) (int64, error) { return 0, nil }
func (galleryRepoStub) MaxOrder(context.Context, int64) (int, error)           { return -1, nil }
func (galleryRepoStub) Create(_ context.Context, img model.ProductImage) (model.ProductImage, error) {
	return img, nil
}
func (galleryRepoStub) SetOrder(context.Context, int64, int) error { return nil }
func (galleryRepoStub) Delete(context.Context, int64) (model.ProductImage, error) {
	return model.ProductImage{}, repo.ErrNotFound
}
func (galleryRepoStub) DeleteByIDs(context.Context, int64, []int64) ([]model.ProductImage, error) {
	return nil, nil
}
func (galleryRepoStub) DeleteByProductID(context.Context, int64) ([]model.ProductImage, error) {
	return nil, nil
}

// newCatalogServer wires only the catalog handlers; the other handlers stay
// nil, which is fine as long as no test hits their routes.
func newCatalogServer(t *testing.T) *server.Server {
	t.Helper()
	cfg := config.Config{
		JWTSecret:    "routes-test-secret",
		MediaRoot:    t.TempDir(),
		MediaBaseURL: "/media",
		Throttle:     config.Throttle{OrdersPerMinute: 60, ReviewsPerMinute: 60, MerchPerMinute: 600},
	}
	h := server.Handlers{
		AdminProduct: handler.NewAdminProductHandler(
			usecase.NewAdminProductUsecase(nil, catalogRepoStub{}, nil, nil)),
		ProductImage: handler.NewProductImageHandler(
			usecase.NewProductImageUsecase(nil, galleryRepoStub{}, nil, func(rel string) string {
				return "/media/" + rel
			})),
	}
	return server.New(cfg, h)
}

func TestCatalogRoutes_ReadsAreOpen(t *testing.T) {
	srv := newCatalogServer(t)

	for _, path := range []string{
		"/api/products",
		"/api/products/1",
		"/api/product-images",
		"/api/product-images/7",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestCatalogRoutes_WritesRequireAuth(t *testing.T) {
	srv := newCatalogServer(t)

	for _, r := range []struct{ method, path string }{
		{http.MethodPost, "/api/products"},
		{http.MethodPut, "/api/products/1"},
		{http.MethodDelete, "/api/products/1"},
		{http.MethodDelete, "/api/product-images/7"},
	} {
		req := httptest.NewRequest(r.method, r.path, nil)
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, r.method+" "+r.path)
	}
}
