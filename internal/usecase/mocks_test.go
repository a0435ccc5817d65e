package usecase_test

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) ListCategoryNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByUUID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByUUIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (model.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) SetNumber(ctx context.Context, id int64, number string) error {
	args := m.Called(ctx, id, number)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id int64) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context, page, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, page, limit)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) UpdateAdminNote(ctx context.Context, id int64, note string) error {
	args := m.Called(ctx, id, note)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) CountByProductID(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

type ProductImageRepoMock struct{ mock.Mock }

func (m *ProductImageRepoMock) List(ctx context.Context, productID *int64) ([]model.ProductImage, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.ProductImage)
	return items, args.Error(1)
}

func (m *ProductImageRepoMock) FindByID(ctx context.Context, id int64) (model.ProductImage, error) {
	args := m.Called(ctx, id)
	img, _ := args.Get(0).(model.ProductImage)
	return img, args.Error(1)
}

func (m *ProductImageRepoMock) CountByProductID(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductImageRepoMock) MaxOrder(ctx context.Context, productID int64) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

func (m *ProductImageRepoMock) Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error) {
	args := m.Called(ctx, img)
	created, _ := args.Get(0).(model.ProductImage)
	return created, args.Error(1)
}

func (m *ProductImageRepoMock) SetOrder(ctx context.Context, id int64, order int) error {
	args := m.Called(ctx, id, order)
	return args.Error(0)
}

func (m *ProductImageRepoMock) Delete(ctx context.Context, id int64) (model.ProductImage, error) {
	args := m.Called(ctx, id)
	img, _ := args.Get(0).(model.ProductImage)
	return img, args.Error(1)
}

func (m *ProductImageRepoMock) DeleteByIDs(ctx context.Context, productID int64, ids []int64) ([]model.ProductImage, error) {
	args := m.Called(ctx, productID, ids)
	removed, _ := args.Get(0).([]model.ProductImage)
	return removed, args.Error(1)
}

func (m *ProductImageRepoMock) DeleteByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	args := m.Called(ctx, productID)
	removed, _ := args.Get(0).([]model.ProductImage)
	return removed, args.Error(1)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) ListWithCounts(ctx context.Context) ([]repo.CategoryWithCount, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.CategoryWithCount)
	return rows, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) FindByUUID(ctx context.Context, id uuid.UUID) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) FindByName(ctx context.Context, name string) (model.Category, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *CategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) List(ctx context.Context) ([]model.Review, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Review)
	return items, args.Error(1)
}

func (m *ReviewRepoMock) Create(ctx context.Context, r model.Review) (model.Review, error) {
	args := m.Called(ctx, r)
	created, _ := args.Get(0).(model.Review)
	return created, args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(model.User)
	return created, args.Error(1)
}

// txReposStub bundles the repo mocks behind the transaction interface.
type txReposStub struct {
	products   *ProductRepoMock
	orders     *OrderRepoMock
	orderItems *OrderItemRepoMock
	images     *ProductImageRepoMock
}

func (s txReposStub) Products() repo.ProductRepository         { return s.products }
func (s txReposStub) Orders() repo.OrderRepository             { return s.orders }
func (s txReposStub) OrderItems() repo.OrderItemRepository     { return s.orderItems }
func (s txReposStub) ProductImages() repo.ProductImageRepository { return s.images }

// txManagerStub runs the callback directly; the tests observe rollback by
// asserting which repo calls happened before the error.
type txManagerStub struct {
	repos txReposStub
}

func newTxManagerStub() *txManagerStub {
	return &txManagerStub{repos: txReposStub{
		products:   new(ProductRepoMock),
		orders:     new(OrderRepoMock),
		orderItems: new(OrderItemRepoMock),
		images:     new(ProductImageRepoMock),
	}}
}

func (t *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(t.repos)
}

// storeMock records saves and removals; Save ignores content.
type storeMock struct {
	saved   []string
	removed []string
	saveErr error
	seq     int
}

func (s *storeMock) Save(kind, originalName string, r io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.seq++
	rel := kind + "/stored-" + originalName
	s.saved = append(s.saved, rel)
	return rel, nil
}

func (s *storeMock) Remove(rel string) error {
	s.removed = append(s.removed, rel)
	return nil
}

func (s *storeMock) Abs(rel string) string { return "/media/" + rel }

func testMediaURL(rel string) string { return "/media/" + rel }

var fixedTime = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
