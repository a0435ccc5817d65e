package usecase

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

const (
	minQuantity = 1
	maxQuantity = 99

	orderCreatedMessage = "Order received! We will contact you shortly."
)

var nonDigits = regexp.MustCompile(`\D+`)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderLineInput struct {
	ItemID        uuid.UUID
	Quantity      int
	SelectedSize  *string
	SelectedColor *string
}

type PlaceOrderInput struct {
	ParentName    string
	ChildrenNames string
	Phone         string
	Comment       *string
	Total         decimal.Decimal
	Items         []OrderLineInput
}

type PlaceOrderOutput struct {
	OrderID     uuid.UUID `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Message     string    `json:"message"`
}

// PlaceOrder runs the whole checkout pipeline inside one transaction:
// resolve products by uuid, validate each line in input order (first failure
// wins), recompute the total server-side in fixed-point arithmetic, compare
// it against the client-declared total, then persist the order with
// immutable per-line snapshots. Any failure leaves no rows behind.
//
// Stock is read-then-write with no reservation; two concurrent checkouts can
// both see a product in stock and both succeed.
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	phone := nonDigits.ReplaceAllString(in.Phone, "")
	if len(phone) < 10 || len(phone) > 11 {
		return PlaceOrderOutput{}, apperr.Validation("phone", "phone must contain 10-11 digits")
	}

	if len(in.Items) == 0 {
		return PlaceOrderOutput{}, apperr.Validation("items", "at least one item is required")
	}

	var out PlaceOrderOutput
	var lineCount int

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		ids := make([]uuid.UUID, 0, len(in.Items))
		for _, line := range in.Items {
			ids = append(ids, line.ItemID)
		}

		products, err := r.Products().FindByUUIDs(ctx, ids)
		if err != nil {
			return err
		}
		byUUID := make(map[uuid.UUID]model.Product, len(products))
		for _, p := range products {
			byUUID[p.UUID] = p
		}

		total := decimal.Zero
		items := make([]model.OrderItem, 0, len(in.Items))

		for idx, line := range in.Items {
			p, ok := byUUID[line.ItemID]
			if !ok {
				return apperr.NewField(http.StatusNotFound, apperr.CodeItemNotFound,
					"item not found", fmt.Sprintf("items[%d].itemId", idx))
			}

			if !p.InStock {
				return apperr.NewField(http.StatusBadRequest, apperr.CodeItemOutOfStock,
					"item is out of stock", fmt.Sprintf("items[%d].itemId", idx))
			}

			if line.Quantity < minQuantity || line.Quantity > maxQuantity {
				return apperr.NewField(http.StatusBadRequest, apperr.CodeInvalidQty,
					"invalid quantity", fmt.Sprintf("items[%d].quantity", idx))
			}

			size := normalizeChoice(line.SelectedSize)
			if len(p.Sizes) > 0 {
				if size == nil || !contains(p.Sizes, *size) {
					return apperr.NewField(http.StatusBadRequest, apperr.CodeInvalidSize,
						"invalid product size", fmt.Sprintf("items[%d].selectedSize", idx))
				}
			}

			color := normalizeChoice(line.SelectedColor)
			if len(p.Colors) > 0 {
				if color == nil || !contains(p.Colors, *color) {
					return apperr.NewField(http.StatusBadRequest, apperr.CodeInvalidColor,
						"invalid product color", fmt.Sprintf("items[%d].selectedColor", idx))
				}
			}

			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))

			items = append(items, model.OrderItem{
				ProductID:     p.ID,
				Quantity:      line.Quantity,
				SelectedSize:  size,
				SelectedColor: color,
				PriceAtOrder:  p.Price,
				NameAtOrder:   p.Name,
			})
		}

		// exact comparison guards against stale client price caches
		if !total.Equal(in.Total) {
			return apperr.NewField(http.StatusBadRequest, apperr.CodeTotalMismatch,
				"order total mismatch", "total")
		}

		order, err := r.Orders().Create(ctx, model.Order{
			UUID:          uuid.New(),
			ParentName:    strings.TrimSpace(in.ParentName),
			ChildrenNames: strings.TrimSpace(in.ChildrenNames),
			Phone:         phone,
			Total:         total,
			Comment:       in.Comment,
		})
		if err != nil {
			return err
		}

		// sequence number derived from the order's own pk, unique without a
		// counter table
		number := fmt.Sprintf("ORD-%d-%06d", order.CreatedAt.Year(), order.ID)
		if err := r.Orders().SetNumber(ctx, order.ID, number); err != nil {
			return err
		}

		if err := r.OrderItems().CreateBulk(ctx, order.ID, items); err != nil {
			return err
		}

		lineCount = len(items)
		out = PlaceOrderOutput{
			OrderID:     order.UUID,
			OrderNumber: number,
			Message:     orderCreatedMessage,
		}
		return nil
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return PlaceOrderOutput{}, err
		}
		return PlaceOrderOutput{}, apperr.Internal()
	}

	log.WithFields(log.Fields{
		"order": out.OrderNumber,
		"phone": phone,
		"total": in.Total.String(),
		"items": lineCount,
	}).Info("new order")

	return out, nil
}

// normalizeChoice maps empty/whitespace selections to nil.
func normalizeChoice(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
