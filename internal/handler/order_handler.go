package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"schoolsite/internal/usecase"
)

// OrderHandler is the public checkout endpoint.
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Per-line checks (quantity range, size/color choices) live in the usecase so
// they come back with their dedicated error codes, not VALIDATION_ERROR.
type orderLineRequest struct {
	ItemID        uuid.UUID `json:"itemId"`
	Quantity      int       `json:"quantity"`
	SelectedSize  *string   `json:"selectedSize"`
	SelectedColor *string   `json:"selectedColor"`
}

type placeOrderRequest struct {
	ParentName    string             `json:"parentName" validate:"required"`
	ChildrenNames string             `json:"childrenNames" validate:"required"`
	Phone         string             `json:"phone" validate:"required"`
	Comment       *string            `json:"comment"`
	Total         decimal.Decimal    `json:"total" validate:"required"`
	Items         []orderLineRequest `json:"items" validate:"required,min=1,dive"`
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	in := usecase.PlaceOrderInput{
		ParentName:    req.ParentName,
		ChildrenNames: req.ChildrenNames,
		Phone:         req.Phone,
		Comment:       req.Comment,
		Total:         req.Total,
		Items:         make([]usecase.OrderLineInput, 0, len(req.Items)),
	}
	for _, line := range req.Items {
		in.Items = append(in.Items, usecase.OrderLineInput{
			ItemID:        line.ItemID,
			Quantity:      line.Quantity,
			SelectedSize:  line.SelectedSize,
			SelectedColor: line.SelectedColor,
		})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}
