package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"schoolsite/internal/usecase"
)

// AdminProductHandler is the back-office catalog CRUD surface; the public
// storefront reads go through MerchHandler instead.
type AdminProductHandler struct {
	uc *usecase.AdminProductUsecase
}

func NewAdminProductHandler(uc *usecase.AdminProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

type productRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	InStock     bool            `json:"in_stock"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
}

func (r productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		InStock:     r.InStock,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
	}
}

func (h *AdminProductHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), queryPage(c), queryLimit(c, 20))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *AdminProductHandler) Detail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *AdminProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	out, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

func (h *AdminProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	out, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *AdminProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, map[string]bool{"deleted": true})
}
