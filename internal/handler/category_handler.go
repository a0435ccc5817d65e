package handler

import (
	"github.com/labstack/echo/v4"

	"schoolsite/internal/usecase"
)

type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CategoryHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	out, err := h.uc.Create(c.Request().Context(), req.Name)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return fail(c, err)
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	out, err := h.uc.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, map[string]bool{"deleted": true})
}
