package handler

import (
	"github.com/labstack/echo/v4"

	"schoolsite/internal/usecase"
)

type AdminOrderHandler struct {
	uc *usecase.AdminOrderUsecase
}

func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

func (h *AdminOrderHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), queryPage(c), queryLimit(c, 20))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *AdminOrderHandler) Detail(c echo.Context) error {
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

type orderNoteRequest struct {
	AdminNote string `json:"admin_note"`
}

func (h *AdminOrderHandler) UpdateNote(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	var req orderNoteRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}

	out, err := h.uc.UpdateNote(c.Request().Context(), id, req.AdminNote)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
