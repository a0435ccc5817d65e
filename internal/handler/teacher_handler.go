package handler

import (
	"github.com/labstack/echo/v4"

	"schoolsite/internal/middleware"
	"schoolsite/internal/usecase"
)

type TeacherHandler struct {
	uc *usecase.TeacherUsecase
}

func NewTeacherHandler(uc *usecase.TeacherUsecase) *TeacherHandler {
	return &TeacherHandler{uc: uc}
}

type teacherRequest struct {
	Name         string `json:"name" validate:"required"`
	Subject      string `json:"subject"`
	Bio          string `json:"bio"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

func (r teacherRequest) toInput() usecase.TeacherInput {
	return usecase.TeacherInput{
		Name:         r.Name,
		Subject:      r.Subject,
		Bio:          r.Bio,
		Email:        r.Email,
		Phone:        r.Phone,
		IsActive:     r.IsActive,
		DisplayOrder: r.DisplayOrder,
	}
}

// List shows inactive teachers to admins only.
func (h *TeacherHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), middleware.IsAdmin(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *TeacherHandler) Detail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	out, err := h.uc.Get(c.Request().Context(), id, middleware.IsAdmin(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *TeacherHandler) Create(c echo.Context) error {
	var req teacherRequest
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

func (h *TeacherHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	var req teacherRequest
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

func (h *TeacherHandler) SetPhoto(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return badRequest(c, "photo", "photo file is required")
	}

	out, err := h.uc.SetPhoto(c.Request().Context(), id, fh)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *TeacherHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, map[string]bool{"deleted": true})
}
