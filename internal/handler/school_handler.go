package handler

import (
	"github.com/labstack/echo/v4"

	"schoolsite/internal/usecase"
)

type SchoolHandler struct {
	uc *usecase.SchoolUsecase
}

func NewSchoolHandler(uc *usecase.SchoolUsecase) *SchoolHandler {
	return &SchoolHandler{uc: uc}
}

type schoolInfoRequest struct {
	Address   string `json:"address"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	About     string `json:"about"`
	MapIframe string `json:"map_iframe"`
}

func (h *SchoolHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *SchoolHandler) Update(c echo.Context) error {
	var req schoolInfoRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	out, err := h.uc.Update(c.Request().Context(), usecase.SchoolInfoInput{
		Address:   req.Address,
		Email:     req.Email,
		Phone:     req.Phone,
		About:     req.About,
		MapIframe: req.MapIframe,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
