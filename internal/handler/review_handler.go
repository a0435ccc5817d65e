package handler

import (
	"github.com/labstack/echo/v4"

	"schoolsite/internal/usecase"
)

type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

type reviewRequest struct {
	Name   string `json:"name"`
	Text   string `json:"text" validate:"required"`
	Rating *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

const defaultRating = 5

func (h *ReviewHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *ReviewHandler) Create(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	rating := defaultRating
	if req.Rating != nil {
		rating = *req.Rating
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.ReviewInput{
		Name:      req.Name,
		Text:      req.Text,
		Rating:    rating,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}
