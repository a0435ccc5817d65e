package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"schoolsite/internal/usecase"
)

const (
	merchCacheSeconds      = 60
	categoriesCacheSeconds = 300
)

// MerchHandler is the public storefront: anonymous, read-only, cached.
type MerchHandler struct {
	uc *usecase.MerchUsecase
}

func NewMerchHandler(uc *usecase.MerchUsecase) *MerchHandler {
	return &MerchHandler{uc: uc}
}

func (h *MerchHandler) List(c echo.Context) error {
	in := usecase.ListMerchInput{
		Page:     queryPage(c),
		Limit:    queryLimit(c, 20),
		Category: strings.TrimSpace(c.QueryParam("category")),
		Search:   strings.TrimSpace(c.QueryParam("search")),
	}

	in.InStock = parseBoolFilter(c.QueryParam("inStock"))

	out, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return okCached(c, merchCacheSeconds, out)
}

// parseBoolFilter reads an optional boolean query value. Accepts
// true/1/yes and false/0/no; anything else leaves the filter unset.
func parseBoolFilter(raw string) *bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		v := true
		return &v
	case "false", "0", "no":
		v := false
		return &v
	}
	return nil
}

func (h *MerchHandler) Detail(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return fail(c, err)
	}

	out, err := h.uc.GetByUUID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return okCached(c, merchCacheSeconds, out)
}

func (h *MerchHandler) Categories(c echo.Context) error {
	out, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return okCached(c, categoriesCacheSeconds, out)
}
