package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"schoolsite/internal/usecase"
)

type ProductImageHandler struct {
	uc *usecase.ProductImageUsecase
}

func NewProductImageHandler(uc *usecase.ProductImageUsecase) *ProductImageHandler {
	return &ProductImageHandler{uc: uc}
}

func (h *ProductImageHandler) List(c echo.Context) error {
	var productID *int64
	if raw := c.QueryParam("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return badRequest(c, "product_id", "invalid product_id")
		}
		productID = &id
	}

	out, err := h.uc.List(c.Request().Context(), productID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *ProductImageHandler) Detail(c echo.Context) error {
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

// Upload takes multipart files under the "images" key; ?replace=true swaps
// the whole gallery instead of appending.
func (h *ProductImageHandler) Upload(c echo.Context) error {
	productID, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "images", "multipart form is required")
	}
	files := form.File["images"]

	replace := false
	if raw := c.QueryParam("replace"); raw != "" {
		replace, err = strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "replace", "replace must be true or false")
		}
	}

	out, err := h.uc.Upload(c.Request().Context(), productID, files, replace)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

type reorderRequest struct {
	ImageIDs []int64 `json:"image_ids" validate:"required,min=1"`
}

func (h *ProductImageHandler) Reorder(c echo.Context) error {
	productID, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	if err := h.uc.Reorder(c.Request().Context(), productID, req.ImageIDs); err != nil {
		return fail(c, err)
	}
	return ok(c, map[string]bool{"reordered": true})
}

func (h *ProductImageHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, map[string]bool{"deleted": true})
}
