package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"schoolsite/internal/middleware"
	"schoolsite/internal/usecase"
)

type DocumentHandler struct {
	uc *usecase.DocumentUsecase
}

func NewDocumentHandler(uc *usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

func (h *DocumentHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), usecase.ListDocumentsInput{
		Audience: c.QueryParam("audience"),
		Category: c.QueryParam("category"),
		IsAdmin:  middleware.IsAdmin(c),
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *DocumentHandler) Detail(c echo.Context) error {
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

// Download streams the stored file under its original name.
func (h *DocumentHandler) Download(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	path, name, err := h.uc.Download(c.Request().Context(), id, middleware.IsAdmin(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Attachment(path, name)
}

// Create accepts multipart form data: metadata fields plus the file itself.
func (h *DocumentHandler) Create(c echo.Context) error {
	isPublic := true
	if raw := c.FormValue("is_public"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "is_public", "is_public must be true or false")
		}
		isPublic = v
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file", "file is required")
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.DocumentInput{
		Title:       c.FormValue("title"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
		Audience:    c.FormValue("audience"),
		IsPublic:    isPublic,
	}, fh)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

func (h *DocumentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, map[string]bool{"deleted": true})
}
