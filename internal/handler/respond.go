package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"schoolsite/internal/apperr"
	"schoolsite/internal/validator"
)

// Every response is wrapped in the same envelope so clients can branch on
// success before looking at the payload shape.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, envelope{Success: true, Data: data})
}

// okCached serves a success response with a public max-age hint for the CDN
// and browser caches on the hot read paths.
func okCached(c echo.Context, maxAge int, data interface{}) error {
	c.Response().Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
	return ok(c, data)
}

// fail converts any error into the error envelope. Coded errors pass through
// with their status; binding/validation errors become VALIDATION_ERROR on the
// first offending field; everything else is a masked 500.
func fail(c echo.Context, err error) error {
	if e, isCoded := apperr.As(err); isCoded {
		return c.JSON(e.Status, envelope{Success: false, Error: e})
	}

	if field, msg, isValidation := validator.FirstField(err); isValidation {
		e := apperr.Validation(field, msg)
		return c.JSON(e.Status, envelope{Success: false, Error: e})
	}

	log.WithError(err).Error("unhandled error")
	e := apperr.Internal()
	return c.JSON(e.Status, envelope{Success: false, Error: e})
}

func badRequest(c echo.Context, field, message string) error {
	return fail(c, apperr.Validation(field, message))
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("id", "invalid id")
	}
	return id, nil
}

func pathUUID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.NotFound()
	}
	return id, nil
}

// queryPage clamps out-of-range values instead of rejecting them.
func queryPage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	if page > 10000 {
		return 10000
	}
	return page
}

func queryLimit(c echo.Context, def int) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		return def
	}
	if limit > 100 {
		return 100
	}
	return limit
}
