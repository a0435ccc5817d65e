// Package apperr defines the coded errors the API returns. Every error the
// client can branch on carries a stable machine-readable code independent of
// the message text.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeItemNotFound   = "ITEM_NOT_FOUND"
	CodeItemOutOfStock = "ITEM_OUT_OF_STOCK"
	CodeInvalidQty     = "INVALID_QUANTITY"
	CodeInvalidSize    = "INVALID_SIZE"
	CodeInvalidColor   = "INVALID_COLOR"
	CodeTotalMismatch  = "TOTAL_MISMATCH"
	CodeRateLimited    = "RATE_LIMITED"
	CodeProductInUse   = "PRODUCT_IN_USE"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeInternal       = "INTERNAL_ERROR"
)

// Details names the first offending field; errors are never aggregated.
type Details struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Status  int      `json:"-"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details *Details `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// NewField attaches a field path to the error, e.g. "items[2].selectedSize".
func NewField(status int, code, message, field string) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Details: &Details{Field: field, Message: message},
	}
}

func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func NotFound() *Error {
	return New(http.StatusNotFound, CodeNotFound, "resource not found")
}

func Validation(field, message string) *Error {
	return NewField(http.StatusBadRequest, CodeValidation, message, field)
}

func Unauthorized() *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
}

func Forbidden() *Error {
	return New(http.StatusForbidden, CodeForbidden, "forbidden")
}

func Internal() *Error {
	return New(http.StatusInternalServerError, CodeInternal, "internal server error")
}
