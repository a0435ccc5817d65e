// Package validator adapts go-playground/validator for echo request binding.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type RequestValidator struct {
	v *validator.Validate
}

// New builds a validator that reports field names from json tags so error
// details match the wire format instead of Go struct names.
func New() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{v: v}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}

// FirstField extracts the first offending field path from a validation
// error, or "" when the error is not a field-level one.
func FirstField(err error) (field, message string, ok bool) {
	errs, isValidation := err.(validator.ValidationErrors)
	if !isValidation || len(errs) == 0 {
		return "", "", false
	}

	fe := errs[0]
	// Namespace looks like "placeOrderRequest.items[2].quantity"; drop the
	// leading struct name.
	path := fe.Namespace()
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}
	return path, "failed on rule " + fe.Tag(), true
}
