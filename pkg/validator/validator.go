package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustom binds the validation tags request structs use beyond the
// built-in set. It must run before the first request is bound.
func RegisterCustom(v *validator.Validate) error {
	return v.RegisterValidation("nonblankphone", nonBlankPhone)
}

// nonBlankPhone passes when at least one entry carries a non-blank value.
// The intake form submits fixed-size phone slots, so lists made entirely of
// empty strings are a common malformed payload.
func nonBlankPhone(fl validator.FieldLevel) bool {
	phones, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	for _, p := range phones {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}
