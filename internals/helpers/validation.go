package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorsToMap flattens validator.v10 errors into field → tag.
func ValidationErrorsToMap(err error) map[string]string {
	out := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fieldErr := range ve {
			out[fieldErr.Field()] = fieldErr.Tag()
		}
	}
	return out
}
