package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/craneintel/crane-intelligence/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(validators.SafeFileNameTag, validators.FileNameValidation); err != nil {
		panic(err)
	}
	return v
}

// ValidateStruct runs the struct's validate tags and wraps failures in ErrValidation
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
