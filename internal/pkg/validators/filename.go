package validators

import (
	"github.com/go-playground/validator/v10"
)

// SafeFileNameTag is the validate tag registered for FileNameValidation
const SafeFileNameTag = "safe_filename"

// FileNameValidation accepts names made of letters, digits, '.', '_' and '-' that do not start with a dot.
func FileNameValidation(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || name[0] == '.' {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}
