package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the ISO calendar date accepted by every date parameter.
const DateLayout = time.DateOnly

// Register installs the custom rules on a validator instance. Gin's binding validator
// is registered from bootstrap with binding.Validator.Engine().
func Register(v *validator.Validate) error {
	return v.RegisterValidation("isodate", isISODate)
}

// isISODate accepts YYYY-MM-DD strings naming a real calendar day; empty strings pass
// so optional dates can be combined with omitempty.
func isISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
