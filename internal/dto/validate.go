package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks request struct shape (required fields, set sizes). Business
// rules such as length ranges and enum membership are validated by the
// moderation engine, which owns the canonical error messages.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		return fmt.Errorf("field %s failed on the %s rule", e.Field(), e.Tag())
	}
	return err
}
