package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the validate tags of a model. Services call it before
// every insert or update.
func Validate(m any) error {
	return validate.Struct(m)
}
