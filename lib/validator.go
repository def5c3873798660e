package lib

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator : Custom Validator struct
type CustomValidator struct {
	Validator *validator.Validate
}

// Validate : Validate the given struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.Validator.Struct(i)
}
