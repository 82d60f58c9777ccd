package router

import (
	"regexp"

	"gopkg.in/go-playground/validator.v9"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{3,32}$`)

// bcrypt rejects longer input
const maxPasswordBytes = 72

// NewValidator func
func NewValidator() *Validator {
	v := validator.New()
	if err := v.RegisterValidation("username", validateUsername); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("bcryptlen", validateBcryptLen); err != nil {
		panic(err)
	}
	return &Validator{
		validator: v,
	}
}

// Validator struct
type Validator struct {
	validator *validator.Validate
}

// Validate func
func (v *Validator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// validateBcryptLen counts bytes, max= counts runes
func validateBcryptLen(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= maxPasswordBytes
}
