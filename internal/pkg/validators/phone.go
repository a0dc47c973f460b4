package validators

import (
	"github.com/go-playground/validator/v10"
)

const (
	minPhoneLength = 10
	maxPhoneLength = 15
)

// PhoneValidation accepts 10 to 15 characters of digits with an optional leading '+'.
func PhoneValidation(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if len(phone) < minPhoneLength || len(phone) > maxPhoneLength {
		return false
	}
	for i, r := range phone {
		if r == '+' && i == 0 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// DigitsValidation accepts non-empty strings made only of ASCII digits.
func DigitsValidation(fl validator.FieldLevel) bool {
	return IsDigits(fl.Field().String())
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
