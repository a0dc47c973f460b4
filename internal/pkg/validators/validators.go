// Package validators holds custom go-playground validations and the shared
// struct validation helper used by domain entities and query objects.
package validators

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// get returns a validator with every custom validation registered.
func get() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("phone", PhoneValidation)
		_ = v.RegisterValidation("digits", DigitsValidation)
		instance = v
	})
	return instance
}

// ValidateStruct validates s and flattens validator errors into one message.
func ValidateStruct(s interface{}) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
