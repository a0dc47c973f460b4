//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type phoneHolder struct {
	Phone string `validate:"required,phone"`
	Code  string `validate:"omitempty,digits,len=4"`
}

func TestPhoneValidation(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"ten digits", "9876543210", true},
		{"fifteen digits", "123456789012345", true},
		{"leading plus", "+919876543210", true},
		{"too short", "98765", false},
		{"too long", "1234567890123456", false},
		{"letters", "98765abcde", false},
		{"plus in middle", "98765+43210", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&phoneHolder{Phone: tt.phone})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "Field: Phone")
			}
		})
	}
}

func TestDigitsValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(&phoneHolder{Phone: "9876543210", Code: "1234"}))

	err := ValidateStruct(&phoneHolder{Phone: "9876543210", Code: "12a4"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Tag: digits")
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("0042"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("4 2"))
}
