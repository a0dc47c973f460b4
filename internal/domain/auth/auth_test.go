//go:build unit
// +build unit

package auth

import (
	"errors"
	"testing"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/stretchr/testify/assert"
)

func TestOTPRequest_Validate(t *testing.T) {
	err := (&OTPRequest{}).Validate()
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Phone number is required")

	assert.True(t, errors.Is((&OTPRequest{PhoneNo: "123"}).Validate(), apperr.ErrInvalidInput))
	assert.NoError(t, (&OTPRequest{PhoneNo: " 9876543210 ", CountryCode: "91"}).Validate())
}

func TestCredentials_Validate(t *testing.T) {
	err := (&Credentials{PhoneNo: "9876543210"}).Validate(4)
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Phone number and OTP are required")

	err = (&Credentials{PhoneNo: "9876543210", OTP: "12345"}).Validate(4)
	assert.True(t, errors.Is(err, apperr.ErrInvalidOTP))

	err = (&Credentials{PhoneNo: "9876543210", OTP: "12a4"}).Validate(4)
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))

	assert.NoError(t, (&Credentials{PhoneNo: "9876543210", OTP: "1234"}).Validate(4))
}

func TestRecipient(t *testing.T) {
	assert.Equal(t, "+919876543210", Recipient("91", "9876543210"))
	assert.Equal(t, "+14155550100", Recipient("91", "+14155550100"))
}

func TestPrincipalFromUser(t *testing.T) {
	u := &users.User{ID: "u-1", PhoneNo: "9876543210", FirstName: "Asha", LastName: "Rao", ProfilePhotoURL: "https://cdn/x.png", IsAdmin: true}
	p := PrincipalFromUser(u)
	assert.Equal(t, "u-1", p.UserID)
	assert.Equal(t, "https://cdn/x.png", p.Avatar)
	assert.True(t, p.IsAdmin)
}
