package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/pkg/validators"
)

// DevOTP is the fixed code accepted by the development OTP provider.
const DevOTP = "1234"

// Principal is the identity carried by an admin session.
type Principal struct {
	UserID    string `json:"id"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar"`
	IsAdmin   bool   `json:"isAdmin"`
}

// PrincipalFromUser builds a session principal from a user.
func PrincipalFromUser(u *users.User) Principal {
	return Principal{
		UserID:    u.ID,
		Phone:     u.PhoneNo,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.ProfilePhotoURL,
		IsAdmin:   u.IsAdmin,
	}
}

// Session is an issued admin session.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      Principal `json:"user"`
}

// OTPRequest asks for a code to be sent to a phone.
type OTPRequest struct {
	PhoneNo     string `json:"phoneNo" validate:"required,phone"`
	CountryCode string `json:"countryCode" validate:"omitempty,digits,max=4"`
}

// Validate for validating OTPRequest struct
func (r *OTPRequest) Validate() error {
	r.PhoneNo = strings.TrimSpace(r.PhoneNo)
	if r.PhoneNo == "" {
		return fmt.Errorf("%w: Phone number is required", apperr.ErrInvalidInput)
	}
	if err := validators.ValidateStruct(r); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	return nil
}

// Credentials are a phone and the code sent to it.
type Credentials struct {
	PhoneNo     string `json:"phoneNo" validate:"required,phone"`
	OTP         string `json:"otp" validate:"required,digits"`
	CountryCode string `json:"countryCode" validate:"omitempty,digits,max=4"`
}

// Validate checks the phone format and that the code has exactly otpLength digits.
func (c *Credentials) Validate(otpLength int) error {
	c.PhoneNo = strings.TrimSpace(c.PhoneNo)
	c.OTP = strings.TrimSpace(c.OTP)
	if c.PhoneNo == "" || c.OTP == "" {
		return fmt.Errorf("%w: Phone number and OTP are required", apperr.ErrInvalidInput)
	}
	if err := validators.ValidateStruct(c); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	if len(c.OTP) != otpLength {
		return fmt.Errorf("%w: OTP must be %d digits", apperr.ErrInvalidOTP, otpLength)
	}
	return nil
}

// Recipient joins a country code and a phone number the way SMS gateways expect.
func Recipient(countryCode, phoneNo string) string {
	if strings.HasPrefix(phoneNo, "+") {
		return phoneNo
	}
	return "+" + countryCode + phoneNo
}

// SMSMessage is a text message handed to a dispatcher.
type SMSMessage struct {
	To          string    `json:"to"`
	PhoneNo     string    `json:"phoneNo"`
	CountryCode string    `json:"countryCode"`
	Body        string    `json:"body"`
	Feature     string    `json:"feature"`
	CreatedAt   time.Time `json:"createdAt"`
}
