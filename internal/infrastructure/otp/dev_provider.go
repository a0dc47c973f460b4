package otp

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
)

// DevProvider accepts the fixed development code for every phone.
type DevProvider struct {
	logger logger.Logger
}

// NewDevProvider creates a DevProvider
func NewDevProvider(logger logger.Logger) *DevProvider {
	return &DevProvider{logger: logger}
}

// Generate returns the fixed development code
func (p *DevProvider) Generate(_ context.Context, phoneNo string) (string, error) {
	p.logger.Info("Development OTP for ", phoneNo, " is ", auth.DevOTP)
	return auth.DevOTP, nil
}

// Verify compares the code against the fixed development code
func (p *DevProvider) Verify(_ context.Context, _ string, code string) error {
	if subtle.ConstantTimeCompare([]byte(code), []byte(auth.DevOTP)) != 1 {
		return fmt.Errorf("%w: code does not match", apperr.ErrInvalidOTP)
	}
	return nil
}

// Length is the length of the development code
func (p *DevProvider) Length() int {
	return len(auth.DevOTP)
}
