package v1

import (
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse acknowledges a write that has no resource to return
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse wraps a single resource
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ListResponse wraps a page of resources
type ListResponse struct {
	Data       interface{}           `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
	Stats      interface{}           `json:"stats,omitempty"`
}

// CollectionResponse wraps an unpaginated list
type CollectionResponse struct {
	Data interface{} `json:"data"`
}

// VerifiedUser is the user returned after a successful OTP check
type VerifiedUser struct {
	UserID    string `json:"userId"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// VerifyOTPResponse is returned by the verify-otp route
type VerifyOTPResponse struct {
	Message string       `json:"message"`
	Data    VerifiedUser `json:"data"`
}

// ForceLogoutResponse reports how many session tokens were revoked
type ForceLogoutResponse struct {
	Message       string `json:"message"`
	TokensRemoved int64  `json:"tokensRemoved"`
}

// VerificationRequest sets the verified flag of a user
type VerificationRequest struct {
	IsVerified *bool `json:"isVerified" binding:"required"`
}

// PublishRequest publishes or unpublishes an event
type PublishRequest struct {
	IsPublished *bool `json:"isPublished" binding:"required"`
}

// StatusRequest changes the lifecycle status of an event
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
