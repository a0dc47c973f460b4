package v1

import (
	"errors"
	"net/http"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gin-gonic/gin"
)

const (
	msgAuthRequired   = "Authentication required"
	msgAdminRequired  = "Admin access required"
	msgInternalError  = "Internal server error"
	msgInvalidBody    = "Invalid request body"
	msgTooManyRequest = "Too many requests, please try again later"
)

// statusFor maps a service error to an HTTP status code
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput),
		errors.Is(err, apperr.ErrInvalidOTP),
		errors.Is(err, apperr.ErrInvalidTransition):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope for err. Unexpected errors are
// attached to the context for the access log and answered with a generic message.
func respondError(ctx *gin.Context, err error) {
	status := statusFor(err)

	var message string
	switch status {
	case http.StatusInternalServerError:
		_ = ctx.Error(err)
		message = msgInternalError
	case http.StatusUnauthorized:
		message = msgAuthRequired
	case http.StatusForbidden:
		message = msgAdminRequired
	case http.StatusTooManyRequests:
		message = msgTooManyRequest
	default:
		message = err.Error()
	}

	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

func respondMessage(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
