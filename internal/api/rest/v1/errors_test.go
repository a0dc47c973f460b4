//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("bad: %w", apperr.ErrInvalidInput), http.StatusBadRequest},
		{apperr.ErrInvalidOTP, http.StatusBadRequest},
		{fmt.Errorf("%w: Pending to Completed", apperr.ErrInvalidTransition), http.StatusBadRequest},
		{apperr.ErrUnauthenticated, http.StatusUnauthorized},
		{apperr.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("user u-1: %w", apperr.ErrNotFound), http.StatusNotFound},
		{apperr.ErrRateLimited, http.StatusTooManyRequests},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestRespondError_HidesInternalErrors(t *testing.T) {
	c, w := testutil.NewJSONContext(t, http.MethodGet, "/", nil)

	respondError(c, errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, msgInternalError, testutil.DecodeJSON(t, w)["message"])
	assert.Len(t, c.Errors, 1)
}

func TestRespondError_ExposesInputErrors(t *testing.T) {
	c, w := testutil.NewJSONContext(t, http.MethodGet, "/", nil)

	respondError(c, fmt.Errorf("%w: no fields to update", apperr.ErrInvalidInput))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid input: no fields to update", testutil.DecodeJSON(t, w)["message"])
}
