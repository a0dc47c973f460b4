//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSessionCookie = SessionCookie{Name: testCookie, Secure: true}

func TestAuthHandler_SendOTP_Success(t *testing.T) {
	authService := new(MockAuthService)
	handler := NewAuthHandler(authService, testSessionCookie)

	authService.On("SendOTP", mock.Anything, &auth.OTPRequest{PhoneNo: "9876543210"}).Return(nil)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/send-otp", map[string]string{"phoneNo": "9876543210"})
	handler.SendOTP(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OTP sent successfully", testutil.DecodeJSON(t, w)["message"])
	authService.AssertExpectations(t)
}

func TestAuthHandler_SendOTP_RateLimited(t *testing.T) {
	authService := new(MockAuthService)
	handler := NewAuthHandler(authService, testSessionCookie)

	authService.On("SendOTP", mock.Anything, mock.Anything).Return(apperr.ErrRateLimited)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/send-otp", map[string]string{"phoneNo": "9876543210"})
	handler.SendOTP(c)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestAuthHandler_VerifyOTP_UserNotFound(t *testing.T) {
	authService := new(MockAuthService)
	handler := NewAuthHandler(authService, testSessionCookie)

	authService.On("VerifyOTP", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("user with phone 9876543210: %w", apperr.ErrNotFound))

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/verify-otp",
		map[string]string{"phoneNo": "9876543210", "otp": "1234"})
	handler.VerifyOTP(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", testutil.DecodeJSON(t, w)["message"])
}

func TestAuthHandler_VerifyOTP_Success(t *testing.T) {
	authService := new(MockAuthService)
	handler := NewAuthHandler(authService, testSessionCookie)

	authService.On("VerifyOTP", mock.Anything, mock.Anything).
		Return(&users.User{ID: "u-1", PhoneNo: "9876543210", FirstName: "Asha", LastName: "Rao"}, nil)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/verify-otp",
		map[string]string{"phoneNo": "9876543210", "otp": "1234"})
	handler.VerifyOTP(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := testutil.DecodeJSON(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "u-1", data["userId"])
	assert.Equal(t, "Asha", data["firstName"])
}

func TestAuthHandler_SignIn_NonAdmin(t *testing.T) {
	authService := new(MockAuthService)
	handler := NewAuthHandler(authService, testSessionCookie)

	authService.On("SignIn", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("user u-1 is not an admin: %w", apperr.ErrForbidden))

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/sign-in",
		map[string]string{"phoneNo": "9876543210", "otp": "1234"})
	handler.SignIn(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied. Admin privileges required.", testutil.DecodeJSON(t, w)["message"])
}

func TestAuthHandler_SignIn_SetsCookie(t *testing.T) {
	authService := new(MockAuthService)
	h := NewAuthHandler(authService, testSessionCookie)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	h.(*authHandler).now = func() time.Time { return now }

	session := &auth.Session{
		Token:     "signed.jwt.token",
		ExpiresAt: now.Add(7 * 24 * time.Hour),
		User:      auth.Principal{UserID: "u-1", IsAdmin: true},
	}
	authService.On("SignIn", mock.Anything, mock.Anything).Return(session, nil)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/sign-in",
		map[string]string{"phoneNo": "9876543210", "otp": "1234"})
	h.SignIn(c)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.Equal(t, 7*24*60*60, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)

	data := testutil.DecodeJSON(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "signed.jwt.token", data["token"])
}

func TestAuthHandler_SignIn_InvalidBody(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthService), testSessionCookie)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/sign-in", nil)
	handler.SignIn(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_SignOut_ClearsCookie(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthService), testSessionCookie)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/sign-out", nil)
	handler.SignOut(c)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestAuthHandler_Session(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthService), testSessionCookie)

	c, w := testutil.NewJSONContext(t, http.MethodGet, "/auth/session", nil)
	handler.Session(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c, w = testutil.NewJSONContext(t, http.MethodGet, "/auth/session", nil)
	c.Set(principalKey, &auth.Principal{UserID: "u-1", IsAdmin: true})
	handler.Session(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
