package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gin-gonic/gin"
)

// SessionCookie describes the cookie carrying the admin session token
type SessionCookie struct {
	Name   string
	Secure bool
}

// AuthHandler defines the interface for the OTP login flow
type AuthHandler interface {
	SendOTP(ctx *gin.Context)
	VerifyOTP(ctx *gin.Context)
	SignIn(ctx *gin.Context)
	SignOut(ctx *gin.Context)
	Session(ctx *gin.Context)
}

type authHandler struct {
	authService auth.AuthService
	cookie      SessionCookie
	now         func() time.Time
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService auth.AuthService, cookie SessionCookie) AuthHandler {
	return &authHandler{
		authService: authService,
		cookie:      cookie,
		now:         time.Now,
	}
}

// SendOTP handles the POST request that sends a login code
// @Summary Send a one-time password
// @Description Generate a login code for the phone number and dispatch it by SMS.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body auth.OTPRequest true "Phone number"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/send-otp [post]
func (handler *authHandler) SendOTP(ctx *gin.Context) {
	var request auth.OTPRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := handler.authService.SendOTP(ctx, &request); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "OTP sent successfully"})
}

// VerifyOTP handles the POST request that checks a login code
// @Summary Verify a one-time password
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body auth.Credentials true "Phone number and code"
// @Success 200 {object} VerifyOTPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/verify-otp [post]
func (handler *authHandler) VerifyOTP(ctx *gin.Context) {
	var creds auth.Credentials
	if err := ctx.ShouldBindJSON(&creds); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := handler.authService.VerifyOTP(ctx, &creds)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respondMessage(ctx, http.StatusNotFound, "User not found")
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, VerifyOTPResponse{
		Message: "OTP verified successfully",
		Data: VerifiedUser{
			UserID:    user.ID,
			Phone:     user.PhoneNo,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	})
}

// SignIn handles the POST request that exchanges a code for an admin session
// @Summary Sign in as admin
// @Description Verify the code, require the admin flag and issue a session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body auth.Credentials true "Phone number and code"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/sign-in [post]
func (handler *authHandler) SignIn(ctx *gin.Context) {
	var creds auth.Credentials
	if err := ctx.ShouldBindJSON(&creds); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	session, err := handler.authService.SignIn(ctx, &creds)
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrNotFound):
		respondMessage(ctx, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, apperr.ErrForbidden):
		respondMessage(ctx, http.StatusForbidden, "Access denied. Admin privileges required.")
		return
	default:
		respondError(ctx, err)
		return
	}

	maxAge := int(session.ExpiresAt.Sub(handler.now()).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(handler.cookie.Name, session.Token, maxAge, "/", "", handler.cookie.Secure, true)

	ctx.JSON(http.StatusOK, DataResponse{Data: session})
}

// SignOut handles the POST request that clears the session cookie
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/sign-out [post]
func (handler *authHandler) SignOut(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(handler.cookie.Name, "", -1, "/", "", handler.cookie.Secure, true)
	ctx.JSON(http.StatusOK, MessageResponse{Message: "Signed out"})
}

// Session handles the GET request returning the signed-in admin
// @Summary Current admin session
// @Tags Auth
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/session [get]
func (handler *authHandler) Session(ctx *gin.Context) {
	principal, ok := currentAdmin(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, DataResponse{Data: principal})
}
