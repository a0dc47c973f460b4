package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gin-gonic/gin"
)

const principalKey = "admin.principal"

// AdminGate requires a valid admin session taken from the session cookie
// or an Authorization bearer header.
func AdminGate(authService auth.AuthService, cookieName string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := sessionToken(ctx, cookieName)
		if token == "" {
			respondMessage(ctx, http.StatusUnauthorized, msgAuthRequired)
			return
		}

		principal, err := authService.Authenticate(ctx, token)
		switch {
		case err == nil:
		case errors.Is(err, apperr.ErrForbidden):
			respondMessage(ctx, http.StatusForbidden, msgAdminRequired)
			return
		case errors.Is(err, apperr.ErrUnauthenticated):
			respondMessage(ctx, http.StatusUnauthorized, msgAuthRequired)
			return
		default:
			respondError(ctx, err)
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// PrincipalFrom returns the admin stored by AdminGate
func PrincipalFrom(ctx *gin.Context) (*auth.Principal, bool) {
	v, ok := ctx.Get(principalKey)
	if !ok {
		return nil, false
	}
	principal, ok := v.(*auth.Principal)
	return principal, ok && principal != nil
}

func sessionToken(ctx *gin.Context, cookieName string) string {
	if cookie, err := ctx.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	header := ctx.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// currentAdmin writes a 401 and returns false when no principal is present
func currentAdmin(ctx *gin.Context) (*auth.Principal, bool) {
	principal, ok := PrincipalFrom(ctx)
	if !ok {
		respondMessage(ctx, http.StatusUnauthorized, msgAuthRequired)
	}
	return principal, ok
}
