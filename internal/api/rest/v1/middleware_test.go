//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/cache"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookie = "admin_session"

func gatedEngine(authService *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", AdminGate(authService, testCookie), func(ctx *gin.Context) {
		principal, ok := PrincipalFrom(ctx)
		if !ok {
			ctx.Status(http.StatusTeapot)
			return
		}
		ctx.JSON(http.StatusOK, principal)
	})
	return r
}

func TestAdminGate_MissingToken(t *testing.T) {
	authService := new(MockAuthService)
	r := gatedEngine(authService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/private", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, msgAuthRequired, testutil.DecodeJSON(t, w)["message"])
	authService.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestAdminGate_BearerToken(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("Authenticate", mock.Anything, "tok").
		Return(&auth.Principal{UserID: "u-1", IsAdmin: true}, nil)
	r := gatedEngine(authService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-1", testutil.DecodeJSON(t, w)["id"])
	authService.AssertExpectations(t)
}

func TestAdminGate_CookieTakesPrecedence(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("Authenticate", mock.Anything, "from-cookie").
		Return(&auth.Principal{UserID: "u-2", IsAdmin: true}, nil)
	r := gatedEngine(authService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	authService.AssertExpectations(t)
}

func TestAdminGate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid token", apperr.ErrUnauthenticated, http.StatusUnauthorized, msgAuthRequired},
		{"not admin", apperr.ErrForbidden, http.StatusForbidden, msgAdminRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := new(MockAuthService)
			authService.On("Authenticate", mock.Anything, "tok").Return(nil, tt.err)
			r := gatedEngine(authService)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/private", nil)
			req.Header.Set("Authorization", "Bearer tok")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, testutil.DecodeJSON(t, w)["message"])
		})
	}
}

func TestRouteCache_ServesRepeatedGets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := cache.NewMemoryStore()
	routeCache := NewRouteCache(store, time.Minute, testutil.SetupTestLogger(t))

	calls := 0
	r := gin.New()
	group := r.Group(BasePath, routeCache.Middleware())
	group.GET("/users", func(ctx *gin.Context) {
		calls++
		ctx.JSON(http.StatusOK, DataResponse{Data: calls})
	})
	group.GET("/missing", func(ctx *gin.Context) {
		calls++
		respondMessage(ctx, http.StatusNotFound, "nope")
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		return w
	}

	first := get("/api/v1/users?page=1")
	assert.Equal(t, cacheMiss, first.Header().Get(cacheHeader))

	second := get("/api/v1/users?page=1")
	assert.Equal(t, cacheHit, second.Header().Get(cacheHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, calls)

	get("/api/v1/missing")
	get("/api/v1/missing")
	assert.Equal(t, 3, calls)

	routeCache.Invalidate(testContext(t), "/users")
	third := get("/api/v1/users?page=1")
	assert.Equal(t, cacheMiss, third.Header().Get(cacheHeader))
	assert.Equal(t, 4, calls)
	require.Equal(t, 1, store.Len())
}

func testContext(t *testing.T) *gin.Context {
	c, _ := testutil.NewJSONContext(t, http.MethodGet, "/", nil)
	return c
}
