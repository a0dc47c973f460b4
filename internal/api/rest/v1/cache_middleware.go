package v1

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gauravkdm/admin-portal/internal/infrastructure/cache"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

const (
	cacheHeader = "X-Cache"
	cacheHit    = "HIT"
	cacheMiss   = "MISS"
)

// Invalidator drops cached GET responses after a write
type Invalidator interface {
	// Invalidate removes every cached response whose path starts with one of paths.
	// Paths are relative to BasePath.
	Invalidate(ctx context.Context, paths ...string)
}

// RouteCache caches successful GET responses keyed by path and query
type RouteCache struct {
	store  cache.Store
	ttl    time.Duration
	logger logger.Logger
}

// NewRouteCache creates a RouteCache
func NewRouteCache(store cache.Store, ttl time.Duration, logger logger.Logger) *RouteCache {
	return &RouteCache{store: store, ttl: ttl, logger: logger}
}

type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Middleware serves cached GET responses and records fresh ones
func (c *RouteCache) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet {
			ctx.Next()
			return
		}

		key := ctx.Request.URL.RequestURI()
		body, ok, err := c.store.Get(ctx, key)
		if err != nil {
			c.logger.Warn("Route cache read failed: ", err)
		}
		if ok {
			ctx.Header(cacheHeader, cacheHit)
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", body)
			ctx.Abort()
			return
		}

		ctx.Header(cacheHeader, cacheMiss)
		writer := &recordingWriter{ResponseWriter: ctx.Writer}
		ctx.Writer = writer
		ctx.Next()

		if writer.Status() != http.StatusOK || writer.body.Len() == 0 {
			return
		}
		if err := c.store.Set(ctx, key, writer.body.Bytes(), c.ttl); err != nil {
			c.logger.Warn("Route cache write failed: ", err)
		}
	}
}

func (c *RouteCache) Invalidate(ctx context.Context, paths ...string) {
	prefixes := make([]string, 0, len(paths))
	for _, p := range paths {
		prefixes = append(prefixes, BasePath+p)
	}
	if err := c.store.DeletePrefix(ctx, prefixes...); err != nil {
		c.logger.Warn("Route cache invalidation failed: ", err)
	}
}
