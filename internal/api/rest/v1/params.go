package v1

import (
	"fmt"
	"strconv"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
)

func pageParams(ctx *gin.Context, defaultLimit int) pagination.Params {
	return pagination.Parse(ctx.Query("page"), ctx.Query("limit"), defaultLimit)
}

// numericID parses a numeric path parameter
func numericID(ctx *gin.Context, name string) (int64, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", apperr.ErrInvalidInput, name, raw)
	}
	return id, nil
}

// optionalBool parses a true/false query parameter; an absent parameter yields nil
func optionalBool(ctx *gin.Context, name string) (*bool, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be true or false", apperr.ErrInvalidInput, name)
	}
	return &v, nil
}

// optionalInt parses an integer query parameter; an absent parameter yields zero
func optionalInt(ctx *gin.Context, name string) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", apperr.ErrInvalidInput, name)
	}
	return v, nil
}
