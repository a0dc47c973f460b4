package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"

	"gorm.io/gorm"
)

// paginate applies LIMIT/OFFSET of a normalized page.
func paginate(p pagination.Params) func(*gorm.DB) *gorm.DB {
	p = p.Normalize()
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Limit)
	}
}

// likeEscape declares the escape character used by likePattern. SQLite has no
// default escape character, so every LIKE with a likePattern argument needs it.
const likeEscape = ` ESCAPE '\'`

// likePattern lowercases s and wraps it for a substring LIKE match.
func likePattern(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
	return "%" + s + "%"
}

// likeAny ORs an escaped LIKE over columns, one placeholder each.
func likeAny(columns ...string) string {
	conds := make([]string, len(columns))
	for i, c := range columns {
		conds[i] = c + " LIKE ?" + likeEscape
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

// translateNotFound maps gorm.ErrRecordNotFound to apperr.ErrNotFound.
func translateNotFound(err error, entity string, id interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s with ID %v %w", entity, id, apperr.ErrNotFound)
	}
	return fmt.Errorf("failed to fetch %s: %w", entity, err)
}

// notFound builds the error returned when a write matched no row.
func notFound(entity string, id interface{}) error {
	return fmt.Errorf("%s with ID %v %w", entity, id, apperr.ErrNotFound)
}

// exists reports whether a row of model matches id.
func exists(tx *gorm.DB, model interface{}, id interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
