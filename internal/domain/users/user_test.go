//go:build unit
// +build unit

package users

import (
	"errors"
	"strings"
	"testing"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	valid := &User{ID: "u-1", FirstName: "Asha", Email: "asha@example.com", PhoneNo: "9876543210"}
	assert.NoError(t, valid.Validate())

	invalid := &User{ID: "u-1", Email: "not-an-email"}
	err := invalid.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Email")

	missingID := &User{}
	assert.Error(t, missingID.Validate())
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Asha Rao", (&User{FirstName: "Asha", LastName: "Rao"}).FullName())
	assert.Equal(t, "Asha", (&User{FirstName: "Asha"}).FullName())
	assert.Equal(t, "Rao", (&User{LastName: "Rao"}).FullName())
}

func TestUserQuery_Validate(t *testing.T) {
	q := NewUserQuery()
	q.Search = "asha"
	assert.NoError(t, q.Validate())
	assert.Equal(t, 20, q.Page.Limit)

	q.Search = strings.Repeat("a", 101)
	err := q.Validate()
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestUserUpdate(t *testing.T) {
	update := &UserUpdate{}
	assert.True(t, update.IsEmpty())

	bad := "nope"
	update.Email = &bad
	assert.False(t, update.IsEmpty())
	assert.True(t, errors.Is(update.Validate(), apperr.ErrInvalidInput))

	good := "asha@example.com"
	update.Email = &good
	assert.NoError(t, update.Validate())
}
