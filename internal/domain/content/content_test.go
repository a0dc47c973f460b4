//go:build unit
// +build unit

package content

import (
	"errors"
	"testing"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParseTagKind(t *testing.T) {
	kind, err := ParseTagKind("hobbies")
	assert.NoError(t, err)
	assert.Equal(t, KindHobby, kind)

	kind, err = ParseTagKind("interests")
	assert.NoError(t, err)
	assert.Equal(t, KindInterest, kind)

	_, err = ParseTagKind("skills")
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestCategoryInput(t *testing.T) {
	assert.Error(t, (&CategoryInput{}).ValidateCreate())
	assert.Error(t, (&CategoryInput{Name: strPtr("  ")}).ValidateCreate())
	assert.NoError(t, (&CategoryInput{Name: strPtr("Music"), Color: strPtr("#ff0000")}).ValidateCreate())

	assert.NoError(t, (&CategoryInput{Color: strPtr("#00ff00")}).ValidateUpdate())
	assert.Error(t, (&CategoryInput{Name: strPtr("")}).ValidateUpdate())
}

func TestTagInput(t *testing.T) {
	assert.Error(t, (&TagInput{Unicode: strPtr("🎸")}).ValidateCreate())
	assert.NoError(t, (&TagInput{Name: strPtr("Guitar"), Unicode: strPtr("🎸")}).ValidateCreate())
	assert.NoError(t, (&TagInput{Unicode: strPtr("🎹")}).ValidateUpdate())
}

func TestLanguageInput(t *testing.T) {
	assert.Error(t, (&LanguageInput{Code: strPtr("hi")}).ValidateCreate())
	assert.NoError(t, (&LanguageInput{Name: strPtr("Hindi"), Code: strPtr("hi")}).ValidateCreate())
}

func TestQuestionInput(t *testing.T) {
	assert.True(t, errors.Is((&QuestionInput{}).ValidateCreate(), apperr.ErrInvalidInput))
	assert.NoError(t, (&QuestionInput{QuestionText: strPtr("Favourite venue?")}).ValidateCreate())

	negative := -1
	assert.Error(t, (&QuestionInput{DisplayOrder: &negative}).ValidateUpdate())
}
