package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/pkg/validators"
)

// TagKind selects one of the two name/emoji taxonomies.
type TagKind string

const (
	KindHobby    TagKind = "hobbies"
	KindInterest TagKind = "interests"
)

// ParseTagKind validates a tag kind taken from a route.
func ParseTagKind(s string) (TagKind, error) {
	switch TagKind(s) {
	case KindHobby, KindInterest:
		return TagKind(s), nil
	}
	return "", fmt.Errorf("%w: unknown taxonomy %q", apperr.ErrInvalidInput, s)
}

// Category is an event category.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Unicode      string `json:"unicode"`
	Color        string `json:"color"`
	MappingCount int64  `json:"mappingCount"`
}

// Tag is a hobby or interest.
type Tag struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Unicode string `json:"unicode"`
}

// Language is a spoken language users can list.
type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Question is a profile prompt users answer.
type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"questionText"`
	Category     string    `json:"category"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CategoryInput creates or partially updates a category.
type CategoryInput struct {
	Name        *string `json:"Name" validate:"omitempty,max=100"`
	Description *string `json:"Description" validate:"omitempty,max=500"`
	Unicode     *string `json:"Unicode" validate:"omitempty,max=32"`
	Color       *string `json:"Color" validate:"omitempty,max=32"`
}

// ValidateCreate requires a name.
func (c *CategoryInput) ValidateCreate() error {
	if isBlank(c.Name) {
		return fmt.Errorf("%w: Name is required", apperr.ErrInvalidInput)
	}
	return validateInput(c)
}

// ValidateUpdate rejects a blank name when one is given.
func (c *CategoryInput) ValidateUpdate() error {
	if c.Name != nil && isBlank(c.Name) {
		return fmt.Errorf("%w: Name must not be empty", apperr.ErrInvalidInput)
	}
	return validateInput(c)
}

// TagInput creates or partially updates a hobby or interest.
type TagInput struct {
	Name    *string `json:"Name" validate:"omitempty,max=100"`
	Unicode *string `json:"Unicode" validate:"omitempty,max=32"`
}

// ValidateCreate requires a name.
func (t *TagInput) ValidateCreate() error {
	if isBlank(t.Name) {
		return fmt.Errorf("%w: Name is required", apperr.ErrInvalidInput)
	}
	return validateInput(t)
}

// ValidateUpdate rejects a blank name when one is given.
func (t *TagInput) ValidateUpdate() error {
	if t.Name != nil && isBlank(t.Name) {
		return fmt.Errorf("%w: Name must not be empty", apperr.ErrInvalidInput)
	}
	return validateInput(t)
}

// LanguageInput creates or partially updates a language.
type LanguageInput struct {
	Name *string `json:"Name" validate:"omitempty,max=100"`
	Code *string `json:"Code" validate:"omitempty,max=10"`
}

// ValidateCreate requires a name.
func (l *LanguageInput) ValidateCreate() error {
	if isBlank(l.Name) {
		return fmt.Errorf("%w: Name is required", apperr.ErrInvalidInput)
	}
	return validateInput(l)
}

// ValidateUpdate rejects a blank name when one is given.
func (l *LanguageInput) ValidateUpdate() error {
	if l.Name != nil && isBlank(l.Name) {
		return fmt.Errorf("%w: Name must not be empty", apperr.ErrInvalidInput)
	}
	return validateInput(l)
}

// QuestionInput creates or partially updates a question.
type QuestionInput struct {
	QuestionText *string `json:"QuestionText" validate:"omitempty,max=500"`
	Category     *string `json:"Category" validate:"omitempty,max=100"`
	IsActive     *bool   `json:"IsActive"`
	DisplayOrder *int    `json:"DisplayOrder" validate:"omitempty,min=0"`
}

// ValidateCreate requires the question text.
func (q *QuestionInput) ValidateCreate() error {
	if isBlank(q.QuestionText) {
		return fmt.Errorf("%w: QuestionText is required", apperr.ErrInvalidInput)
	}
	return validateInput(q)
}

// ValidateUpdate rejects blank question text when given.
func (q *QuestionInput) ValidateUpdate() error {
	if q.QuestionText != nil && isBlank(q.QuestionText) {
		return fmt.Errorf("%w: QuestionText must not be empty", apperr.ErrInvalidInput)
	}
	return validateInput(q)
}

// QuestionQuery filters questions.
type QuestionQuery struct {
	Category string
	Active   *bool
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func validateInput(s interface{}) error {
	if err := validators.ValidateStruct(s); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	return nil
}
