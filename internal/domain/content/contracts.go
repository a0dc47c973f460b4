package content

import (
	"context"
)

// ContentService defines CRUD over the content taxonomies.
type ContentService interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*Category, error)
	UpdateCategory(ctx context.Context, id int64, input *CategoryInput) (*Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListTags(ctx context.Context, kind TagKind) ([]*Tag, error)
	CreateTag(ctx context.Context, kind TagKind, input *TagInput) (*Tag, error)
	UpdateTag(ctx context.Context, kind TagKind, id int64, input *TagInput) (*Tag, error)
	DeleteTag(ctx context.Context, kind TagKind, id int64) error

	ListLanguages(ctx context.Context) ([]*Language, error)
	CreateLanguage(ctx context.Context, input *LanguageInput) (*Language, error)
	UpdateLanguage(ctx context.Context, id int64, input *LanguageInput) (*Language, error)
	DeleteLanguage(ctx context.Context, id int64) error

	ListQuestions(ctx context.Context, query *QuestionQuery) ([]*Question, error)
	// CreateQuestion defaults IsActive to true and DisplayOrder to the current maximum plus one.
	CreateQuestion(ctx context.Context, input *QuestionInput) (*Question, error)
	UpdateQuestion(ctx context.Context, id int64, input *QuestionInput) (*Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
}

// ContentRepository defines the interface for content persistence
type ContentRepository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*Category, error)
	UpdateCategory(ctx context.Context, id int64, input *CategoryInput) (*Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListTags(ctx context.Context, kind TagKind) ([]*Tag, error)
	CreateTag(ctx context.Context, kind TagKind, input *TagInput) (*Tag, error)
	UpdateTag(ctx context.Context, kind TagKind, id int64, input *TagInput) (*Tag, error)
	DeleteTag(ctx context.Context, kind TagKind, id int64) error

	ListLanguages(ctx context.Context) ([]*Language, error)
	CreateLanguage(ctx context.Context, input *LanguageInput) (*Language, error)
	UpdateLanguage(ctx context.Context, id int64, input *LanguageInput) (*Language, error)
	DeleteLanguage(ctx context.Context, id int64) error

	ListQuestions(ctx context.Context, query *QuestionQuery) ([]*Question, error)
	MaxQuestionOrder(ctx context.Context) (int, error)
	CreateQuestion(ctx context.Context, question *Question) error
	UpdateQuestion(ctx context.Context, id int64, input *QuestionInput) (*Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
}
