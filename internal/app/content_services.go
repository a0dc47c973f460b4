package app

import (
	"context"
	"strings"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/content"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
)

// contentService implements the ContentService interface
type contentService struct {
	contentRepo content.ContentRepository
	now         func() time.Time
	logger      logger.Logger
}

// NewContentService creates a new contentService instance
func NewContentService(contentRepo content.ContentRepository, logger logger.Logger) (content.ContentService, error) {
	return &contentService{
		contentRepo: contentRepo,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      logger,
	}, nil
}

func (s *contentService) ListCategories(ctx context.Context) ([]*content.Category, error) {
	return s.contentRepo.ListCategories(ctx)
}

func (s *contentService) CreateCategory(ctx context.Context, input *content.CategoryInput) (*content.Category, error) {
	if err := input.ValidateCreate(); err != nil {
		return nil, err
	}
	return s.contentRepo.CreateCategory(ctx, input)
}

func (s *contentService) UpdateCategory(ctx context.Context, id int64, input *content.CategoryInput) (*content.Category, error) {
	if err := input.ValidateUpdate(); err != nil {
		return nil, err
	}
	return s.contentRepo.UpdateCategory(ctx, id, input)
}

func (s *contentService) DeleteCategory(ctx context.Context, id int64) error {
	return s.contentRepo.DeleteCategory(ctx, id)
}

func (s *contentService) ListTags(ctx context.Context, kind content.TagKind) ([]*content.Tag, error) {
	return s.contentRepo.ListTags(ctx, kind)
}

func (s *contentService) CreateTag(ctx context.Context, kind content.TagKind, input *content.TagInput) (*content.Tag, error) {
	if err := input.ValidateCreate(); err != nil {
		return nil, err
	}
	return s.contentRepo.CreateTag(ctx, kind, input)
}

func (s *contentService) UpdateTag(ctx context.Context, kind content.TagKind, id int64, input *content.TagInput) (*content.Tag, error) {
	if err := input.ValidateUpdate(); err != nil {
		return nil, err
	}
	return s.contentRepo.UpdateTag(ctx, kind, id, input)
}

func (s *contentService) DeleteTag(ctx context.Context, kind content.TagKind, id int64) error {
	return s.contentRepo.DeleteTag(ctx, kind, id)
}

func (s *contentService) ListLanguages(ctx context.Context) ([]*content.Language, error) {
	return s.contentRepo.ListLanguages(ctx)
}

func (s *contentService) CreateLanguage(ctx context.Context, input *content.LanguageInput) (*content.Language, error) {
	if err := input.ValidateCreate(); err != nil {
		return nil, err
	}
	return s.contentRepo.CreateLanguage(ctx, input)
}

func (s *contentService) UpdateLanguage(ctx context.Context, id int64, input *content.LanguageInput) (*content.Language, error) {
	if err := input.ValidateUpdate(); err != nil {
		return nil, err
	}
	return s.contentRepo.UpdateLanguage(ctx, id, input)
}

func (s *contentService) DeleteLanguage(ctx context.Context, id int64) error {
	return s.contentRepo.DeleteLanguage(ctx, id)
}

func (s *contentService) ListQuestions(ctx context.Context, query *content.QuestionQuery) ([]*content.Question, error) {
	return s.contentRepo.ListQuestions(ctx, query)
}

func (s *contentService) CreateQuestion(ctx context.Context, input *content.QuestionInput) (*content.Question, error) {
	if err := input.ValidateCreate(); err != nil {
		return nil, err
	}

	question := &content.Question{
		QuestionText: strings.TrimSpace(*input.QuestionText),
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if input.Category != nil {
		question.Category = *input.Category
	}
	if input.IsActive != nil {
		question.IsActive = *input.IsActive
	}
	if input.DisplayOrder != nil {
		question.DisplayOrder = *input.DisplayOrder
	} else {
		maxOrder, err := s.contentRepo.MaxQuestionOrder(ctx)
		if err != nil {
			return nil, err
		}
		question.DisplayOrder = maxOrder + 1
	}

	if err := s.contentRepo.CreateQuestion(ctx, question); err != nil {
		return nil, err
	}
	s.logger.Info("Created question with id ", question.ID)
	return question, nil
}

func (s *contentService) UpdateQuestion(ctx context.Context, id int64, input *content.QuestionInput) (*content.Question, error) {
	if err := input.ValidateUpdate(); err != nil {
		return nil, err
	}
	return s.contentRepo.UpdateQuestion(ctx, id, input)
}

func (s *contentService) DeleteQuestion(ctx context.Context, id int64) error {
	return s.contentRepo.DeleteQuestion(ctx, id)
}
