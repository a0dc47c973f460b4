//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/content"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContentServiceUnderTest(t *testing.T) (content.ContentService, *MockContentRepository) {
	t.Helper()
	repo := new(MockContentRepository)
	svc, err := NewContentService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return svc, repo
}

func strPtr(s string) *string { return &s }

func TestContentService_CreateQuestion_DefaultsOrderAndActive(t *testing.T) {
	svc, repo := newContentServiceUnderTest(t)
	ctx := context.Background()

	repo.On("MaxQuestionOrder", ctx).Return(4, nil)
	repo.On("CreateQuestion", ctx, mock.MatchedBy(func(q *content.Question) bool {
		return q.QuestionText == "Favourite venue?" && q.IsActive && q.DisplayOrder == 5
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*content.Question).ID = 11
	}).Return(nil)

	q, err := svc.CreateQuestion(ctx, &content.QuestionInput{QuestionText: strPtr("  Favourite venue? ")})
	require.NoError(t, err)
	assert.Equal(t, int64(11), q.ID)
	assert.Equal(t, 5, q.DisplayOrder)
	repo.AssertExpectations(t)
}

func TestContentService_CreateQuestion_ExplicitOrder(t *testing.T) {
	svc, repo := newContentServiceUnderTest(t)
	ctx := context.Background()

	order := 2
	inactive := false
	repo.On("CreateQuestion", ctx, mock.MatchedBy(func(q *content.Question) bool {
		return q.DisplayOrder == 2 && !q.IsActive
	})).Return(nil)

	_, err := svc.CreateQuestion(ctx, &content.QuestionInput{QuestionText: strPtr("Weekend plans?"), DisplayOrder: &order, IsActive: &inactive})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "MaxQuestionOrder", mock.Anything)
}

func TestContentService_CreateCategory_RequiresName(t *testing.T) {
	svc, repo := newContentServiceUnderTest(t)

	_, err := svc.CreateCategory(context.Background(), &content.CategoryInput{Color: strPtr("#fff")})
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
	repo.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestContentService_UpdateTag(t *testing.T) {
	svc, repo := newContentServiceUnderTest(t)
	ctx := context.Background()

	input := &content.TagInput{Unicode: strPtr("🎹")}
	repo.On("UpdateTag", ctx, content.KindHobby, int64(3), input).Return(&content.Tag{ID: 3, Name: "Piano", Unicode: "🎹"}, nil)

	tag, err := svc.UpdateTag(ctx, content.KindHobby, 3, input)
	require.NoError(t, err)
	assert.Equal(t, "🎹", tag.Unicode)

	_, err = svc.UpdateTag(ctx, content.KindHobby, 3, &content.TagInput{Name: strPtr(" ")})
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}
