//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/content"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestContentSqliteRepository_Categories(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	host := CreateTestUser(t, ctx.DB, "Host", "9300000001")
	event := CreateTestEvent(t, ctx.DB, host.ID, "Tour")

	music, err := ctx.ContentRepo.CreateCategory(context.Background(), &content.CategoryInput{Name: strPtr(" Music "), Color: strPtr("#fff")})
	require.NoError(t, err)
	assert.Equal(t, "Music", music.Name)
	_, err = ctx.ContentRepo.CreateCategory(context.Background(), &content.CategoryInput{Name: strPtr("Sports")})
	require.NoError(t, err)
	require.NoError(t, ctx.DB.Create(&models.EventCategoryMappingModel{EventID: event.ID, CategoryID: music.ID}).Error)

	list, err := ctx.ContentRepo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].MappingCount)
	assert.Equal(t, int64(0), list[1].MappingCount)

	updated, err := ctx.ContentRepo.UpdateCategory(context.Background(), music.ID, &content.CategoryInput{Unicode: strPtr("🎵")})
	require.NoError(t, err)
	assert.Equal(t, "Music", updated.Name)
	assert.Equal(t, "🎵", updated.Unicode)

	require.NoError(t, ctx.ContentRepo.DeleteCategory(context.Background(), music.ID))
	var count int64
	require.NoError(t, ctx.DB.Model(&models.EventCategoryMappingModel{}).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, ctx.ContentRepo.DeleteCategory(context.Background(), music.ID), apperr.ErrNotFound)
	_, err = ctx.ContentRepo.UpdateCategory(context.Background(), 9999, &content.CategoryInput{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestContentSqliteRepository_Tags(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	for _, kind := range []content.TagKind{content.KindHobby, content.KindInterest} {
		tag, err := ctx.ContentRepo.CreateTag(context.Background(), kind, &content.TagInput{Name: strPtr("Hiking")})
		require.NoError(t, err, kind)
		assert.NotZero(t, tag.ID)

		updated, err := ctx.ContentRepo.UpdateTag(context.Background(), kind, tag.ID, &content.TagInput{Name: strPtr("Trekking")})
		require.NoError(t, err, kind)
		assert.Equal(t, "Trekking", updated.Name)

		list, err := ctx.ContentRepo.ListTags(context.Background(), kind)
		require.NoError(t, err, kind)
		require.Len(t, list, 1)

		require.NoError(t, ctx.ContentRepo.DeleteTag(context.Background(), kind, tag.ID), kind)
		assert.ErrorIs(t, ctx.ContentRepo.DeleteTag(context.Background(), kind, tag.ID), apperr.ErrNotFound)
	}

	var hobbies int64
	require.NoError(t, ctx.DB.Model(&models.HobbyModel{}).Count(&hobbies).Error)
	assert.Zero(t, hobbies)
}

func TestContentSqliteRepository_Languages(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lang, err := ctx.ContentRepo.CreateLanguage(context.Background(), &content.LanguageInput{Name: strPtr("Hindi"), Code: strPtr("hi")})
	require.NoError(t, err)

	updated, err := ctx.ContentRepo.UpdateLanguage(context.Background(), lang.ID, &content.LanguageInput{Code: strPtr("hin")})
	require.NoError(t, err)
	assert.Equal(t, "Hindi", updated.Name)
	assert.Equal(t, "hin", updated.Code)

	require.NoError(t, ctx.ContentRepo.DeleteLanguage(context.Background(), lang.ID))
	list, err := ctx.ContentRepo.ListLanguages(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestContentSqliteRepository_Questions(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	maxOrder, err := ctx.ContentRepo.MaxQuestionOrder(context.Background())
	require.NoError(t, err)
	assert.Zero(t, maxOrder)

	q1 := &content.Question{QuestionText: "Favourite food?", Category: "fun", IsActive: true, DisplayOrder: 2}
	q2 := &content.Question{QuestionText: "Hometown?", Category: "about", IsActive: false, DisplayOrder: 1}
	require.NoError(t, ctx.ContentRepo.CreateQuestion(context.Background(), q1))
	require.NoError(t, ctx.ContentRepo.CreateQuestion(context.Background(), q2))

	maxOrder, err = ctx.ContentRepo.MaxQuestionOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, maxOrder)

	list, err := ctx.ContentRepo.ListQuestions(context.Background(), &content.QuestionQuery{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Hometown?", list[0].QuestionText)

	active := true
	list, err = ctx.ContentRepo.ListQuestions(context.Background(), &content.QuestionQuery{Active: &active})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, q1.ID, list[0].ID)

	inactive := false
	updated, err := ctx.ContentRepo.UpdateQuestion(context.Background(), q1.ID, &content.QuestionInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Favourite food?", updated.QuestionText)

	require.NoError(t, ctx.ContentRepo.DeleteQuestion(context.Background(), q2.ID))
	assert.ErrorIs(t, ctx.ContentRepo.DeleteQuestion(context.Background(), q2.ID), apperr.ErrNotFound)
}
