//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	alice := CreateTestUser(t, ctx.DB, "Alice", "9000000001")
	CreateTestUser(t, ctx.DB, "Bob", "9000000002")
	require.NoError(t, ctx.DB.Model(&models.UserModel{}).Where("id = ?", alice.ID).Update("is_verified", true).Error)

	query := users.NewUserQuery()
	list, total, err := ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	query.Search = "ALI"
	list, total, err = ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, alice.ID, list[0].ID)

	verified := false
	query = users.NewUserQuery()
	query.Verified = &verified
	list, total, err = ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Bob", list[0].FirstName)
}

func TestUserSqliteRepository_List_SearchMatchesWildcardsLiterally(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	ravi := CreateTestUser(t, ctx.DB, "Ravi_K", "9000000011")
	CreateTestUser(t, ctx.DB, "Ravixk", "9000000012")

	query := users.NewUserQuery()
	query.Search = "ravi_k"
	list, total, err := ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, ravi.ID, list[0].ID)

	query.Search = `ravi\k`
	_, total, err = ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestUserSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserSqliteRepository_GetDetail(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx.DB, "Carol", "9000000003")
	event := CreateTestEvent(t, ctx.DB, user.ID, "Jazz Night")

	hobby := models.HobbyModel{Name: "Chess"}
	require.NoError(t, ctx.DB.Create(&hobby).Error)
	require.NoError(t, ctx.DB.Create(&models.UserHobbyModel{UserID: user.ID, HobbyID: hobby.ID}).Error)
	require.NoError(t, ctx.DB.Create(&models.EventRSVPModel{EventID: event.ID, UserID: user.ID, Status: "Going", CreatedAt: time.Now().UTC()}).Error)
	require.NoError(t, ctx.DB.Create(&models.DeviceTokenModel{UserID: user.ID, Platform: "ios", IsActive: true}).Error)

	detail, err := ctx.UserRepo.GetDetail(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, detail.User.ID)
	assert.Equal(t, []string{"Chess"}, detail.Hobbies)
	assert.Empty(t, detail.Interests)
	require.Len(t, detail.RSVPs, 1)
	assert.Equal(t, "Jazz Night", detail.RSVPs[0].EventTitle)
	assert.Len(t, detail.DeviceTokens, 1)
}

func TestUserSqliteRepository_Update(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx.DB, "Dave", "9000000004")
	city := "Mumbai"
	verified := true

	err := ctx.UserRepo.Update(context.Background(), user.ID, &users.UserUpdate{LocationCity: &city, IsVerified: &verified})
	require.NoError(t, err)

	updated, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", updated.LocationCity)
	assert.True(t, updated.IsVerified)
	assert.Equal(t, "Dave", updated.FirstName)

	err = ctx.UserRepo.Update(context.Background(), "missing", &users.UserUpdate{LocationCity: &city})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserSqliteRepository_SetAdmin(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx.DB, "Erin", "9000000005")
	require.NoError(t, ctx.UserRepo.SetAdmin(context.Background(), user.ID, true))

	fetched, err := ctx.UserRepo.GetByPhone(context.Background(), "9000000005")
	require.NoError(t, err)
	assert.True(t, fetched.IsAdmin)
}

func TestUserSqliteRepository_ForceLogout(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx.DB, "Frank", "9000000006")
	for i := 0; i < 2; i++ {
		token := models.UserTokenModel{UserID: user.ID}
		require.NoError(t, ctx.DB.Create(&token).Error)
		require.NoError(t, ctx.DB.Create(&models.AccessTokenModel{UserTokenID: token.ID, Token: "a"}).Error)
		require.NoError(t, ctx.DB.Create(&models.RefreshTokenModel{UserTokenID: token.ID, Token: "r"}).Error)
	}
	require.NoError(t, ctx.DB.Create(&models.DeviceTokenModel{UserID: user.ID, IsActive: true, IsSessionActive: true}).Error)

	removed, err := ctx.UserRepo.ForceLogout(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	var count int64
	require.NoError(t, ctx.DB.Model(&models.AccessTokenModel{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, ctx.DB.Model(&models.RefreshTokenModel{}).Count(&count).Error)
	assert.Zero(t, count)

	var device models.DeviceTokenModel
	require.NoError(t, ctx.DB.Where("user_id = ?", user.ID).First(&device).Error)
	assert.False(t, device.IsActive)
	assert.False(t, device.IsSessionActive)

	_, err = ctx.UserRepo.ForceLogout(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserSqliteRepository_DeleteCascade(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx.DB, "Grace", "9000000007")
	other := CreateTestUser(t, ctx.DB, "Heidi", "9000000008")
	event := CreateTestEvent(t, ctx.DB, other.ID, "Open Mic")

	token := models.UserTokenModel{UserID: user.ID}
	require.NoError(t, ctx.DB.Create(&token).Error)
	require.NoError(t, ctx.DB.Create(&models.AccessTokenModel{UserTokenID: token.ID}).Error)
	require.NoError(t, ctx.DB.Create(&models.NotificationModel{UserID: user.ID, Title: "hi", SentAt: time.Now().UTC()}).Error)
	require.NoError(t, ctx.DB.Create(&models.EventRSVPModel{EventID: event.ID, UserID: user.ID}).Error)
	require.NoError(t, ctx.DB.Create(&models.EventRSVPModel{EventID: event.ID, UserID: other.ID}).Error)

	require.NoError(t, ctx.UserRepo.DeleteCascade(context.Background(), user.ID))

	_, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var count int64
	require.NoError(t, ctx.DB.Model(&models.EventRSVPModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	require.NoError(t, ctx.DB.Model(&models.NotificationModel{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, ctx.DB.Model(&models.AccessTokenModel{}).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, ctx.UserRepo.DeleteCascade(context.Background(), user.ID), apperr.ErrNotFound)
}
