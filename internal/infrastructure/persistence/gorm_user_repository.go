package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"

	"gorm.io/gorm"
)

const (
	detailSessionTokenLimit = 5
	detailRSVPLimit         = 10
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func userFilter(query *users.UserQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if query.Search != "" {
			p := likePattern(query.Search)
			db = db.Where(likeAny("LOWER(first_name)", "LOWER(last_name)", "LOWER(email)", "phone_no"), p, p, p, p)
		}
		if query.Verified != nil {
			db = db.Where("is_verified = ?", *query.Verified)
		}
		return db
	}
}

func (r *gormUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Scopes(userFilter(query)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var modelList []*models.UserModel
	if err := r.db.WithContext(ctx).
		Scopes(userFilter(query), paginate(query.Page)).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error; err != nil {
		return nil, translateNotFound(err, "user", userID)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByPhone(ctx context.Context, phoneNo string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("phone_no = ?", phoneNo).First(&model).Error; err != nil {
		return nil, translateNotFound(err, "user with phone", phoneNo)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetDetail(ctx context.Context, userID string) (*users.Detail, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	db := r.db.WithContext(ctx)
	detail := &users.Detail{User: user}

	var devices []models.DeviceTokenModel
	if err := db.Where("user_id = ?", userID).Order("last_used_at DESC").Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch device tokens: %w", err)
	}
	detail.DeviceTokens = make([]users.DeviceToken, len(devices))
	for i := range devices {
		detail.DeviceTokens[i] = devices[i].ToDomain()
	}

	var sessions []models.UserTokenModel
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Limit(detailSessionTokenLimit).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch user tokens: %w", err)
	}
	detail.SessionTokens = make([]users.SessionToken, len(sessions))
	for i, s := range sessions {
		detail.SessionTokens[i] = users.SessionToken{ID: s.ID, CreatedAt: s.CreatedAt, ExpiresAt: s.ExpiresAt}
	}

	var rsvps []models.EventRSVPModel
	if err := db.Preload("Event").Where("user_id = ?", userID).Order("created_at DESC").Limit(detailRSVPLimit).Find(&rsvps).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch rsvps: %w", err)
	}
	detail.RSVPs = make([]users.RSVP, len(rsvps))
	for i, rsvp := range rsvps {
		detail.RSVPs[i] = users.RSVP{ID: rsvp.ID, EventID: rsvp.EventID, Status: rsvp.Status, CreatedAt: rsvp.CreatedAt}
		if rsvp.Event != nil {
			detail.RSVPs[i].EventTitle = rsvp.Event.Title
			detail.RSVPs[i].EventStart = rsvp.Event.StartTime
		}
	}

	if detail.Hobbies, err = r.tagNames(ctx, "user_hobbies", "hobbies", "hobby_id", userID); err != nil {
		return nil, err
	}
	if detail.Interests, err = r.tagNames(ctx, "user_interests", "interests", "interest_id", userID); err != nil {
		return nil, err
	}
	if detail.Languages, err = r.tagNames(ctx, "user_languages", "languages", "language_id", userID); err != nil {
		return nil, err
	}

	return detail, nil
}

// tagNames resolves the names linked to a user through a join table.
func (r *gormUserRepository) tagNames(ctx context.Context, joinTable, table, fk, userID string) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).
		Table(joinTable).
		Joins(fmt.Sprintf("JOIN %s ON %s.id = %s.%s", table, table, joinTable, fk)).
		Where(joinTable+".user_id = ?", userID).
		Order(table + ".name").
		Pluck(table+".name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", table, err)
	}
	return names, nil
}

func (r *gormUserRepository) Update(ctx context.Context, userID string, update *users.UserUpdate) error {
	if err := update.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	values := map[string]interface{}{"updated_at": time.Now().UTC()}
	setIf := func(column string, v interface{}, ok bool) {
		if ok {
			values[column] = v
		}
	}
	if update.FirstName != nil {
		setIf("first_name", *update.FirstName, true)
	}
	if update.LastName != nil {
		setIf("last_name", *update.LastName, true)
	}
	if update.Email != nil {
		setIf("email", *update.Email, true)
	}
	if update.PhoneNo != nil {
		setIf("phone_no", *update.PhoneNo, true)
	}
	if update.Gender != nil {
		setIf("gender", *update.Gender, true)
	}
	if update.Bio != nil {
		setIf("bio", *update.Bio, true)
	}
	if update.Occupation != nil {
		setIf("occupation", *update.Occupation, true)
	}
	if update.Education != nil {
		setIf("education", *update.Education, true)
	}
	if update.IsVerified != nil {
		setIf("is_verified", *update.IsVerified, true)
	}
	if update.LocationCity != nil {
		setIf("location_city", *update.LocationCity, true)
	}
	if update.LocationCountry != nil {
		setIf("location_country", *update.LocationCountry, true)
	}

	result := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", userID).Updates(values)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("user", userID)
	}

	r.logger.Info("Updated user with id ", userID)
	return nil
}

func (r *gormUserRepository) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"is_admin": isAdmin, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to update admin flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("user", userID)
	}

	r.logger.Info("Set admin flag of user with id ", userID, " to ", isAdmin)
	return nil
}

func (r *gormUserRepository) ForceLogout(ctx context.Context, userID string) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.UserModel{}, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch user: %w", err)
		}
		if !found {
			return notFound("user", userID)
		}

		var tokenIDs []int64
		if err := tx.Model(&models.UserTokenModel{}).Where("user_id = ?", userID).Pluck("id", &tokenIDs).Error; err != nil {
			return fmt.Errorf("failed to fetch user tokens: %w", err)
		}
		if len(tokenIDs) > 0 {
			if err := tx.Where("user_token_id IN ?", tokenIDs).Delete(&models.AccessTokenModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete access tokens: %w", err)
			}
			if err := tx.Where("user_token_id IN ?", tokenIDs).Delete(&models.RefreshTokenModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete refresh tokens: %w", err)
			}
		}

		result := tx.Where("user_id = ?", userID).Delete(&models.UserTokenModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete user tokens: %w", result.Error)
		}
		removed = result.RowsAffected

		if err := tx.Model(&models.DeviceTokenModel{}).Where("user_id = ?", userID).
			Updates(map[string]interface{}{"is_active": false, "is_session_active": false}).Error; err != nil {
			return fmt.Errorf("failed to deactivate device tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.logger.Info("Force logged out user with id ", userID, ", tokens removed: ", removed)
	return removed, nil
}

func (r *gormUserRepository) DeleteCascade(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.UserModel{}, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch user: %w", err)
		}
		if !found {
			return notFound("user", userID)
		}

		tokenIDs := tx.Model(&models.UserTokenModel{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("user_token_id IN (?)", tokenIDs).Delete(&models.AccessTokenModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete access tokens: %w", err)
		}
		if err := tx.Where("user_token_id IN (?)", tokenIDs).Delete(&models.RefreshTokenModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete refresh tokens: %w", err)
		}

		dependents := []struct {
			name  string
			model interface{}
		}{
			{"user tokens", &models.UserTokenModel{}},
			{"device tokens", &models.DeviceTokenModel{}},
			{"notifications", &models.NotificationModel{}},
			{"hobbies", &models.UserHobbyModel{}},
			{"interests", &models.UserInterestModel{}},
			{"languages", &models.UserLanguageModel{}},
			{"answers", &models.UserAnswerModel{}},
			{"favourite events", &models.FavouriteEventModel{}},
			{"rsvps", &models.EventRSVPModel{}},
		}
		for _, d := range dependents {
			if err := tx.Where("user_id = ?", userID).Delete(d.model).Error; err != nil {
				return fmt.Errorf("failed to delete %s: %w", d.name, err)
			}
		}

		if err := tx.Where("id = ?", userID).Delete(&models.UserModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted user with id ", userID)
	return nil
}
