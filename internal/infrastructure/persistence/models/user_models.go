package models

import (
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/users"
)

// UserModel is the GORM database model for platform users
type UserModel struct {
	ID                  string    `gorm:"primaryKey;type:varchar(36)"`
	FirstName           string    `gorm:"type:varchar(100)"`
	LastName            string    `gorm:"type:varchar(100)"`
	Email               string    `gorm:"type:varchar(255);index"`
	PhoneNo             string    `gorm:"type:varchar(20);index"`
	CountryCode         string    `gorm:"type:varchar(4)"`
	Gender              string    `gorm:"type:varchar(20)"`
	Bio                 string    `gorm:"type:text"`
	Occupation          string    `gorm:"type:varchar(100)"`
	Education           string    `gorm:"type:varchar(100)"`
	IsVerified          bool      `gorm:"not null"`
	IsAdmin             bool      `gorm:"not null"`
	LocationCity        string    `gorm:"type:varchar(100)"`
	LocationCountry     string    `gorm:"type:varchar(100)"`
	ProfilePhotoCdnUrl1 string    `gorm:"column:profile_photo_cdn_url1;type:varchar(500)"`
	CreatedAt           time.Time `gorm:"not null;index"`
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Email:           m.Email,
		PhoneNo:         m.PhoneNo,
		CountryCode:     m.CountryCode,
		Gender:          m.Gender,
		Bio:             m.Bio,
		Occupation:      m.Occupation,
		Education:       m.Education,
		IsVerified:      m.IsVerified,
		IsAdmin:         m.IsAdmin,
		LocationCity:    m.LocationCity,
		LocationCountry: m.LocationCountry,
		ProfilePhotoURL: m.ProfilePhotoCdnUrl1,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Email = u.Email
	m.PhoneNo = u.PhoneNo
	m.CountryCode = u.CountryCode
	m.Gender = u.Gender
	m.Bio = u.Bio
	m.Occupation = u.Occupation
	m.Education = u.Education
	m.IsVerified = u.IsVerified
	m.IsAdmin = u.IsAdmin
	m.LocationCity = u.LocationCity
	m.LocationCountry = u.LocationCountry
	m.ProfilePhotoCdnUrl1 = u.ProfilePhotoURL
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}

// ToSummary converts the model to the compact user shape
func (m *UserModel) ToSummary() *users.Summary {
	return &users.Summary{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		ProfilePhotoURL: m.ProfilePhotoCdnUrl1,
	}
}

// DeviceTokenModel is a registered push/session device
type DeviceTokenModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	UserID          string `gorm:"type:varchar(36);not null;index"`
	Token           string `gorm:"type:varchar(500)"`
	Platform        string `gorm:"type:varchar(20);index"`
	DeviceName      string `gorm:"type:varchar(100)"`
	IsActive        bool   `gorm:"not null"`
	IsSessionActive bool   `gorm:"not null"`
	LastUsedAt      *time.Time
	CreatedAt       time.Time
}

// TableName specifies the table name for GORM
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}

// ToDomain converts GORM model to domain entity
func (m *DeviceTokenModel) ToDomain() users.DeviceToken {
	return users.DeviceToken{
		ID:              m.ID,
		Platform:        m.Platform,
		DeviceName:      m.DeviceName,
		IsActive:        m.IsActive,
		IsSessionActive: m.IsSessionActive,
		LastUsedAt:      m.LastUsedAt,
	}
}

// UserTokenModel is an app session of a user
type UserTokenModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    string `gorm:"type:varchar(36);not null;index"`
	CreatedAt time.Time
	ExpiresAt *time.Time
}

// TableName specifies the table name for GORM
func (UserTokenModel) TableName() string {
	return "user_tokens"
}

// AccessTokenModel is an access token issued for a user session
type AccessTokenModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserTokenID int64  `gorm:"not null;index"`
	Token       string `gorm:"type:varchar(500)"`
	ExpiresAt   *time.Time
}

// TableName specifies the table name for GORM
func (AccessTokenModel) TableName() string {
	return "access_tokens"
}

// RefreshTokenModel is a refresh token issued for a user session
type RefreshTokenModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserTokenID int64  `gorm:"not null;index"`
	Token       string `gorm:"type:varchar(500)"`
	ExpiresAt   *time.Time
}

// TableName specifies the table name for GORM
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// UserHobbyModel links a user to a hobby
type UserHobbyModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	UserID  string `gorm:"type:varchar(36);not null;index"`
	HobbyID int64  `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (UserHobbyModel) TableName() string {
	return "user_hobbies"
}

// UserInterestModel links a user to an interest
type UserInterestModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     string `gorm:"type:varchar(36);not null;index"`
	InterestID int64  `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (UserInterestModel) TableName() string {
	return "user_interests"
}

// UserLanguageModel links a user to a language
type UserLanguageModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     string `gorm:"type:varchar(36);not null;index"`
	LanguageID int64  `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (UserLanguageModel) TableName() string {
	return "user_languages"
}

// UserAnswerModel is a user's answer to a profile question
type UserAnswerModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     string `gorm:"type:varchar(36);not null;index"`
	QuestionID int64  `gorm:"not null;index"`
	Answer     string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (UserAnswerModel) TableName() string {
	return "user_answers"
}

// FavouriteEventModel is an event bookmarked by a user
type FavouriteEventModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    string `gorm:"type:varchar(36);not null;index"`
	EventID   string `gorm:"type:varchar(36);not null;index"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (FavouriteEventModel) TableName() string {
	return "favourite_events"
}

// NotificationModel is a push notification sent to a user
type NotificationModel struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	UserID       string     `gorm:"type:varchar(36);not null;index"`
	Title        string     `gorm:"type:varchar(255)"`
	Body         string     `gorm:"type:text"`
	Type         string     `gorm:"type:varchar(50)"`
	Status       string     `gorm:"type:varchar(20);index"`
	ErrorMessage string     `gorm:"type:text"`
	SentAt       time.Time  `gorm:"index"`
	User         *UserModel `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}
