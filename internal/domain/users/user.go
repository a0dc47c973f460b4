package users

import (
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/gauravkdm/admin-portal/internal/pkg/validators"
)

// User entity
type User struct {
	ID              string    `json:"id" validate:"required"`
	FirstName       string    `json:"firstName" validate:"max=100"`
	LastName        string    `json:"lastName" validate:"max=100"`
	Email           string    `json:"email" validate:"omitempty,email"`
	PhoneNo         string    `json:"phoneNo" validate:"omitempty,phone"`
	CountryCode     string    `json:"countryCode" validate:"omitempty,digits,max=4"`
	Gender          string    `json:"gender"`
	Bio             string    `json:"bio"`
	Occupation      string    `json:"occupation"`
	Education       string    `json:"education"`
	IsVerified      bool      `json:"isVerified"`
	IsAdmin         bool      `json:"isAdmin"`
	LocationCity    string    `json:"locationCity"`
	LocationCountry string    `json:"locationCountry"`
	ProfilePhotoURL string    `json:"profilePhotoUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.ValidateStruct(u)
}

// FullName joins first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Summary is the compact user shape embedded in other resources.
type Summary struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
}

// DeviceToken is a push/session device registered by a user.
type DeviceToken struct {
	ID              int64      `json:"id"`
	Platform        string     `json:"platform"`
	DeviceName      string     `json:"deviceName"`
	IsActive        bool       `json:"isActive"`
	IsSessionActive bool       `json:"isSessionActive"`
	LastUsedAt      *time.Time `json:"lastUsedAt"`
}

// SessionToken is an issued app session of a user.
type SessionToken struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// RSVP is a user's response to an event.
type RSVP struct {
	ID         int64     `json:"id"`
	EventID    string    `json:"eventId"`
	EventTitle string    `json:"eventTitle"`
	EventStart time.Time `json:"eventStart"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Detail is the user profile screen: the user plus related activity.
type Detail struct {
	User          *User          `json:"user"`
	DeviceTokens  []DeviceToken  `json:"deviceTokens"`
	SessionTokens []SessionToken `json:"sessionTokens"`
	RSVPs         []RSVP         `json:"rsvps"`
	Hobbies       []string       `json:"hobbies"`
	Interests     []string       `json:"interests"`
	Languages     []string       `json:"languages"`
}

// UserQuery filters the user list.
type UserQuery struct {
	Search   string `validate:"max=100"`
	Verified *bool
	Page     pagination.Params
}

// NewUserQuery creates a UserQuery with the default page.
func NewUserQuery() *UserQuery {
	return &UserQuery{Page: pagination.Default(pagination.DefaultLimit)}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	if err := validators.ValidateStruct(q); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	return nil
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	FirstName       *string `json:"FirstName" validate:"omitempty,max=100"`
	LastName        *string `json:"LastName" validate:"omitempty,max=100"`
	Email           *string `json:"Email" validate:"omitempty,email"`
	PhoneNo         *string `json:"PhoneNo" validate:"omitempty,phone"`
	Gender          *string `json:"Gender"`
	Bio             *string `json:"Bio" validate:"omitempty,max=1000"`
	Occupation      *string `json:"Occupation"`
	Education       *string `json:"Education"`
	IsVerified      *bool   `json:"IsVerified"`
	LocationCity    *string `json:"LocationCity"`
	LocationCountry *string `json:"LocationCountry"`
}

// Validate for validating UserUpdate struct
func (u *UserUpdate) Validate() error {
	if err := validators.ValidateStruct(u); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	return nil
}

// IsEmpty reports whether no field is set.
func (u *UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.PhoneNo == nil &&
		u.Gender == nil && u.Bio == nil && u.Occupation == nil && u.Education == nil &&
		u.IsVerified == nil && u.LocationCity == nil && u.LocationCountry == nil
}
