package models

import (
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/events"
)

// EventModel is the GORM database model for events
type EventModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	HostUserID     string    `gorm:"type:varchar(36);index"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	Location       string    `gorm:"type:varchar(255)"`
	City           string    `gorm:"type:varchar(100);index"`
	StartTime      time.Time `gorm:"index"`
	EndTime        time.Time `gorm:"index"`
	EventType      string    `gorm:"type:varchar(50)"`
	Status         string    `gorm:"type:varchar(20);index"`
	IsPublished    bool      `gorm:"not null"`
	Capacity       *int
	AgeRestriction *int
	Visibility     string    `gorm:"type:varchar(20)"`
	ShowGuestList  bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (EventModel) TableName() string {
	return "events"
}

// ToDomain converts GORM model to domain entity
func (m *EventModel) ToDomain() *events.Event {
	return &events.Event{
		ID:             m.ID,
		HostUserID:     m.HostUserID,
		Title:          m.Title,
		Description:    m.Description,
		Location:       m.Location,
		City:           m.City,
		StartTime:      m.StartTime,
		EndTime:        m.EndTime,
		EventType:      m.EventType,
		Status:         m.Status,
		IsPublished:    m.IsPublished,
		Capacity:       m.Capacity,
		AgeRestriction: m.AgeRestriction,
		Visibility:     m.Visibility,
		ShowGuestList:  m.ShowGuestList,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EventModel) FromDomain(e *events.Event) {
	m.ID = e.ID
	m.HostUserID = e.HostUserID
	m.Title = e.Title
	m.Description = e.Description
	m.Location = e.Location
	m.City = e.City
	m.StartTime = e.StartTime
	m.EndTime = e.EndTime
	m.EventType = e.EventType
	m.Status = e.Status
	m.IsPublished = e.IsPublished
	m.Capacity = e.Capacity
	m.AgeRestriction = e.AgeRestriction
	m.Visibility = e.Visibility
	m.ShowGuestList = e.ShowGuestList
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// EventRSVPModel is a user's RSVP to an event
type EventRSVPModel struct {
	ID        int64       `gorm:"primaryKey;autoIncrement"`
	EventID   string      `gorm:"type:varchar(36);not null;index"`
	UserID    string      `gorm:"type:varchar(36);not null;index"`
	Status    string      `gorm:"type:varchar(20)"`
	CreatedAt time.Time   `gorm:"index"`
	Event     *EventModel `gorm:"foreignKey:EventID"`
	User      *UserModel  `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (EventRSVPModel) TableName() string {
	return "event_rsvps"
}

// EventMediaModel is an image or video of an event
type EventMediaModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	EventID  string `gorm:"type:varchar(36);not null;index"`
	MediaURL string `gorm:"column:media_url;type:varchar(500)"`
	Type     string `gorm:"type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (EventMediaModel) TableName() string {
	return "events_media"
}

// EventSectionModel is a content block of an event page
type EventSectionModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	EventID      string `gorm:"type:varchar(36);not null;index"`
	Type         string `gorm:"type:varchar(20)"`
	Title        string `gorm:"type:varchar(255)"`
	Content      string `gorm:"type:text"`
	URL          string `gorm:"column:url;type:varchar(500)"`
	DisplayOrder int    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EventSectionModel) TableName() string {
	return "event_sections"
}

// EventCategoryMappingModel links an event to a category
type EventCategoryMappingModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	EventID    string `gorm:"type:varchar(36);not null;index"`
	CategoryID int64  `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (EventCategoryMappingModel) TableName() string {
	return "event_category_mappings"
}

// EventCommentModel is a comment on an event
type EventCommentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	EventID   string `gorm:"type:varchar(36);not null;index"`
	UserID    string `gorm:"type:varchar(36);not null;index"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (EventCommentModel) TableName() string {
	return "event_comments"
}

// EventSwipeModel is a swipe between attendees of an event
type EventSwipeModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	EventID      string `gorm:"type:varchar(36);not null;index"`
	SwiperUserID string `gorm:"type:varchar(36);not null;index"`
	SwipedUserID string `gorm:"type:varchar(36);not null;index"`
	Direction    string `gorm:"type:varchar(10)"`
	CreatedAt    time.Time
}

// TableName specifies the table name for GORM
func (EventSwipeModel) TableName() string {
	return "event_swipes"
}

// EventMatchModel is a mutual match between attendees of an event
type EventMatchModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	EventID   string `gorm:"type:varchar(36);not null;index"`
	UserAID   string `gorm:"column:user_a_id;type:varchar(36);not null;index"`
	UserBID   string `gorm:"column:user_b_id;type:varchar(36);not null;index"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (EventMatchModel) TableName() string {
	return "event_matches"
}
