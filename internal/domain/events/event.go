package events

import (
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/gauravkdm/admin-portal/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Event statuses.
const (
	StatusDraft     = "Draft"
	StatusActive    = "Active"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

// Event entity
type Event struct {
	ID             string    `json:"id" validate:"required"`
	HostUserID     string    `json:"hostUserId"`
	Title          string    `json:"title" validate:"required,max=255"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	City           string    `json:"city"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	EventType      string    `json:"eventType"`
	Status         string    `json:"status" validate:"omitempty,oneof=Draft Active Cancelled Completed"`
	IsPublished    bool      `json:"isPublished"`
	Capacity       *int      `json:"capacity" validate:"omitempty,min=0"`
	AgeRestriction *int      `json:"ageRestriction" validate:"omitempty,min=0"`
	Visibility     string    `json:"visibility"`
	ShowGuestList  bool      `json:"showGuestList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Validate for validating Event struct
func (e *Event) Validate() error {
	if err := validators.ValidateStruct(e); err != nil {
		return err
	}
	if !e.StartTime.IsZero() && !e.EndTime.IsZero() && e.EndTime.Before(e.StartTime) {
		return fmt.Errorf("validation failed: end time before start time")
	}
	return nil
}

// IsActive reports whether the event is published and has not ended at now.
func (e *Event) IsActive(now time.Time) bool {
	return e.IsPublished && !e.EndTime.Before(now)
}

// Counts are relation counts shown with an event.
type Counts struct {
	RSVPs       int64 `json:"rsvps"`
	TicketTypes int64 `json:"ticketTypes"`
	Purchases   int64 `json:"purchases"`
	Comments    int64 `json:"comments"`
	Matches     int64 `json:"matches"`
}

// ListItem is one row of the event list.
type ListItem struct {
	*Event
	Counts Counts `json:"counts"`
}

// Media is an image or video attached to an event.
type Media struct {
	ID       int64  `json:"id"`
	MediaURL string `json:"mediaUrl"`
	Type     string `json:"type"`
}

// Category is an event category reference.
type Category struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Unicode string `json:"unicode"`
}

// TicketType is a purchasable ticket tier of an event.
type TicketType struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	TotalTickets     int             `json:"totalTickets"`
	AvailableTickets int             `json:"availableTickets"`
	IsFree           bool            `json:"isFree"`
	IsExpired        bool            `json:"isExpired"`
	SaleStartTime    *time.Time      `json:"saleStartTime"`
	SaleEndTime      *time.Time      `json:"saleEndTime"`
}

// Section is a content block on the event page.
type Section struct {
	ID           int64  `json:"id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"displayOrder"`
}

// Detail is the event detail screen.
type Detail struct {
	*Event
	Host        *users.Summary `json:"host"`
	Media       []Media        `json:"media"`
	Categories  []Category     `json:"categories"`
	TicketTypes []TicketType   `json:"ticketTypes"`
	Sections    []Section      `json:"sections"`
	Counts      Counts         `json:"counts"`
}

// Guest is an RSVP on the guest list.
type Guest struct {
	RSVPID    int64         `json:"rsvpId"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	User      users.Summary `json:"user"`
}

// EventQuery filters the event list.
type EventQuery struct {
	Search    string `validate:"max=100"`
	Status    string `validate:"omitempty,oneof=Draft Active Cancelled Completed"`
	Published *bool
	Page      pagination.Params
}

// NewEventQuery creates an EventQuery with the default page.
func NewEventQuery() *EventQuery {
	return &EventQuery{Page: pagination.Default(pagination.DefaultLimit)}
}

// Validate for validating EventQuery struct
func (q *EventQuery) Validate() error {
	if err := validators.ValidateStruct(q); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	return nil
}

// EventUpdate is a partial update; nil fields are left untouched.
type EventUpdate struct {
	Title          *string    `json:"Title" validate:"omitempty,min=1,max=255"`
	Location       *string    `json:"Location"`
	Description    *string    `json:"Description"`
	StartTime      *time.Time `json:"StartTime"`
	EndTime        *time.Time `json:"EndTime"`
	EventType      *string    `json:"EventType"`
	Status         *string    `json:"Status" validate:"omitempty,oneof=Draft Active Cancelled Completed"`
	IsPublished    *bool      `json:"IsPublished"`
	City           *string    `json:"City"`
	Capacity       *int       `json:"Capacity" validate:"omitempty,min=0"`
	AgeRestriction *int       `json:"AgeRestriction" validate:"omitempty,min=0"`
	Visibility     *string    `json:"Visibility"`
	ShowGuestList  *bool      `json:"ShowGuestList"`
}

// Validate for validating EventUpdate struct
func (u *EventUpdate) Validate() error {
	if err := validators.ValidateStruct(u); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	if u.StartTime != nil && u.EndTime != nil && u.EndTime.Before(*u.StartTime) {
		return fmt.Errorf("%w: end time before start time", apperr.ErrInvalidInput)
	}
	return nil
}

// IsValidStatus reports whether s is a known event status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusActive, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}
