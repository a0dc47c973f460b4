package moderation

import (
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/gauravkdm/admin-portal/internal/pkg/validators"
)

// Report statuses.
const (
	ReportPending   = "Pending"
	ReportReviewed  = "Reviewed"
	ReportResolved  = "Resolved"
	ReportDismissed = "Dismissed"
)

// Contact message statuses.
const (
	ContactPending    = "Pending"
	ContactInProgress = "InProgress"
	ContactResolved   = "Resolved"
	ContactClosed     = "Closed"
)

// Demo request statuses.
const (
	DemoPending   = "Pending"
	DemoScheduled = "Scheduled"
	DemoCompleted = "Completed"
	DemoCancelled = "Cancelled"
)

// Report is a user report filed against another user.
type Report struct {
	ID               int64          `json:"id"`
	ReporterUserID   string         `json:"reporterUserId"`
	ReportedUserID   string         `json:"reportedUserId"`
	Reporter         *users.Summary `json:"reporter"`
	Reported         *users.Summary `json:"reported"`
	ReportType       string         `json:"reportType"`
	Description      string         `json:"description"`
	Status           string         `json:"status"`
	AdminNotes       string         `json:"adminNotes"`
	ReportedAt       time.Time      `json:"reportedAt"`
	ReviewedAt       *time.Time     `json:"reviewedAt"`
	ReviewedByUserID *string        `json:"reviewedByUserId"`
}

// ContactMessage is an inbound support message.
type ContactMessage struct {
	ID               int64      `json:"id"`
	FullName         string     `json:"fullName"`
	Email            string     `json:"email"`
	PhoneNo          string     `json:"phoneNo"`
	InquiryType      string     `json:"inquiryType"`
	Subject          string     `json:"subject"`
	Message          string     `json:"message"`
	Status           string     `json:"status"`
	AdminNotes       string     `json:"adminNotes"`
	ResolvedAt       *time.Time `json:"resolvedAt"`
	ResolvedByUserID *string    `json:"resolvedByUserId"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// DemoRequest is a request for a product demo.
type DemoRequest struct {
	ID                  int64      `json:"id"`
	FullName            string     `json:"fullName"`
	Email               string     `json:"email"`
	PhoneNo             string     `json:"phoneNo"`
	CompanyOrganization string     `json:"companyOrganization"`
	EventType           string     `json:"eventType"`
	Message             string     `json:"message"`
	Status              string     `json:"status"`
	AdminNotes          string     `json:"adminNotes"`
	ScheduledDemoAt     *time.Time `json:"scheduledDemoAt"`
	AssignedToUserID    *string    `json:"assignedToUserId"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// Query filters a moderation list by status.
type Query struct {
	Status string
	Page   pagination.Params
}

// NewQuery creates a Query with the default page.
func NewQuery() *Query {
	return &Query{Page: pagination.Default(pagination.DefaultLimit)}
}

// ReportReview is an admin decision on a report.
type ReportReview struct {
	Status     string `json:"Status" validate:"required,oneof=Pending Reviewed Resolved Dismissed"`
	AdminNotes string `json:"AdminNotes" validate:"max=2000"`
}

// Validate for validating ReportReview struct
func (r *ReportReview) Validate() error {
	return validateInput(r)
}

// ContactUpdate is an admin update on a contact message.
type ContactUpdate struct {
	Status     string `json:"Status" validate:"required,oneof=Pending InProgress Resolved Closed"`
	AdminNotes string `json:"AdminNotes" validate:"max=2000"`
}

// Validate for validating ContactUpdate struct
func (c *ContactUpdate) Validate() error {
	return validateInput(c)
}

// DemoUpdate is an admin update on a demo request.
type DemoUpdate struct {
	Status          string     `json:"Status" validate:"required,oneof=Pending Scheduled Completed Cancelled"`
	AdminNotes      string     `json:"AdminNotes" validate:"max=2000"`
	ScheduledDemoAt *time.Time `json:"ScheduledDemoAt"`
}

// Validate for validating DemoUpdate struct
func (d *DemoUpdate) Validate() error {
	return validateInput(d)
}

// ValidateStatusFilter checks a list filter against the statuses of a resource.
func ValidateStatusFilter(status string, allowed ...string) error {
	if status == "" {
		return nil
	}
	for _, s := range allowed {
		if s == status {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown status %q", apperr.ErrInvalidInput, status)
}

func validateInput(s interface{}) error {
	if err := validators.ValidateStruct(s); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	return nil
}
