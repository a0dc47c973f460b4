package moderation

import (
	"context"
	"time"
)

// ModerationService defines the admin operations on reports, contact messages and demo requests.
type ModerationService interface {
	ListReports(ctx context.Context, query *Query) ([]*Report, int64, error)
	// ReviewReport records the decision and stamps the reviewing admin.
	ReviewReport(ctx context.Context, reportID int64, reviewerID string, review *ReportReview) (*Report, error)

	ListContactMessages(ctx context.Context, query *Query) ([]*ContactMessage, int64, error)
	// UpdateContactMessage stamps the resolving admin when the status becomes Resolved.
	UpdateContactMessage(ctx context.Context, messageID int64, adminID string, update *ContactUpdate) (*ContactMessage, error)

	ListDemoRequests(ctx context.Context, query *Query) ([]*DemoRequest, int64, error)
	// UpdateDemoRequest assigns the admin and mails the requester when a demo is scheduled.
	UpdateDemoRequest(ctx context.Context, demoID int64, adminID string, update *DemoUpdate) (*DemoRequest, error)
}

// DemoMailer notifies requesters about scheduled demos.
type DemoMailer interface {
	SendDemoScheduled(ctx context.Context, demo *DemoRequest) error
}

// ModerationRepository defines the interface for moderation persistence
type ModerationRepository interface {
	ListReports(ctx context.Context, query *Query) ([]*Report, int64, error)
	GetReport(ctx context.Context, reportID int64) (*Report, error)
	ReviewReport(ctx context.Context, reportID int64, reviewerID string, review *ReportReview, at time.Time) error

	ListContactMessages(ctx context.Context, query *Query) ([]*ContactMessage, int64, error)
	GetContactMessage(ctx context.Context, messageID int64) (*ContactMessage, error)
	UpdateContactMessage(ctx context.Context, messageID int64, adminID string, update *ContactUpdate, at time.Time) error

	ListDemoRequests(ctx context.Context, query *Query) ([]*DemoRequest, int64, error)
	GetDemoRequest(ctx context.Context, demoID int64) (*DemoRequest, error)
	UpdateDemoRequest(ctx context.Context, demoID int64, adminID string, update *DemoUpdate, at time.Time) error
}
