package models

import (
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
)

// UserReportModel is a report filed by one user against another
type UserReportModel struct {
	ID               int64      `gorm:"primaryKey;autoIncrement"`
	ReporterUserID   string     `gorm:"type:varchar(36);not null;index"`
	ReportedUserID   string     `gorm:"type:varchar(36);not null;index"`
	ReportType       string     `gorm:"type:varchar(50)"`
	Description      string     `gorm:"type:text"`
	Status           string     `gorm:"type:varchar(20);not null;index"`
	AdminNotes       string     `gorm:"type:text"`
	ReportedAt       time.Time  `gorm:"not null;index"`
	ReviewedAt       *time.Time
	ReviewedByUserID *string    `gorm:"type:varchar(36)"`
	Reporter         *UserModel `gorm:"foreignKey:ReporterUserID"`
	Reported         *UserModel `gorm:"foreignKey:ReportedUserID"`
}

// TableName specifies the table name for GORM
func (UserReportModel) TableName() string {
	return "user_reports"
}

// ToDomain converts GORM model to domain entity
func (m *UserReportModel) ToDomain() *moderation.Report {
	r := &moderation.Report{
		ID:               m.ID,
		ReporterUserID:   m.ReporterUserID,
		ReportedUserID:   m.ReportedUserID,
		ReportType:       m.ReportType,
		Description:      m.Description,
		Status:           m.Status,
		AdminNotes:       m.AdminNotes,
		ReportedAt:       m.ReportedAt,
		ReviewedAt:       m.ReviewedAt,
		ReviewedByUserID: m.ReviewedByUserID,
	}
	if m.Reporter != nil {
		r.Reporter = m.Reporter.ToSummary()
	}
	if m.Reported != nil {
		r.Reported = m.Reported.ToSummary()
	}
	return r
}

// ContactMessageModel is an inbound support message
type ContactMessageModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	FullName         string `gorm:"type:varchar(200)"`
	Email            string `gorm:"type:varchar(255)"`
	PhoneNo          string `gorm:"type:varchar(20)"`
	InquiryType      string `gorm:"type:varchar(50)"`
	Subject          string `gorm:"type:varchar(255)"`
	Message          string `gorm:"type:text"`
	Status           string `gorm:"type:varchar(20);not null;index"`
	AdminNotes       string `gorm:"type:text"`
	ResolvedAt       *time.Time
	ResolvedByUserID *string   `gorm:"column:resolved_by;type:varchar(36)"`
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

// ToDomain converts GORM model to domain entity
func (m *ContactMessageModel) ToDomain() *moderation.ContactMessage {
	return &moderation.ContactMessage{
		ID:               m.ID,
		FullName:         m.FullName,
		Email:            m.Email,
		PhoneNo:          m.PhoneNo,
		InquiryType:      m.InquiryType,
		Subject:          m.Subject,
		Message:          m.Message,
		Status:           m.Status,
		AdminNotes:       m.AdminNotes,
		ResolvedAt:       m.ResolvedAt,
		ResolvedByUserID: m.ResolvedByUserID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// DemoRequestModel is a request for a product demo
type DemoRequestModel struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	FullName            string `gorm:"type:varchar(200)"`
	Email               string `gorm:"type:varchar(255)"`
	PhoneNo             string `gorm:"type:varchar(20)"`
	CompanyOrganization string `gorm:"type:varchar(200)"`
	EventType           string `gorm:"type:varchar(50)"`
	Message             string `gorm:"type:text"`
	Status              string `gorm:"type:varchar(20);not null;index"`
	AdminNotes          string `gorm:"type:text"`
	ScheduledDemoAt     *time.Time
	AssignedToUserID    *string   `gorm:"type:varchar(36)"`
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (DemoRequestModel) TableName() string {
	return "demo_requests"
}

// ToDomain converts GORM model to domain entity
func (m *DemoRequestModel) ToDomain() *moderation.DemoRequest {
	return &moderation.DemoRequest{
		ID:                  m.ID,
		FullName:            m.FullName,
		Email:               m.Email,
		PhoneNo:             m.PhoneNo,
		CompanyOrganization: m.CompanyOrganization,
		EventType:           m.EventType,
		Message:             m.Message,
		Status:              m.Status,
		AdminNotes:          m.AdminNotes,
		ScheduledDemoAt:     m.ScheduledDemoAt,
		AssignedToUserID:    m.AssignedToUserID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
