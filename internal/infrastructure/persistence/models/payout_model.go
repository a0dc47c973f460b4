package models

import (
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/shopspring/decimal"
)

// EventPayoutModel is the GORM database model for host payouts
type EventPayoutModel struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	EventID          string          `gorm:"type:varchar(36);not null;index"`
	HostUserID       string          `gorm:"type:varchar(36);not null;index"`
	GrossRevenue     decimal.Decimal `gorm:"type:decimal(12,2)"`
	PlatformFees     decimal.Decimal `gorm:"type:decimal(12,2)"`
	GstAmount        decimal.Decimal `gorm:"type:decimal(12,2)"`
	NetAmount        decimal.Decimal `gorm:"type:decimal(12,2)"`
	PayoutStatus     string          `gorm:"type:varchar(20);not null;index"`
	RazorpayPayoutID string          `gorm:"column:razorpay_payout_id;type:varchar(100)"`
	RequestedAt      time.Time       `gorm:"not null;index"`
	ProcessedAt      *time.Time
	Event            *EventModel     `gorm:"foreignKey:EventID"`
	Host             *UserModel      `gorm:"foreignKey:HostUserID"`
}

// TableName specifies the table name for GORM
func (EventPayoutModel) TableName() string {
	return "event_payouts"
}

// ToDomain converts GORM model to domain entity
func (m *EventPayoutModel) ToDomain() *payouts.Payout {
	p := &payouts.Payout{
		ID:           m.ID,
		EventID:      m.EventID,
		HostUserID:   m.HostUserID,
		GrossRevenue: m.GrossRevenue,
		PlatformFees: m.PlatformFees,
		GstAmount:    m.GstAmount,
		NetAmount:    m.NetAmount,
		PayoutStatus: m.PayoutStatus,
		Reference:    m.RazorpayPayoutID,
		RequestedAt:  m.RequestedAt,
		ProcessedAt:  m.ProcessedAt,
	}
	if m.Event != nil {
		p.EventTitle = m.Event.Title
	}
	if m.Host != nil {
		p.Host = m.Host.ToSummary()
	}
	return p
}

// FromDomain converts domain entity to GORM model
func (m *EventPayoutModel) FromDomain(p *payouts.Payout) {
	m.ID = p.ID
	m.EventID = p.EventID
	m.HostUserID = p.HostUserID
	m.GrossRevenue = p.GrossRevenue
	m.PlatformFees = p.PlatformFees
	m.GstAmount = p.GstAmount
	m.NetAmount = p.NetAmount
	m.PayoutStatus = p.PayoutStatus
	m.RazorpayPayoutID = p.Reference
	m.RequestedAt = p.RequestedAt
	m.ProcessedAt = p.ProcessedAt
}
