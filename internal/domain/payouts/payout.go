package payouts

import (
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/gauravkdm/admin-portal/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Payout statuses.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"
	StatusFailed     = "Failed"
	StatusCancelled  = "Cancelled"
)

var transitions = map[string][]string{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusFailed},
	StatusFailed:     {StatusPending},
}

// Payout is the net amount owed to an event host after fees and GST.
type Payout struct {
	ID           int64           `json:"id"`
	EventID      string          `json:"eventId" validate:"required"`
	EventTitle   string          `json:"eventTitle"`
	HostUserID   string          `json:"hostUserId" validate:"required"`
	Host         *users.Summary  `json:"host"`
	GrossRevenue decimal.Decimal `json:"grossRevenue"`
	PlatformFees decimal.Decimal `json:"platformFees"`
	GstAmount    decimal.Decimal `json:"gstAmount"`
	NetAmount    decimal.Decimal `json:"netAmount"`
	PayoutStatus string          `json:"payoutStatus" validate:"required,oneof=Pending Processing Completed Failed Cancelled"`
	Reference    string          `json:"reference"`
	RequestedAt  time.Time       `json:"requestedAt"`
	ProcessedAt  *time.Time      `json:"processedAt"`
}

// Validate for validating Payout struct
func (p *Payout) Validate() error {
	if err := validators.ValidateStruct(p); err != nil {
		return err
	}
	if p.NetAmount.IsNegative() {
		return fmt.Errorf("validation failed: negative net amount")
	}
	return nil
}

// IsOpen reports whether the payout still blocks a new payout for the same event.
func (p *Payout) IsOpen() bool {
	return p.PayoutStatus == StatusPending || p.PayoutStatus == StatusProcessing
}

// CanTransition reports whether a payout may move from one status to another.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminalProcessing reports whether reaching status stamps ProcessedAt.
func IsTerminalProcessing(status string) bool {
	return status == StatusCompleted || status == StatusFailed
}

// IsValidStatus reports whether s is a known payout status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Stats aggregates every payout.
type Stats struct {
	TotalPayouts    int64           `json:"totalPayouts"`
	GrossRevenue    decimal.Decimal `json:"grossRevenue"`
	PlatformFees    decimal.Decimal `json:"platformFees"`
	GstCollected    decimal.Decimal `json:"gstCollected"`
	NetPayouts      decimal.Decimal `json:"netPayouts"`
	CompletedAmount decimal.Decimal `json:"completedAmount"`
	PendingAmount   decimal.Decimal `json:"pendingAmount"`
	FailedCount     int64           `json:"failedCount"`
}

// PayoutQuery filters the payout list.
type PayoutQuery struct {
	Status string `validate:"omitempty,oneof=Pending Processing Completed Failed Cancelled"`
	Page   pagination.Params
}

// NewPayoutQuery creates a PayoutQuery with the default page.
func NewPayoutQuery() *PayoutQuery {
	return &PayoutQuery{Page: pagination.Default(pagination.DefaultLimit)}
}

// Validate for validating PayoutQuery struct
func (q *PayoutQuery) Validate() error {
	if err := validators.ValidateStruct(q); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	return nil
}

// CapturedTotals are the sums over the captured purchases of one event.
type CapturedTotals struct {
	Gross decimal.Decimal
	Fees  decimal.Decimal
	Gst   decimal.Decimal
}

// StatusChange is a requested payout transition.
type StatusChange struct {
	Status    string `json:"status" validate:"required,oneof=Pending Processing Completed Failed Cancelled"`
	Reference string `json:"reference" validate:"max=100"`
}

// Validate for validating StatusChange struct
func (c *StatusChange) Validate() error {
	if err := validators.ValidateStruct(c); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	return nil
}
