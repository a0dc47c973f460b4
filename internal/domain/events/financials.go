package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TicketTypeRevenue is captured revenue for one ticket type.
type TicketTypeRevenue struct {
	TicketID    int64           `json:"ticketId"`
	Name        string          `json:"name"`
	TicketsSold int64           `json:"ticketsSold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// PayoutSummary is the most recent payout of an event.
type PayoutSummary struct {
	ID          int64           `json:"id"`
	Status      string          `json:"status"`
	NetAmount   decimal.Decimal `json:"netAmount"`
	RequestedAt time.Time       `json:"requestedAt"`
}

// Financials aggregates the captured purchases of an event.
type Financials struct {
	EventID              string              `json:"eventId"`
	Revenue              decimal.Decimal     `json:"revenue"`
	RevenueIncludingFees decimal.Decimal     `json:"revenueIncludingFees"`
	PlatformFees         decimal.Decimal     `json:"platformFees"`
	GstAmount            decimal.Decimal     `json:"gstAmount"`
	PromoDiscounts       decimal.Decimal     `json:"promoDiscounts"`
	NetRevenue           decimal.Decimal     `json:"netRevenue"`
	CapturedPurchases    int64               `json:"capturedPurchases"`
	TicketsSold          int64               `json:"ticketsSold"`
	FreeTickets          int64               `json:"freeTickets"`
	PaidTickets          int64               `json:"paidTickets"`
	UniqueBuyers         int64               `json:"uniqueBuyers"`
	QRCodesTotal         int64               `json:"qrCodesTotal"`
	QRCodesScanned       int64               `json:"qrCodesScanned"`
	ByTicketType         []TicketTypeRevenue `json:"byTicketType"`
	LatestPayout         *PayoutSummary      `json:"latestPayout"`
}
