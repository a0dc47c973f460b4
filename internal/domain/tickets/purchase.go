package tickets

import (
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/shopspring/decimal"
)

// Payment statuses recorded by the payment gateway.
const (
	PaymentCaptured = "captured"
	PaymentCreated  = "created"
)

// List filters exposed to admins.
const (
	FilterPaid    = "paid"
	FilterPending = "pending"
	FilterFree    = "free"
)

// Purchase is one purchased-ticket order.
type Purchase struct {
	ID                       int64           `json:"id"`
	TicketID                 int64           `json:"ticketId"`
	UserID                   string          `json:"userId"`
	EventID                  string          `json:"eventId"`
	EventTitle               string          `json:"eventTitle"`
	CurrencyCode             string          `json:"currencyCode"`
	CurrencySymbol           string          `json:"currencySymbol"`
	TotalTickets             int             `json:"totalTickets"`
	TotalAmount              decimal.Decimal `json:"totalAmount"`
	TotalAmountIncludingFees decimal.Decimal `json:"totalAmountIncludingFees"`
	FeesPercentage           decimal.Decimal `json:"feesPercentage"`
	FeesAmount               decimal.Decimal `json:"feesAmount"`
	GstPercentage            decimal.Decimal `json:"gstPercentage"`
	GstAmount                decimal.Decimal `json:"gstAmount"`
	PromoCodeID              *int64          `json:"promoCodeId"`
	PromoCodeDiscountAmount  decimal.Decimal `json:"promoCodeDiscountAmount"`
	OrderID                  string          `json:"orderId"`
	PaymentStatus            *string         `json:"paymentStatus"`
	CreatedAt                time.Time       `json:"createdAt"`
	UpdatedAt                time.Time       `json:"updatedAt"`
}

// IsFree reports whether the purchase went through without a payment.
func (p *Purchase) IsFree() bool {
	return p.PaymentStatus == nil
}

// Buyer is the purchasing user.
type Buyer struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	PhoneNo         string `json:"phoneNo"`
	ProfilePhotoURL string `json:"profilePhotoUrl"`
}

// TicketType is the tier a purchase was made against.
type TicketType struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	IsFree            bool            `json:"isFree"`
	TotalTickets      int             `json:"totalTickets"`
	AvailableTickets  int             `json:"availableTickets"`
	MaxTicketsPerUser int             `json:"maxTicketsPerUser"`
}

// QRCode is an admission code issued for a purchase.
type QRCode struct {
	ID          int64     `json:"id"`
	BarcodeData string    `json:"barcodeData"`
	Type        string    `json:"type"`
	IsScanned   bool      `json:"isScanned"`
	UserID      string    `json:"userId"`
	HolderName  string    `json:"holderName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Share is a ticket shared with another user.
type Share struct {
	ID         int64      `json:"id"`
	Status     string     `json:"status"`
	SharedBy   string     `json:"sharedBy"`
	RedeemedBy string     `json:"redeemedBy"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	RedeemedAt *time.Time `json:"redeemedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Breakdown is the financial split of a purchase.
type Breakdown struct {
	BaseAmount              decimal.Decimal `json:"baseAmount"`
	FeesPercentage          decimal.Decimal `json:"feesPercentage"`
	FeesAmount              decimal.Decimal `json:"feesAmount"`
	GstPercentage           decimal.Decimal `json:"gstPercentage"`
	GstAmount               decimal.Decimal `json:"gstAmount"`
	PromoCodeDiscountAmount decimal.Decimal `json:"promoCodeDiscountAmount"`
	TotalIncludingFees      decimal.Decimal `json:"totalIncludingFees"`
}

// BreakdownOf builds the breakdown shown on the purchase screen.
func BreakdownOf(p *Purchase) Breakdown {
	return Breakdown{
		BaseAmount:              p.TotalAmount,
		FeesPercentage:          p.FeesPercentage,
		FeesAmount:              p.FeesAmount,
		GstPercentage:           p.GstPercentage,
		GstAmount:               p.GstAmount,
		PromoCodeDiscountAmount: p.PromoCodeDiscountAmount,
		TotalIncludingFees:      p.TotalAmountIncludingFees,
	}
}

// Detail is the purchase detail screen.
type Detail struct {
	Purchase   *Purchase   `json:"purchase"`
	Buyer      *Buyer      `json:"buyer"`
	TicketType *TicketType `json:"ticketType"`
	QRCodes    []QRCode    `json:"qrCodes"`
	Shares     []Share     `json:"shares"`
	Breakdown  Breakdown   `json:"breakdown"`
}

// Stats aggregates every purchase regardless of filters.
type Stats struct {
	TotalPurchases       int64           `json:"totalPurchases"`
	TotalTicketsSold     int64           `json:"totalTicketsSold"`
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	TotalRevenueWithFees decimal.Decimal `json:"totalRevenueWithFees"`
}

// PurchaseQuery filters the purchase list.
type PurchaseQuery struct {
	Status  string
	EventID string
	Page    pagination.Params
}

// NewPurchaseQuery creates a PurchaseQuery with the default page.
func NewPurchaseQuery() *PurchaseQuery {
	return &PurchaseQuery{Page: pagination.Default(pagination.DefaultLimit)}
}

// Validate for validating PurchaseQuery struct
func (q *PurchaseQuery) Validate() error {
	switch q.Status {
	case "", FilterPaid, FilterPending, FilterFree:
		return nil
	default:
		return fmt.Errorf("%w: unknown ticket status %q", apperr.ErrInvalidInput, q.Status)
	}
}

// PaymentStatusFor maps a list filter to the stored payment status.
// Free purchases have no payment status, signalled by ok=true and a nil result.
func PaymentStatusFor(filter string) (status *string, ok bool) {
	switch filter {
	case FilterPaid:
		s := PaymentCaptured
		return &s, true
	case FilterPending:
		s := PaymentCreated
		return &s, true
	case FilterFree:
		return nil, true
	default:
		return nil, false
	}
}
