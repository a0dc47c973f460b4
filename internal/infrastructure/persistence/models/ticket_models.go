package models

import (
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/shopspring/decimal"
)

// CurrencyModel is a currency prices are charged in
type CurrencyModel struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Code   string `gorm:"type:varchar(3);uniqueIndex"`
	Symbol string `gorm:"type:varchar(5)"`
}

// TableName specifies the table name for GORM
func (CurrencyModel) TableName() string {
	return "currencies"
}

// TicketModel is a ticket type of an event
type TicketModel struct {
	ID                int64           `gorm:"primaryKey;autoIncrement"`
	EventID           string          `gorm:"type:varchar(36);not null;index"`
	Name              string          `gorm:"type:varchar(100);not null"`
	Description       string          `gorm:"type:text"`
	Price             decimal.Decimal `gorm:"type:decimal(12,2)"`
	IsFree            bool            `gorm:"not null"`
	IsExpired         bool            `gorm:"not null"`
	TotalTickets      int             `gorm:"not null"`
	AvailableTickets  int             `gorm:"not null"`
	MaxTicketsPerUser int
	SaleStartTime     *time.Time
	SaleEndTime       *time.Time
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return "tickets"
}

// ToDomain converts GORM model to domain entity
func (m *TicketModel) ToDomain() *tickets.TicketType {
	return &tickets.TicketType{
		ID:                m.ID,
		Name:              m.Name,
		Description:       m.Description,
		Price:             m.Price,
		IsFree:            m.IsFree,
		TotalTickets:      m.TotalTickets,
		AvailableTickets:  m.AvailableTickets,
		MaxTicketsPerUser: m.MaxTicketsPerUser,
	}
}

// PurchasedTicketModel is a ticket purchase order
type PurchasedTicketModel struct {
	ID                       int64           `gorm:"primaryKey;autoIncrement"`
	TicketID                 int64           `gorm:"not null;index"`
	UserID                   string          `gorm:"type:varchar(36);not null;index"`
	EventID                  string          `gorm:"type:varchar(36);not null;index"`
	CurrencyID               *int64          `gorm:"index"`
	TotalTickets             int             `gorm:"not null"`
	TotalAmount              decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalAmountIncludingFees decimal.Decimal `gorm:"type:decimal(12,2)"`
	FeesPercentage           decimal.Decimal `gorm:"type:decimal(5,2)"`
	FeesAmount               decimal.Decimal `gorm:"type:decimal(12,2)"`
	GstPercentage            decimal.Decimal `gorm:"type:decimal(5,2)"`
	GstAmount                decimal.Decimal `gorm:"type:decimal(12,2)"`
	PromoCodeID              *int64
	PromoCodeDiscountAmount  decimal.Decimal `gorm:"type:decimal(12,2)"`
	OrderID                  string          `gorm:"type:varchar(100)"`
	PaymentStatus            *string         `gorm:"type:varchar(20);index"`
	CreatedAt                time.Time       `gorm:"index"`
	UpdatedAt                time.Time
	Event                    *EventModel     `gorm:"foreignKey:EventID"`
	Currency                 *CurrencyModel  `gorm:"foreignKey:CurrencyID"`
}

// TableName specifies the table name for GORM
func (PurchasedTicketModel) TableName() string {
	return "purchased_tickets"
}

// ToDomain converts GORM model to domain entity
func (m *PurchasedTicketModel) ToDomain() *tickets.Purchase {
	p := &tickets.Purchase{
		ID:                       m.ID,
		TicketID:                 m.TicketID,
		UserID:                   m.UserID,
		EventID:                  m.EventID,
		TotalTickets:             m.TotalTickets,
		TotalAmount:              m.TotalAmount,
		TotalAmountIncludingFees: m.TotalAmountIncludingFees,
		FeesPercentage:           m.FeesPercentage,
		FeesAmount:               m.FeesAmount,
		GstPercentage:            m.GstPercentage,
		GstAmount:                m.GstAmount,
		PromoCodeID:              m.PromoCodeID,
		PromoCodeDiscountAmount:  m.PromoCodeDiscountAmount,
		OrderID:                  m.OrderID,
		PaymentStatus:            m.PaymentStatus,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
	if m.Event != nil {
		p.EventTitle = m.Event.Title
	}
	if m.Currency != nil {
		p.CurrencyCode = m.Currency.Code
		p.CurrencySymbol = m.Currency.Symbol
	}
	return p
}

// PurchasedTicketQRModel is an admission QR code of a purchase
type PurchasedTicketQRModel struct {
	ID                int64      `gorm:"primaryKey;autoIncrement"`
	PurchasedTicketID int64      `gorm:"not null;index"`
	UserID            string     `gorm:"type:varchar(36);index"`
	BarcodeData       string     `gorm:"type:varchar(255)"`
	Type              string     `gorm:"type:varchar(20)"`
	IsScanned         bool       `gorm:"not null"`
	CreatedAt         time.Time
	User              *UserModel `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (PurchasedTicketQRModel) TableName() string {
	return "purchased_tickets_qrs"
}

// SharedTicketModel is a purchased ticket shared with another user
type SharedTicketModel struct {
	ID                int64      `gorm:"primaryKey;autoIncrement"`
	PurchasedTicketID int64      `gorm:"not null;index"`
	SharedByUserID    string     `gorm:"type:varchar(36);index"`
	RedeemedByUserID  *string    `gorm:"type:varchar(36);index"`
	Status            string     `gorm:"type:varchar(20)"`
	ExpiresAt         *time.Time
	RedeemedAt        *time.Time
	CreatedAt         time.Time
	SharedBy          *UserModel `gorm:"foreignKey:SharedByUserID"`
	RedeemedBy        *UserModel `gorm:"foreignKey:RedeemedByUserID"`
}

// TableName specifies the table name for GORM
func (SharedTicketModel) TableName() string {
	return "shared_tickets"
}
