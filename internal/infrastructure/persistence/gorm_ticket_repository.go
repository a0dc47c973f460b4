package persistence

import (
	"context"
	"fmt"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTicketRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTicketRepository creates a new GORM-based TicketRepository implementation
func NewGormTicketRepository(db *gorm.DB, logger logger.Logger) (tickets.TicketRepository, error) {
	return &gormTicketRepository{
		db:     db,
		logger: logger,
	}, nil
}

func purchaseFilter(query *tickets.PurchaseQuery) (func(*gorm.DB) *gorm.DB, error) {
	var status *string
	filterStatus := false
	if query.Status != "" {
		s, ok := tickets.PaymentStatusFor(query.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown ticket status %q", apperr.ErrInvalidInput, query.Status)
		}
		status, filterStatus = s, true
	}

	return func(db *gorm.DB) *gorm.DB {
		if filterStatus {
			if status == nil {
				db = db.Where("purchased_tickets.payment_status IS NULL")
			} else {
				db = db.Where("purchased_tickets.payment_status = ?", *status)
			}
		}
		if query.EventID != "" {
			db = db.Where("purchased_tickets.event_id = ?", query.EventID)
		}
		return db
	}, nil
}

func (r *gormTicketRepository) List(ctx context.Context, query *tickets.PurchaseQuery) ([]*tickets.Purchase, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}
	filter, err := purchaseFilter(query)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.PurchasedTicketModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	var modelList []*models.PurchasedTicketModel
	if err := r.db.WithContext(ctx).
		Preload("Event", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title") }).
		Preload("Currency").
		Scopes(filter, paginate(query.Page)).
		Order("purchased_tickets.created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch purchases: %w", err)
	}

	list := make([]*tickets.Purchase, len(modelList))
	for i, m := range modelList {
		list[i] = m.ToDomain()
	}
	return list, total, nil
}

func (r *gormTicketRepository) Stats(ctx context.Context) (*tickets.Stats, error) {
	var stats tickets.Stats
	if err := r.db.WithContext(ctx).Model(&models.PurchasedTicketModel{}).
		Select(`COUNT(*) AS total_purchases,
			COALESCE(SUM(total_tickets), 0) AS total_tickets_sold,
			COALESCE(SUM(total_amount), 0) AS total_revenue,
			COALESCE(SUM(total_amount_including_fees), 0) AS total_revenue_with_fees`).
		Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate purchases: %w", err)
	}
	return &stats, nil
}

func (r *gormTicketRepository) GetDetail(ctx context.Context, purchaseID int64) (*tickets.Detail, error) {
	db := r.db.WithContext(ctx)

	var purchase models.PurchasedTicketModel
	if err := db.Preload("Event").Preload("Currency").Where("id = ?", purchaseID).First(&purchase).Error; err != nil {
		return nil, translateNotFound(err, "purchase", purchaseID)
	}
	detail := &tickets.Detail{Purchase: purchase.ToDomain()}
	detail.Breakdown = tickets.BreakdownOf(detail.Purchase)

	var buyer models.UserModel
	if err := db.Where("id = ?", purchase.UserID).Limit(1).Find(&buyer).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch buyer: %w", err)
	}
	if buyer.ID != "" {
		detail.Buyer = &tickets.Buyer{
			ID:              buyer.ID,
			FirstName:       buyer.FirstName,
			LastName:        buyer.LastName,
			Email:           buyer.Email,
			PhoneNo:         buyer.PhoneNo,
			ProfilePhotoURL: buyer.ProfilePhotoCdnUrl1,
		}
	}

	var ticketType models.TicketModel
	if err := db.Where("id = ?", purchase.TicketID).Limit(1).Find(&ticketType).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch ticket type: %w", err)
	}
	if ticketType.ID != 0 {
		detail.TicketType = ticketType.ToDomain()
	}

	var qrs []models.PurchasedTicketQRModel
	if err := db.Preload("User").Where("purchased_ticket_id = ?", purchaseID).Order("id").Find(&qrs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch qr codes: %w", err)
	}
	detail.QRCodes = make([]tickets.QRCode, len(qrs))
	for i, qr := range qrs {
		detail.QRCodes[i] = tickets.QRCode{
			ID:          qr.ID,
			BarcodeData: qr.BarcodeData,
			Type:        qr.Type,
			IsScanned:   qr.IsScanned,
			UserID:      qr.UserID,
			CreatedAt:   qr.CreatedAt,
		}
		if qr.User != nil {
			detail.QRCodes[i].HolderName = qr.User.ToDomain().FullName()
		}
	}

	var shares []models.SharedTicketModel
	if err := db.Preload("SharedBy").Preload("RedeemedBy").
		Where("purchased_ticket_id = ?", purchaseID).Order("created_at DESC").Find(&shares).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch shares: %w", err)
	}
	detail.Shares = make([]tickets.Share, len(shares))
	for i, s := range shares {
		detail.Shares[i] = tickets.Share{
			ID:         s.ID,
			Status:     s.Status,
			ExpiresAt:  s.ExpiresAt,
			RedeemedAt: s.RedeemedAt,
			CreatedAt:  s.CreatedAt,
		}
		if s.SharedBy != nil {
			detail.Shares[i].SharedBy = s.SharedBy.ToDomain().FullName()
		}
		if s.RedeemedBy != nil {
			detail.Shares[i].RedeemedBy = s.RedeemedBy.ToDomain().FullName()
		}
	}

	return detail, nil
}
