package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/events"
	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

type gormEventRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEventRepository creates a new GORM-based EventRepository implementation
func NewGormEventRepository(db *gorm.DB, logger logger.Logger) (events.EventRepository, error) {
	return &gormEventRepository{
		db:     db,
		logger: logger,
	}, nil
}

func eventFilter(query *events.EventQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if query.Search != "" {
			p := likePattern(query.Search)
			db = db.Where(likeAny("LOWER(title)", "LOWER(location)", "LOWER(city)"), p, p, p)
		}
		if query.Status != "" {
			db = db.Where("status = ?", query.Status)
		}
		if query.Published != nil {
			db = db.Where("is_published = ?", *query.Published)
		}
		return db
	}
}

func (r *gormEventRepository) List(ctx context.Context, query *events.EventQuery) ([]*events.ListItem, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.EventModel{}).Scopes(eventFilter(query)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	var modelList []*models.EventModel
	if err := r.db.WithContext(ctx).
		Scopes(eventFilter(query), paginate(query.Page)).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch events: %w", err)
	}

	ids := make([]string, len(modelList))
	for i, m := range modelList {
		ids[i] = m.ID
	}
	rsvps, err := r.countByEvent(ctx, &models.EventRSVPModel{}, ids)
	if err != nil {
		return nil, 0, err
	}
	ticketTypes, err := r.countByEvent(ctx, &models.TicketModel{}, ids)
	if err != nil {
		return nil, 0, err
	}
	purchases, err := r.countByEvent(ctx, &models.PurchasedTicketModel{}, ids)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*events.ListItem, len(modelList))
	for i, m := range modelList {
		items[i] = &events.ListItem{
			Event: m.ToDomain(),
			Counts: events.Counts{
				RSVPs:       rsvps[m.ID],
				TicketTypes: ticketTypes[m.ID],
				Purchases:   purchases[m.ID],
			},
		}
	}
	return items, total, nil
}

type eventCount struct {
	EventID string
	Count   int64
}

// countByEvent counts rows of model grouped by event_id for the given events.
func (r *gormEventRepository) countByEvent(ctx context.Context, model interface{}, eventIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}

	var rows []eventCount
	if err := r.db.WithContext(ctx).Model(model).
		Select("event_id, COUNT(*) AS count").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count related rows: %w", err)
	}
	for _, row := range rows {
		counts[row.EventID] = row.Count
	}
	return counts, nil
}

func (r *gormEventRepository) GetByID(ctx context.Context, eventID string) (*events.Event, error) {
	var model models.EventModel
	if err := r.db.WithContext(ctx).Where("id = ?", eventID).First(&model).Error; err != nil {
		return nil, translateNotFound(err, "event", eventID)
	}
	return model.ToDomain(), nil
}

func (r *gormEventRepository) GetDetail(ctx context.Context, eventID string) (*events.Detail, error) {
	event, err := r.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	db := r.db.WithContext(ctx)
	detail := &events.Detail{Event: event}

	if event.HostUserID != "" {
		var host models.UserModel
		err := db.Where("id = ?", event.HostUserID).Limit(1).Find(&host).Error
		if err != nil {
			return nil, fmt.Errorf("failed to fetch host: %w", err)
		}
		if host.ID != "" {
			detail.Host = host.ToSummary()
		}
	}

	var media []models.EventMediaModel
	if err := db.Where("event_id = ?", eventID).Order("id").Find(&media).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch media: %w", err)
	}
	detail.Media = make([]events.Media, len(media))
	for i, m := range media {
		detail.Media[i] = events.Media{ID: m.ID, MediaURL: m.MediaURL, Type: m.Type}
	}

	var categories []models.EventCategoryModel
	if err := db.
		Joins("JOIN event_category_mappings ON event_category_mappings.category_id = event_categories.id").
		Where("event_category_mappings.event_id = ?", eventID).
		Order("event_categories.id").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	detail.Categories = make([]events.Category, len(categories))
	for i, c := range categories {
		detail.Categories[i] = events.Category{ID: c.ID, Name: c.Name, Unicode: c.Unicode}
	}

	var ticketModels []models.TicketModel
	if err := db.Where("event_id = ?", eventID).Order("id").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch ticket types: %w", err)
	}
	detail.TicketTypes = make([]events.TicketType, len(ticketModels))
	for i, t := range ticketModels {
		detail.TicketTypes[i] = events.TicketType{
			ID:               t.ID,
			Name:             t.Name,
			Price:            t.Price,
			TotalTickets:     t.TotalTickets,
			AvailableTickets: t.AvailableTickets,
			IsFree:           t.IsFree,
			IsExpired:        t.IsExpired,
			SaleStartTime:    t.SaleStartTime,
			SaleEndTime:      t.SaleEndTime,
		}
	}

	var sections []models.EventSectionModel
	if err := db.Where("event_id = ?", eventID).Order("display_order").Find(&sections).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sections: %w", err)
	}
	detail.Sections = make([]events.Section, len(sections))
	for i, s := range sections {
		detail.Sections[i] = events.Section{
			ID:           s.ID,
			Type:         s.Type,
			Title:        s.Title,
			Content:      s.Content,
			URL:          s.URL,
			DisplayOrder: s.DisplayOrder,
		}
	}

	counters := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.EventRSVPModel{}, &detail.Counts.RSVPs},
		{&models.TicketModel{}, &detail.Counts.TicketTypes},
		{&models.PurchasedTicketModel{}, &detail.Counts.Purchases},
		{&models.EventCommentModel{}, &detail.Counts.Comments},
		{&models.EventMatchModel{}, &detail.Counts.Matches},
	}
	for _, c := range counters {
		if err := db.Model(c.model).Where("event_id = ?", eventID).Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("failed to count event relations: %w", err)
		}
	}

	return detail, nil
}

func (r *gormEventRepository) Guests(ctx context.Context, eventID string, page pagination.Params) ([]*events.Guest, int64, error) {
	if _, err := r.GetByID(ctx, eventID); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.EventRSVPModel{}).Where("event_id = ?", eventID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count guests: %w", err)
	}

	var rsvps []models.EventRSVPModel
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Scopes(paginate(page)).
		Order("created_at DESC").
		Find(&rsvps).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch guests: %w", err)
	}

	guests := make([]*events.Guest, len(rsvps))
	for i, rsvp := range rsvps {
		guest := &events.Guest{RSVPID: rsvp.ID, Status: rsvp.Status, CreatedAt: rsvp.CreatedAt}
		if rsvp.User != nil {
			guest.User = *rsvp.User.ToSummary()
		} else {
			guest.User = users.Summary{ID: rsvp.UserID}
		}
		guests[i] = guest
	}
	return guests, total, nil
}

type capturedAggregate struct {
	Revenue              decimal.Decimal
	RevenueIncludingFees decimal.Decimal
	PlatformFees         decimal.Decimal
	GstAmount            decimal.Decimal
	PromoDiscounts       decimal.Decimal
	Purchases            int64
	Tickets              int64
	Buyers               int64
}

type ticketTypeAggregate struct {
	TicketID    int64
	Name        string
	TicketsSold int64
	Revenue     decimal.Decimal
}

func (r *gormEventRepository) Financials(ctx context.Context, eventID string) (*events.Financials, error) {
	if _, err := r.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	db := r.db.WithContext(ctx)

	var agg capturedAggregate
	if err := db.Model(&models.PurchasedTicketModel{}).
		Select(`COALESCE(SUM(total_amount), 0) AS revenue,
			COALESCE(SUM(total_amount_including_fees), 0) AS revenue_including_fees,
			COALESCE(SUM(fees_amount), 0) AS platform_fees,
			COALESCE(SUM(gst_amount), 0) AS gst_amount,
			COALESCE(SUM(promo_code_discount_amount), 0) AS promo_discounts,
			COUNT(*) AS purchases,
			COALESCE(SUM(total_tickets), 0) AS tickets,
			COUNT(DISTINCT user_id) AS buyers`).
		Where("event_id = ? AND payment_status = ?", eventID, tickets.PaymentCaptured).
		Scan(&agg).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate captured purchases: %w", err)
	}

	var freeTickets int64
	if err := db.Model(&models.PurchasedTicketModel{}).
		Select("COALESCE(SUM(total_tickets), 0)").
		Where("event_id = ? AND payment_status IS NULL", eventID).
		Scan(&freeTickets).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate free tickets: %w", err)
	}

	var byType []ticketTypeAggregate
	if err := db.Model(&models.PurchasedTicketModel{}).
		Select("tickets.id AS ticket_id, tickets.name AS name, COALESCE(SUM(purchased_tickets.total_tickets), 0) AS tickets_sold, COALESCE(SUM(purchased_tickets.total_amount), 0) AS revenue").
		Joins("JOIN tickets ON tickets.id = purchased_tickets.ticket_id").
		Where("purchased_tickets.event_id = ? AND purchased_tickets.payment_status = ?", eventID, tickets.PaymentCaptured).
		Group("tickets.id, tickets.name").
		Order("tickets.id").
		Scan(&byType).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate ticket types: %w", err)
	}

	qrScope := db.Model(&models.PurchasedTicketQRModel{}).
		Joins("JOIN purchased_tickets ON purchased_tickets.id = purchased_tickets_qrs.purchased_ticket_id").
		Where("purchased_tickets.event_id = ?", eventID)
	var qrTotal, qrScanned int64
	if err := qrScope.Session(&gorm.Session{}).Count(&qrTotal).Error; err != nil {
		return nil, fmt.Errorf("failed to count qr codes: %w", err)
	}
	if err := qrScope.Session(&gorm.Session{}).Where("purchased_tickets_qrs.is_scanned = ?", true).Count(&qrScanned).Error; err != nil {
		return nil, fmt.Errorf("failed to count scanned qr codes: %w", err)
	}

	fin := &events.Financials{
		EventID:              eventID,
		Revenue:              agg.Revenue,
		RevenueIncludingFees: agg.RevenueIncludingFees,
		PlatformFees:         agg.PlatformFees,
		GstAmount:            agg.GstAmount,
		PromoDiscounts:       agg.PromoDiscounts,
		CapturedPurchases:    agg.Purchases,
		TicketsSold:          agg.Tickets + freeTickets,
		FreeTickets:          freeTickets,
		PaidTickets:          agg.Tickets,
		UniqueBuyers:         agg.Buyers,
		QRCodesTotal:         qrTotal,
		QRCodesScanned:       qrScanned,
		ByTicketType:         make([]events.TicketTypeRevenue, len(byType)),
	}
	for i, t := range byType {
		fin.ByTicketType[i] = events.TicketTypeRevenue{TicketID: t.TicketID, Name: t.Name, TicketsSold: t.TicketsSold, Revenue: t.Revenue}
	}

	var latest []models.EventPayoutModel
	if err := db.Where("event_id = ?", eventID).Order("requested_at DESC").Limit(1).Find(&latest).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch latest payout: %w", err)
	}
	if len(latest) == 1 {
		fin.LatestPayout = &events.PayoutSummary{
			ID:          latest[0].ID,
			Status:      latest[0].PayoutStatus,
			NetAmount:   latest[0].NetAmount,
			RequestedAt: latest[0].RequestedAt,
		}
	}

	return fin, nil
}

func (r *gormEventRepository) Update(ctx context.Context, eventID string, update *events.EventUpdate) error {
	if err := update.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	values := map[string]interface{}{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		values["title"] = *update.Title
	}
	if update.Location != nil {
		values["location"] = *update.Location
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.StartTime != nil {
		values["start_time"] = update.StartTime.UTC()
	}
	if update.EndTime != nil {
		values["end_time"] = update.EndTime.UTC()
	}
	if update.EventType != nil {
		values["event_type"] = *update.EventType
	}
	if update.Status != nil {
		values["status"] = *update.Status
	}
	if update.IsPublished != nil {
		values["is_published"] = *update.IsPublished
	}
	if update.City != nil {
		values["city"] = *update.City
	}
	if update.Capacity != nil {
		values["capacity"] = *update.Capacity
	}
	if update.AgeRestriction != nil {
		values["age_restriction"] = *update.AgeRestriction
	}
	if update.Visibility != nil {
		values["visibility"] = *update.Visibility
	}
	if update.ShowGuestList != nil {
		values["show_guest_list"] = *update.ShowGuestList
	}

	result := r.db.WithContext(ctx).Model(&models.EventModel{}).Where("id = ?", eventID).Updates(values)
	if result.Error != nil {
		return fmt.Errorf("failed to update event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("event", eventID)
	}

	r.logger.Info("Updated event with id ", eventID)
	return nil
}

func (r *gormEventRepository) DeleteCascade(ctx context.Context, eventID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.EventModel{}, eventID)
		if err != nil {
			return fmt.Errorf("failed to fetch event: %w", err)
		}
		if !found {
			return notFound("event", eventID)
		}

		var purchaseIDs []int64
		if err := tx.Model(&models.PurchasedTicketModel{}).Where("event_id = ?", eventID).Pluck("id", &purchaseIDs).Error; err != nil {
			return fmt.Errorf("failed to fetch purchases: %w", err)
		}
		if len(purchaseIDs) > 0 {
			if err := tx.Where("purchased_ticket_id IN ?", purchaseIDs).Delete(&models.PurchasedTicketQRModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete qr codes: %w", err)
			}
			if err := tx.Where("purchased_ticket_id IN ?", purchaseIDs).Delete(&models.SharedTicketModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete shared tickets: %w", err)
			}
		}

		dependents := []struct {
			name  string
			model interface{}
		}{
			{"purchased tickets", &models.PurchasedTicketModel{}},
			{"payouts", &models.EventPayoutModel{}},
			{"rsvps", &models.EventRSVPModel{}},
			{"ticket types", &models.TicketModel{}},
			{"media", &models.EventMediaModel{}},
			{"sections", &models.EventSectionModel{}},
			{"category mappings", &models.EventCategoryMappingModel{}},
			{"comments", &models.EventCommentModel{}},
			{"swipes", &models.EventSwipeModel{}},
			{"matches", &models.EventMatchModel{}},
			{"favourites", &models.FavouriteEventModel{}},
		}
		for _, d := range dependents {
			if err := tx.Where("event_id = ?", eventID).Delete(d.model).Error; err != nil {
				return fmt.Errorf("failed to delete %s: %w", d.name, err)
			}
		}

		if err := tx.Where("id = ?", eventID).Delete(&models.EventModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted event with id ", eventID)
	return nil
}
