package v1

import (
	"net/http"

	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// TicketHandler defines the interface for browsing ticket purchases
type TicketHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}

type ticketHandler struct {
	ticketService tickets.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ticketService tickets.TicketService) TicketHandler {
	return &ticketHandler{ticketService: ticketService}
}

// List handles the GET request to list purchases with stats over all purchases
// @Summary List ticket purchases
// @Tags Ticket
// @Produce json
// @Param status query string false "paid, pending or free"
// @Param eventId query string false "Event ID"
// @Success 200 {object} ListResponse
// @Failure 400 {object} ErrorResponse
// @Router /tickets [get]
func (handler *ticketHandler) List(ctx *gin.Context) {
	query := tickets.NewPurchaseQuery()
	query.Status = ctx.Query("status")
	query.EventID = ctx.Query("eventId")
	query.Page = pageParams(ctx, pagination.DefaultLimit)

	items, total, stats, err := handler.ticketService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ListResponse{
		Data:       nonNil(items),
		Pagination: pagination.New(query.Page, total),
		Stats:      stats,
	})
}

// GetByID handles the GET request for a purchase with its financial breakdown
// @Summary Retrieve a ticket purchase
// @Tags Ticket
// @Produce json
// @Param id path int true "Purchase ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tickets/{id} [get]
func (handler *ticketHandler) GetByID(ctx *gin.Context) {
	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	detail, err := handler.ticketService.GetDetail(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, DataResponse{Data: detail})
}
