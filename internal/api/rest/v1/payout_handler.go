package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// PayoutHandler defines the interface for handling payout-related operations
type PayoutHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	CreateForEvent(ctx *gin.Context)
	ChangeStatus(ctx *gin.Context)
	Preview(ctx *gin.Context)
}

type payoutHandler struct {
	payoutService payouts.PayoutService
	invalidator   Invalidator
}

// NewPayoutHandler creates a new PayoutHandler
func NewPayoutHandler(payoutService payouts.PayoutService, invalidator Invalidator) PayoutHandler {
	return &payoutHandler{
		payoutService: payoutService,
		invalidator:   invalidator,
	}
}

// List handles the GET request to list payouts with stats over all payouts
// @Summary List payouts
// @Tags Payout
// @Produce json
// @Param status query string false "Pending, Processing, Completed, Failed or Cancelled"
// @Success 200 {object} ListResponse
// @Failure 400 {object} ErrorResponse
// @Router /payouts [get]
func (handler *payoutHandler) List(ctx *gin.Context) {
	query := payouts.NewPayoutQuery()
	query.Status = ctx.Query("status")
	query.Page = pageParams(ctx, pagination.DefaultLimit)

	items, total, stats, err := handler.payoutService.List(ctx, query)
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

// GetByID handles the GET request for a payout
// @Summary Retrieve a payout
// @Tags Payout
// @Produce json
// @Param id path int true "Payout ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /payouts/{id} [get]
func (handler *payoutHandler) GetByID(ctx *gin.Context) {
	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	payout, err := handler.payoutService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, DataResponse{Data: payout})
}

// CreateForEvent handles the POST request netting the captured purchases of an event into a payout
// @Summary Create a payout for an event
// @Tags Payout
// @Produce json
// @Param id path string true "Event ID"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id}/payouts [post]
func (handler *payoutHandler) CreateForEvent(ctx *gin.Context) {
	eventID := ctx.Param("id")

	payout, err := handler.payoutService.CreateForEvent(ctx, eventID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidator.Invalidate(ctx, "/payouts", "/events/"+eventID, "/analytics")
	ctx.JSON(http.StatusCreated, DataResponse{Data: payout})
}

// ChangeStatus handles the PUT request moving a payout along its lifecycle
// @Summary Change payout status
// @Tags Payout
// @Accept json
// @Produce json
// @Param id path int true "Payout ID"
// @Param requestBody body payouts.StatusChange true "New status and optional reference"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payouts/{id}/status [put]
func (handler *payoutHandler) ChangeStatus(ctx *gin.Context) {
	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	var change payouts.StatusChange
	if err := ctx.ShouldBindJSON(&change); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	payout, err := handler.payoutService.ChangeStatus(ctx, id, &change)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidator.Invalidate(ctx, "/payouts", "/events/"+payout.EventID, "/analytics")
	ctx.JSON(http.StatusOK, DataResponse{Data: payout})
}

// Preview handles the GET request applying the fee calculator to an amount
// @Summary Preview platform fees
// @Tags Payout
// @Produce json
// @Param amount query number true "Base amount"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /payouts/preview [get]
func (handler *payoutHandler) Preview(ctx *gin.Context) {
	amount, err := strconv.ParseFloat(ctx.Query("amount"), 64)
	if err != nil {
		respondError(ctx, fmt.Errorf("%w: amount must be a number", apperr.ErrInvalidInput))
		return
	}

	breakdown, err := handler.payoutService.Preview(amount)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, DataResponse{Data: breakdown})
}
