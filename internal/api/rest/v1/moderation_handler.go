package v1

import (
	"net/http"

	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// ModerationHandler defines the interface for reports, contact messages and demo requests
type ModerationHandler interface {
	ListReports(ctx *gin.Context)
	ReviewReport(ctx *gin.Context)
	ListContactMessages(ctx *gin.Context)
	UpdateContactMessage(ctx *gin.Context)
	ListDemoRequests(ctx *gin.Context)
	UpdateDemoRequest(ctx *gin.Context)
}

type moderationHandler struct {
	moderationService moderation.ModerationService
	invalidator       Invalidator
}

// NewModerationHandler creates a new ModerationHandler
func NewModerationHandler(moderationService moderation.ModerationService, invalidator Invalidator) ModerationHandler {
	return &moderationHandler{
		moderationService: moderationService,
		invalidator:       invalidator,
	}
}

func listQuery(ctx *gin.Context) *moderation.Query {
	query := moderation.NewQuery()
	query.Status = ctx.Query("status")
	query.Page = pageParams(ctx, pagination.DefaultLimit)
	return query
}

// ListReports handles the GET request to list user reports
// @Summary List user reports
// @Tags Moderation
// @Produce json
// @Param status query string false "Pending, Reviewed, Resolved or Dismissed"
// @Success 200 {object} ListResponse
// @Failure 400 {object} ErrorResponse
// @Router /reports [get]
func (handler *moderationHandler) ListReports(ctx *gin.Context) {
	query := listQuery(ctx)

	items, total, err := handler.moderationService.ListReports(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ListResponse{Data: nonNil(items), Pagination: pagination.New(query.Page, total)})
}

// ReviewReport handles the PUT request recording a decision on a report
// @Summary Review a report
// @Tags Moderation
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param requestBody body moderation.ReportReview true "Decision"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/{id} [put]
func (handler *moderationHandler) ReviewReport(ctx *gin.Context) {
	admin, ok := currentAdmin(ctx)
	if !ok {
		return
	}

	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	var review moderation.ReportReview
	if err := ctx.ShouldBindJSON(&review); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	report, err := handler.moderationService.ReviewReport(ctx, id, admin.UserID, &review)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidator.Invalidate(ctx, "/reports", "/dashboard", "/analytics")
	ctx.JSON(http.StatusOK, DataResponse{Data: report})
}

// ListContactMessages handles the GET request to list contact messages
// @Summary List contact messages
// @Tags Moderation
// @Produce json
// @Param status query string false "Pending, InProgress, Resolved or Closed"
// @Success 200 {object} ListResponse
// @Router /contact [get]
func (handler *moderationHandler) ListContactMessages(ctx *gin.Context) {
	query := listQuery(ctx)

	items, total, err := handler.moderationService.ListContactMessages(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ListResponse{Data: nonNil(items), Pagination: pagination.New(query.Page, total)})
}

// UpdateContactMessage handles the PUT request on a contact message
// @Summary Update a contact message
// @Tags Moderation
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param requestBody body moderation.ContactUpdate true "Status and notes"
// @Success 200 {object} DataResponse
// @Router /contact/{id} [put]
func (handler *moderationHandler) UpdateContactMessage(ctx *gin.Context) {
	admin, ok := currentAdmin(ctx)
	if !ok {
		return
	}

	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	var update moderation.ContactUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	message, err := handler.moderationService.UpdateContactMessage(ctx, id, admin.UserID, &update)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidator.Invalidate(ctx, "/contact", "/dashboard", "/analytics")
	ctx.JSON(http.StatusOK, DataResponse{Data: message})
}

// ListDemoRequests handles the GET request to list demo requests
// @Summary List demo requests
// @Tags Moderation
// @Produce json
// @Param status query string false "Pending, Scheduled, Completed or Cancelled"
// @Success 200 {object} ListResponse
// @Router /demos [get]
func (handler *moderationHandler) ListDemoRequests(ctx *gin.Context) {
	query := listQuery(ctx)

	items, total, err := handler.moderationService.ListDemoRequests(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ListResponse{Data: nonNil(items), Pagination: pagination.New(query.Page, total)})
}

// UpdateDemoRequest handles the PUT request on a demo request
// @Summary Update a demo request
// @Description Assigns the signed-in admin and mails the requester when a demo time is set.
// @Tags Moderation
// @Accept json
// @Produce json
// @Param id path int true "Demo request ID"
// @Param requestBody body moderation.DemoUpdate true "Status, notes and schedule"
// @Success 200 {object} DataResponse
// @Router /demos/{id} [put]
func (handler *moderationHandler) UpdateDemoRequest(ctx *gin.Context) {
	admin, ok := currentAdmin(ctx)
	if !ok {
		return
	}

	id, err := numericID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	var update moderation.DemoUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	demo, err := handler.moderationService.UpdateDemoRequest(ctx, id, admin.UserID, &update)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidator.Invalidate(ctx, "/demos", "/analytics")
	ctx.JSON(http.StatusOK, DataResponse{Data: demo})
}
