package v1

import (
	"net/http"

	"github.com/gauravkdm/admin-portal/internal/domain/events"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// EventHandler defines the interface for handling event-related operations
type EventHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Guests(ctx *gin.Context)
	Financials(ctx *gin.Context)
	Update(ctx *gin.Context)
	SetPublished(ctx *gin.Context)
	SetStatus(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type eventHandler struct {
	eventService events.EventService
	invalidator  Invalidator
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService events.EventService, invalidator Invalidator) EventHandler {
	return &eventHandler{
		eventService: eventService,
		invalidator:  invalidator,
	}
}

// List handles the GET request to list events
// @Summary List events
// @Description Search events by title, location or city with RSVP, ticket type and purchase counts.
// @Tags Event
// @Produce json
// @Param search query string false "Search term"
// @Param status query string false "Draft, Active, Cancelled or Completed"
// @Param published query bool false "Published filter"
// @Success 200 {object} ListResponse
// @Failure 400 {object} ErrorResponse
// @Router /events [get]
func (handler *eventHandler) List(ctx *gin.Context) {
	query := events.NewEventQuery()
	query.Search = ctx.Query("search")
	query.Status = ctx.Query("status")
	query.Page = pageParams(ctx, pagination.DefaultLimit)

	published, err := optionalBool(ctx, "published")
	if err != nil {
		respondError(ctx, err)
		return
	}
	query.Published = published

	items, total, err := handler.eventService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ListResponse{
		Data:       nonNil(items),
		Pagination: pagination.New(query.Page, total),
	})
}

// GetByID handles the GET request for an event with media, categories, ticket types and sections
// @Summary Retrieve an event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id} [get]
func (handler *eventHandler) GetByID(ctx *gin.Context) {
	detail, err := handler.eventService.GetDetail(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, DataResponse{Data: detail})
}

// Guests handles the GET request listing the RSVPs of an event
// @Summary List event guests
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} ListResponse
// @Router /events/{id}/guests [get]
func (handler *eventHandler) Guests(ctx *gin.Context) {
	page := pageParams(ctx, pagination.DefaultLimit)

	guests, total, err := handler.eventService.Guests(ctx, ctx.Param("id"), page)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ListResponse{
		Data:       nonNil(guests),
		Pagination: pagination.New(page, total),
	})
}

// Financials handles the GET request for the revenue breakdown of an event
// @Summary Event financials
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id}/financials [get]
func (handler *eventHandler) Financials(ctx *gin.Context) {
	financials, err := handler.eventService.Financials(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, DataResponse{Data: financials})
}

// Update handles the PUT request applying a partial event update
// @Summary Update an event
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param requestBody body events.EventUpdate true "Fields to update"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id} [put]
func (handler *eventHandler) Update(ctx *gin.Context) {
	var update events.EventUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	event, err := handler.eventService.Update(ctx, ctx.Param("id"), &update)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, DataResponse{Data: event})
}

// SetPublished handles the PUT request publishing or unpublishing an event
// @Summary Publish an event
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param requestBody body PublishRequest true "Published flag"
// @Success 200 {object} DataResponse
// @Router /events/{id}/publish [put]
func (handler *eventHandler) SetPublished(ctx *gin.Context) {
	var request PublishRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, "isPublished must be a boolean")
		return
	}

	event, err := handler.eventService.SetPublished(ctx, ctx.Param("id"), *request.IsPublished)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, DataResponse{Data: event})
}

// SetStatus handles the PUT request changing the status of an event
// @Summary Change event status
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param requestBody body StatusRequest true "New status"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /events/{id}/status [put]
func (handler *eventHandler) SetStatus(ctx *gin.Context) {
	var request StatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, "status is required")
		return
	}

	event, err := handler.eventService.SetStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, DataResponse{Data: event})
}

// Delete handles the DELETE request removing an event and all dependent rows
// @Summary Delete an event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id} [delete]
func (handler *eventHandler) Delete(ctx *gin.Context) {
	if err := handler.eventService.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, MessageResponse{Message: "Event deleted successfully"})
}

// eventDependents embed event titles, status or host; /events covers the guest lists.
var eventDependents = []string{"/events", "/tickets", "/payouts", "/dashboard", "/analytics"}

func (handler *eventHandler) invalidate(ctx *gin.Context) {
	handler.invalidator.Invalidate(ctx, eventDependents...)
}
