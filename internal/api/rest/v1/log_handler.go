package v1

import (
	"net/http"

	"github.com/gauravkdm/admin-portal/internal/domain/logs"
	"github.com/gauravkdm/admin-portal/internal/domain/notifications"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// LogHandler defines the interface for the delivery, exception and request logs
type LogHandler interface {
	ListSMS(ctx *gin.Context)
	ListExceptions(ctx *gin.Context)
	ListRequests(ctx *gin.Context)
	ListNotifications(ctx *gin.Context)
}

type logHandler struct {
	logService          logs.LogService
	notificationService notifications.NotificationService
}

// NewLogHandler creates a new LogHandler
func NewLogHandler(logService logs.LogService, notificationService notifications.NotificationService) LogHandler {
	return &logHandler{
		logService:          logService,
		notificationService: notificationService,
	}
}

// ListSMS handles the GET request to list SMS delivery logs
// @Summary List SMS logs
// @Tags Log
// @Produce json
// @Param status query string false "Delivery status"
// @Success 200 {object} ListResponse
// @Router /logs/sms [get]
func (handler *logHandler) ListSMS(ctx *gin.Context) {
	query := &logs.SMSQuery{
		Status: ctx.Query("status"),
		Page:   pageParams(ctx, pagination.DefaultLogLimit),
	}

	items, total, err := handler.logService.ListSMS(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ListResponse{Data: nonNil(items), Pagination: pagination.New(query.Page, total)})
}

// ListExceptions handles the GET request to list exception logs
// @Summary List exception logs
// @Tags Log
// @Produce json
// @Param statusCode query int false "HTTP status code"
// @Success 200 {object} ListResponse
// @Failure 400 {object} ErrorResponse
// @Router /logs/exceptions [get]
func (handler *logHandler) ListExceptions(ctx *gin.Context) {
	statusCode, err := optionalInt(ctx, "statusCode")
	if err != nil {
		respondError(ctx, err)
		return
	}

	query := &logs.ExceptionQuery{
		StatusCode: statusCode,
		Page:       pageParams(ctx, pagination.DefaultLogLimit),
	}

	items, total, err := handler.logService.ListExceptions(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ListResponse{Data: nonNil(items), Pagination: pagination.New(query.Page, total)})
}

// ListRequests handles the GET request to list request logs
// @Summary List request logs
// @Tags Log
// @Produce json
// @Param method query string false "HTTP method"
// @Param statusCode query int false "HTTP status code"
// @Success 200 {object} ListResponse
// @Failure 400 {object} ErrorResponse
// @Router /logs/requests [get]
func (handler *logHandler) ListRequests(ctx *gin.Context) {
	statusCode, err := optionalInt(ctx, "statusCode")
	if err != nil {
		respondError(ctx, err)
		return
	}

	query := &logs.RequestQuery{
		Method:     ctx.Query("method"),
		StatusCode: statusCode,
		Page:       pageParams(ctx, pagination.DefaultLogLimit),
	}

	items, total, err := handler.logService.ListRequests(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ListResponse{Data: nonNil(items), Pagination: pagination.New(query.Page, total)})
}

// ListNotifications handles the GET request to list push notification history
// @Summary List notifications
// @Tags Log
// @Produce json
// @Param status query string false "Notification status"
// @Success 200 {object} ListResponse
// @Router /notifications [get]
func (handler *logHandler) ListNotifications(ctx *gin.Context) {
	query := &notifications.Query{
		Status: ctx.Query("status"),
		Page:   pageParams(ctx, pagination.DefaultLimit),
	}

	items, total, err := handler.notificationService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ListResponse{Data: nonNil(items), Pagination: pagination.New(query.Page, total)})
}
