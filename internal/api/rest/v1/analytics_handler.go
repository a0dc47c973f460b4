package v1

import (
	"net/http"

	"github.com/gauravkdm/admin-portal/internal/domain/analytics"
	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the dashboard and analytics aggregates
type AnalyticsHandler interface {
	Dashboard(ctx *gin.Context)
	Analytics(ctx *gin.Context)
}

type analyticsHandler struct {
	analyticsService analytics.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{analyticsService: analyticsService}
}

// Dashboard handles the GET request for the dashboard totals and recent activity
// @Summary Dashboard
// @Tags Analytics
// @Produce json
// @Success 200 {object} DataResponse
// @Router /dashboard [get]
func (handler *analyticsHandler) Dashboard(ctx *gin.Context) {
	dashboard, err := handler.analyticsService.Dashboard(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, DataResponse{Data: dashboard})
}

// Analytics handles the GET request for the platform analytics
// @Summary Analytics
// @Tags Analytics
// @Produce json
// @Success 200 {object} DataResponse
// @Router /analytics [get]
func (handler *analyticsHandler) Analytics(ctx *gin.Context) {
	report, err := handler.analyticsService.Analytics(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, DataResponse{Data: report})
}
