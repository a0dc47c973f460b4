package v1

import (
	"github.com/gauravkdm/admin-portal/internal/domain/analytics"
	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/domain/content"
	"github.com/gauravkdm/admin-portal/internal/domain/events"
	"github.com/gauravkdm/admin-portal/internal/domain/logs"
	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
	"github.com/gauravkdm/admin-portal/internal/domain/notifications"
	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/gauravkdm/admin-portal/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// Services bundles the application services behind the version 1 routes
type Services struct {
	Auth          auth.AuthService
	Users         users.UserService
	Events        events.EventService
	Tickets       tickets.TicketService
	Payouts       payouts.PayoutService
	Moderation    moderation.ModerationService
	Content       content.ContentService
	Logs          logs.LogService
	Notifications notifications.NotificationService
	Analytics     analytics.AnalyticsService
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services, routeCache *RouteCache, cookie SessionCookie) {
	v1 := r.Group(BasePath)
	gate := AdminGate(services.Auth, cookie.Name)

	// Auth Routes
	authHandler := NewAuthHandler(services.Auth, cookie)
	authGroup := v1.Group("/auth")
	authGroup.POST("/send-otp", authHandler.SendOTP)
	authGroup.POST("/verify-otp", authHandler.VerifyOTP)
	authGroup.POST("/sign-in", authHandler.SignIn)
	authGroup.POST("/sign-out", authHandler.SignOut)
	authGroup.GET("/session", gate, authHandler.Session)

	admin := v1.Group("", gate, routeCache.Middleware())

	// Users Routes
	userHandler := NewUserHandler(services.Users, routeCache)
	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.GetByID)
	admin.PUT("/users/:id", userHandler.Update)
	admin.PUT("/users/:id/verification", userHandler.SetVerification)
	admin.POST("/users/:id/force-logout", userHandler.ForceLogout)
	admin.DELETE("/users/:id", userHandler.Delete)

	// Events Routes
	eventHandler := NewEventHandler(services.Events, routeCache)
	admin.GET("/events", eventHandler.List)
	admin.GET("/events/:id", eventHandler.GetByID)
	admin.GET("/events/:id/guests", eventHandler.Guests)
	admin.GET("/events/:id/financials", eventHandler.Financials)
	admin.PUT("/events/:id", eventHandler.Update)
	admin.PUT("/events/:id/publish", eventHandler.SetPublished)
	admin.PUT("/events/:id/status", eventHandler.SetStatus)
	admin.DELETE("/events/:id", eventHandler.Delete)

	// Tickets Routes
	ticketHandler := NewTicketHandler(services.Tickets)
	admin.GET("/tickets", ticketHandler.List)
	admin.GET("/tickets/:id", ticketHandler.GetByID)

	// Payouts Routes
	payoutHandler := NewPayoutHandler(services.Payouts, routeCache)
	admin.GET("/payouts", payoutHandler.List)
	admin.GET("/payouts/preview", payoutHandler.Preview)
	admin.GET("/payouts/:id", payoutHandler.GetByID)
	admin.PUT("/payouts/:id/status", payoutHandler.ChangeStatus)
	admin.POST("/events/:id/payouts", payoutHandler.CreateForEvent)

	// Moderation Routes
	moderationHandler := NewModerationHandler(services.Moderation, routeCache)
	admin.GET("/reports", moderationHandler.ListReports)
	admin.PUT("/reports/:id", moderationHandler.ReviewReport)
	admin.GET("/contact", moderationHandler.ListContactMessages)
	admin.PUT("/contact/:id", moderationHandler.UpdateContactMessage)
	admin.GET("/demos", moderationHandler.ListDemoRequests)
	admin.PUT("/demos/:id", moderationHandler.UpdateDemoRequest)

	// Content Routes
	contentHandler := NewContentHandler(services.Content, routeCache)
	contentGroup := admin.Group(contentPath)
	contentGroup.GET("/categories", contentHandler.ListCategories)
	contentGroup.POST("/categories", contentHandler.CreateCategory)
	contentGroup.PUT("/categories/:id", contentHandler.UpdateCategory)
	contentGroup.DELETE("/categories/:id", contentHandler.DeleteCategory)
	contentGroup.GET("/languages", contentHandler.ListLanguages)
	contentGroup.POST("/languages", contentHandler.CreateLanguage)
	contentGroup.PUT("/languages/:id", contentHandler.UpdateLanguage)
	contentGroup.DELETE("/languages/:id", contentHandler.DeleteLanguage)
	contentGroup.GET("/questions", contentHandler.ListQuestions)
	contentGroup.POST("/questions", contentHandler.CreateQuestion)
	contentGroup.PUT("/questions/:id", contentHandler.UpdateQuestion)
	contentGroup.DELETE("/questions/:id", contentHandler.DeleteQuestion)
	contentGroup.GET("/:kind", contentHandler.ListTags)
	contentGroup.POST("/:kind", contentHandler.CreateTag)
	contentGroup.PUT("/:kind/:id", contentHandler.UpdateTag)
	contentGroup.DELETE("/:kind/:id", contentHandler.DeleteTag)

	// Logs Routes
	logHandler := NewLogHandler(services.Logs, services.Notifications)
	admin.GET("/logs/sms", logHandler.ListSMS)
	admin.GET("/logs/exceptions", logHandler.ListExceptions)
	admin.GET("/logs/requests", logHandler.ListRequests)
	admin.GET("/notifications", logHandler.ListNotifications)

	// Analytics Routes
	analyticsHandler := NewAnalyticsHandler(services.Analytics)
	admin.GET("/dashboard", analyticsHandler.Dashboard)
	admin.GET("/analytics", analyticsHandler.Analytics)
}
