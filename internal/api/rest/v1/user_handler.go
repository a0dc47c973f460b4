package v1

import (
	"net/http"

	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for handling user-related operations
type UserHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	SetVerification(ctx *gin.Context)
	ForceLogout(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type userHandler struct {
	userService users.UserService
	invalidator Invalidator
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService, invalidator Invalidator) UserHandler {
	return &userHandler{
		userService: userService,
		invalidator: invalidator,
	}
}

// List handles the GET request to list users
// @Summary List users
// @Description Search users by name, email or phone, newest first.
// @Tags User
// @Produce json
// @Param search query string false "Search term"
// @Param verified query bool false "Verified filter"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} ListResponse
// @Failure 400 {object} ErrorResponse
// @Router /users [get]
func (handler *userHandler) List(ctx *gin.Context) {
	query := users.NewUserQuery()
	query.Search = ctx.Query("search")
	query.Page = pageParams(ctx, pagination.DefaultLimit)

	verified, err := optionalBool(ctx, "verified")
	if err != nil {
		respondError(ctx, err)
		return
	}
	query.Verified = verified

	items, total, err := handler.userService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ListResponse{
		Data:       nonNil(items),
		Pagination: pagination.New(query.Page, total),
	})
}

// GetByID handles the GET request for a user with devices, sessions, RSVPs and profile tags
// @Summary Retrieve a user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (handler *userHandler) GetByID(ctx *gin.Context) {
	detail, err := handler.userService.GetDetail(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, DataResponse{Data: detail})
}

// Update handles the PUT request applying a partial user update
// @Summary Update a user
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param requestBody body users.UserUpdate true "Fields to update"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [put]
func (handler *userHandler) Update(ctx *gin.Context) {
	var update users.UserUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := handler.userService.Update(ctx, ctx.Param("id"), &update)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, DataResponse{Data: user})
}

// SetVerification handles the PUT request toggling the verified flag
// @Summary Set user verification
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param requestBody body VerificationRequest true "Verified flag"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /users/{id}/verification [put]
func (handler *userHandler) SetVerification(ctx *gin.Context) {
	var request VerificationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, "isVerified must be a boolean")
		return
	}

	user, err := handler.userService.SetVerification(ctx, ctx.Param("id"), *request.IsVerified)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, DataResponse{Data: user})
}

// ForceLogout handles the POST request revoking every session of a user
// @Summary Force logout
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} ForceLogoutResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id}/force-logout [post]
func (handler *userHandler) ForceLogout(ctx *gin.Context) {
	removed, err := handler.userService.ForceLogout(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, ForceLogoutResponse{
		Message:       "User logged out from all devices",
		TokensRemoved: removed,
	})
}

// Delete handles the DELETE request removing a user and all dependent rows
// @Summary Delete a user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [delete]
func (handler *userHandler) Delete(ctx *gin.Context) {
	if err := handler.userService.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	handler.invalidate(ctx)
	ctx.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}

// userDependents show user names as hosts, guests, buyers or payees.
var userDependents = []string{"/users", "/events", "/tickets", "/payouts", "/dashboard", "/analytics"}

func (handler *userHandler) invalidate(ctx *gin.Context) {
	handler.invalidator.Invalidate(ctx, userDependents...)
}
