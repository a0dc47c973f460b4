package app

import (
	"context"
	"fmt"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
)

// userService implements the UserService interface
type userService struct {
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewUserService creates a new userService instance
func NewUserService(userRepo users.UserRepository, logger logger.Logger) (users.UserService, error) {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

func (s *userService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, int64, error) {
	return s.userRepo.List(ctx, query)
}

func (s *userService) GetDetail(ctx context.Context, userID string) (*users.Detail, error) {
	return s.userRepo.GetDetail(ctx, userID)
}

func (s *userService) Update(ctx context.Context, userID string, update *users.UserUpdate) (*users.User, error) {
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", apperr.ErrInvalidInput)
	}
	if err := s.userRepo.Update(ctx, userID, update); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) SetVerification(ctx context.Context, userID string, verified bool) (*users.User, error) {
	if err := s.userRepo.Update(ctx, userID, &users.UserUpdate{IsVerified: &verified}); err != nil {
		return nil, err
	}
	s.logger.Info("Set verification of user ", userID, " to ", verified)
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) ForceLogout(ctx context.Context, userID string) (int64, error) {
	return s.userRepo.ForceLogout(ctx, userID)
}

func (s *userService) Delete(ctx context.Context, userID string) error {
	return s.userRepo.DeleteCascade(ctx, userID)
}

// adminRoleService implements the AdminRoleService interface
type adminRoleService struct {
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewAdminRoleService creates a new adminRoleService instance
func NewAdminRoleService(userRepo users.UserRepository, logger logger.Logger) (users.AdminRoleService, error) {
	return &adminRoleService{
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// SetAdmin grants or revokes the admin flag of the user owning phoneNo
func (s *adminRoleService) SetAdmin(ctx context.Context, phoneNo string, isAdmin bool) (*users.User, error) {
	user, err := s.userRepo.GetByPhone(ctx, phoneNo)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SetAdmin(ctx, user.ID, isAdmin); err != nil {
		return nil, err
	}
	user.IsAdmin = isAdmin
	return user, nil
}
