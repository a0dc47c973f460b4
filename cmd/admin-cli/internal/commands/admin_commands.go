package commands

import (
	"fmt"

	"github.com/gauravkdm/admin-portal/internal/app"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AdminCommandHandler grants and revokes the admin flag.
type AdminCommandHandler struct {
	logger logger.Logger
}

// NewAdminCommandHandler creates an AdminCommandHandler
func NewAdminCommandHandler() (*AdminCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &AdminCommandHandler{logger: loggerInstance}, nil
}

func (commandHandler *AdminCommandHandler) setAdmin(cmd *cobra.Command, isAdmin bool) {
	phone, err := cmd.Flags().GetString("phone")
	if err != nil {
		commandHandler.logger.Error("invalid phone flag ", err)
		return
	}

	db, err := openDatabase(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn(err)
		}
	}()

	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	roles, err := app.NewAdminRoleService(userRepo, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	user, err := roles.SetAdmin(cmd.Context(), phone, isAdmin)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("User ", user.ID, " (", user.PhoneNo, ") isAdmin=", user.IsAdmin)
}

// GrantAdminCmd sets the admin flag of the user owning --phone
func (commandHandler *AdminCommandHandler) GrantAdminCmd(cmd *cobra.Command, _ []string) {
	commandHandler.setAdmin(cmd, true)
}

// RevokeAdminCmd clears the admin flag of the user owning --phone
func (commandHandler *AdminCommandHandler) RevokeAdminCmd(cmd *cobra.Command, _ []string) {
	commandHandler.setAdmin(cmd, false)
}

// InitAdminCommands registers the admin grant and revoke commands
func InitAdminCommands(rootCmd *cobra.Command) error {
	handler, err := NewAdminCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin command handler %w", err)
	}

	var adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Manage admin access",
	}

	var grantCmd = &cobra.Command{
		Use:   "grant",
		Short: "Grant admin access to a user",
		Run:   handler.GrantAdminCmd,
	}
	grantCmd.Flags().StringP("phone", "", "", "Phone number of the user")
	_ = grantCmd.MarkFlagRequired("phone")
	adminCmd.AddCommand(grantCmd)

	var revokeCmd = &cobra.Command{
		Use:   "revoke",
		Short: "Revoke admin access from a user",
		Run:   handler.RevokeAdminCmd,
	}
	revokeCmd.Flags().StringP("phone", "", "", "Phone number of the user")
	_ = revokeCmd.MarkFlagRequired("phone")
	adminCmd.AddCommand(revokeCmd)

	rootCmd.AddCommand(adminCmd)
	return nil
}
