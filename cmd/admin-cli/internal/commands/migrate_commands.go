package commands

import (
	"fmt"

	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler applies the schema to the configured database.
type MigrateCommandHandler struct {
	logger logger.Logger
}

// NewMigrateCommandHandler creates a MigrateCommandHandler
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &MigrateCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd runs the schema migrations
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) {
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

	if err := persistence.Migrate(db); err != nil {
		commandHandler.logger.Error("failed to migrate schema: ", err)
		return
	}
	commandHandler.logger.Info("Database migrations completed successfully")
}

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrateCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create migrate command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run:   handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
