package commands

import (
	"fmt"

	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the configuration named by the persistent --config flag
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	return config.InitializeRestConfig(path)
}

// openDatabase loads the configuration and connects to its database
func openDatabase(cmd *cobra.Command) (*gorm.DB, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	return db, nil
}
