// Package main is the entry point for the admin-cli application.
// It registers the maintenance sub-commands (migrate, admin, payouts, otp)
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gauravkdm/admin-portal/cmd/admin-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "admin-cli",
		Short: "Maintenance CLI for the events admin API",
		Long: `admin-cli runs maintenance tasks against the events platform database.
It reads the same configuration as the REST API: the file given by --config
(or CONFIG_PATH) overridden by ADMIN_ prefixed environment variables.`,
	}
	rootCmd.PersistentFlags().String("config", os.Getenv("CONFIG_PATH"), "Path to the configuration file")

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	if err := commands.InitPayoutCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize payout commands: %w", err)
	}

	if err := commands.InitOTPCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize otp commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
