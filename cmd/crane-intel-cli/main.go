// Package main is the entry point for the crane-intel-cli application.
// It registers the database operations, maintenance and admin API commands and executes the CLI.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/craneintel/crane-intelligence/cmd/crane-intel-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crane-intel-cli",
		Short: "Operations CLI for the Crane Intelligence platform",
		Long: `crane-intel-cli runs operational tasks for the Crane Intelligence platform.
Database backup, restore and sync act on the Postgres containers of the docker compose
deployments listed in the ops configuration. Maintenance commands connect to the service
database and Spaces bucket using the REST service configuration. Admin commands talk to a
running deployment's admin API.

Passwords are read from the CRANE_ADMIN_PASSWORD environment variable.`,
		SilenceUsage: true,
	}
	commands.AddConfigFlags(rootCmd)

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
	if err := commands.InitOpsCommands(rootCmd, commands.ExecRunner{}); err != nil {
		return fmt.Errorf("failed to initialize ops commands: %w", err)
	}

	if err := commands.InitServiceCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize service commands: %w", err)
	}

	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}
