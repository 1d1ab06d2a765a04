package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// OpsCommandHandler wires DatabaseOps to the backup, restore, sync and restart commands
type OpsCommandHandler struct {
	runner CommandRunner
}

// NewOpsCommandHandler creates an OpsCommandHandler running external programs with runner
func NewOpsCommandHandler(runner CommandRunner) *OpsCommandHandler {
	return &OpsCommandHandler{runner: runner}
}

func (handler *OpsCommandHandler) databaseOps(cmd *cobra.Command) (*DatabaseOps, error) {
	cfg, err := loadOpsConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := setupLogger()
	if err != nil {
		return nil, err
	}
	return NewDatabaseOps(cfg, handler.runner, cmd.OutOrStdout(), log), nil
}

// BackupCmd dumps the database of one environment
func (handler *OpsCommandHandler) BackupCmd(cmd *cobra.Command, args []string) error {
	ops, err := handler.databaseOps(cmd)
	if err != nil {
		return err
	}
	_, err = ops.Backup(cmd.Context(), args[0])
	return err
}

// RestoreCmd restores a dump into one environment
func (handler *OpsCommandHandler) RestoreCmd(cmd *cobra.Command, args []string) error {
	ops, err := handler.databaseOps(cmd)
	if err != nil {
		return err
	}
	return ops.Restore(cmd.Context(), args[0], args[1])
}

// SyncCmd copies one environment's database into another
func (handler *OpsCommandHandler) SyncCmd(cmd *cobra.Command, args []string) error {
	ops, err := handler.databaseOps(cmd)
	if err != nil {
		return err
	}
	return ops.Sync(cmd.Context(), args[0], args[1])
}

// RestartCmd restarts the backend service and waits for its health check
func (handler *OpsCommandHandler) RestartCmd(cmd *cobra.Command, args []string) error {
	wait, err := cmd.Flags().GetDuration("wait")
	if err != nil {
		return fmt.Errorf("invalid wait flag: %w", err)
	}

	ops, err := handler.databaseOps(cmd)
	if err != nil {
		return err
	}
	return ops.Restart(cmd.Context(), args[0], wait)
}

// InitOpsCommands registers the database and deployment commands
func InitOpsCommands(rootCmd *cobra.Command, runner CommandRunner) error {
	handler := NewOpsCommandHandler(runner)

	backupCmd := &cobra.Command{
		Use:   "backup <environment>",
		Short: "Dump the database of an environment into the backup directory",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.BackupCmd,
	}

	restoreCmd := &cobra.Command{
		Use:   "restore <environment> <file>",
		Short: "Restore a dump into an environment after taking a safety backup",
		Args:  cobra.ExactArgs(2),
		RunE:  handler.RestoreCmd,
	}

	syncCmd := &cobra.Command{
		Use:   "sync <from> <to>",
		Short: "Copy the database of one environment into another (never into production)",
		Args:  cobra.ExactArgs(2),
		RunE:  handler.SyncCmd,
	}

	restartCmd := &cobra.Command{
		Use:   "restart <environment>",
		Short: "Restart the backend service and wait until it is healthy",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.RestartCmd,
	}
	restartCmd.Flags().Duration("wait", 60*time.Second, "How long to wait for the health check")

	rootCmd.AddCommand(backupCmd, restoreCmd, syncCmd, restartCmd)
	return nil
}
