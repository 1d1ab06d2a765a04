package commands

import (
	"fmt"

	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const (
	opsConfigFlag  = "config"
	restConfigFlag = "rest-config"
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

// AddConfigFlags registers the config file flags shared by every command
func AddConfigFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(opsConfigFlag, "configs/ops.yaml", "Path to the ops configuration file")
	rootCmd.PersistentFlags().String(restConfigFlag, "configs/rest-app.yaml", "Path to the REST service configuration file")
}

func loadOpsConfig(cmd *cobra.Command) (*config.OpsConfig, error) {
	path, err := cmd.Flags().GetString(opsConfigFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", opsConfigFlag, err)
	}
	return config.InitializeOpsConfig(path)
}

func loadRestConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := cmd.Flags().GetString(restConfigFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", restConfigFlag, err)
	}
	return config.InitializeRestConfig(path)
}
