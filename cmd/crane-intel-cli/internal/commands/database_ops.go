package commands

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"
)

// ErrProductionHost is returned when a destructive command runs on a production machine
var ErrProductionHost = errors.New("refusing to run on a production host")

const maxBackupNameAttempts = 100

// DatabaseOps backs up, restores and syncs the Postgres databases of the compose deployments
type DatabaseOps struct {
	cfg        *config.OpsConfig
	runner     CommandRunner
	out        io.Writer
	logger     logger.Logger
	hostname   func() (string, error)
	now        func() time.Time
	httpClient *http.Client
}

// NewDatabaseOps creates DatabaseOps printing status lines to out
func NewDatabaseOps(cfg *config.OpsConfig, runner CommandRunner, out io.Writer, logger logger.Logger) *DatabaseOps {
	return &DatabaseOps{
		cfg:        cfg,
		runner:     runner,
		out:        out,
		logger:     logger,
		hostname:   os.Hostname,
		now:        time.Now,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (o *DatabaseOps) printf(format string, args ...interface{}) {
	fmt.Fprintf(o.out, format+"\n", args...)
}

func compose(target config.ComposeTarget, args ...string) []string {
	return append([]string{"compose", "-f", target.ComposeFile}, args...)
}

// ensureRunning fails unless the database service of target is up
func (o *DatabaseOps) ensureRunning(ctx context.Context, env string, target config.ComposeTarget) error {
	var out bytes.Buffer
	if err := o.runner.Run(ctx, nil, &out, "docker", compose(target, "ps", "--status", "running", "--services")...); err != nil {
		return fmt.Errorf("failed to query containers of %s: %w", env, err)
	}

	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == target.DBService {
			return nil
		}
	}
	return fmt.Errorf("database container %q of %s is not running", target.DBService, env)
}

func (o *DatabaseOps) refuseProductionHost() error {
	hostname, err := o.hostname()
	if err != nil {
		return fmt.Errorf("failed to determine hostname: %w", err)
	}
	if o.cfg.IsProductionHost(hostname) {
		return fmt.Errorf("%w: %s", ErrProductionHost, hostname)
	}
	return nil
}

// Backup dumps the database of env into the backup directory and returns the file path
func (o *DatabaseOps) Backup(ctx context.Context, env string) (string, error) {
	target, err := o.cfg.Target(env)
	if err != nil {
		return "", err
	}

	o.printf("Checking database container for %s...", env)
	if err := o.ensureRunning(ctx, env, target); err != nil {
		return "", err
	}

	if err := os.MkdirAll(o.cfg.BackupDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	file, path, err := o.createBackupFile(env)
	if err != nil {
		return "", err
	}

	o.printf("Dumping %s database %s...", env, target.DBName)
	dumpErr := o.runner.Run(ctx, nil, file, "docker",
		compose(target, "exec", "-T", target.DBService, "pg_dump", "-U", target.DBUser, "-d", target.DBName, "--clean", "--if-exists")...)
	closeErr := file.Close()

	if err := errors.Join(dumpErr, closeErr); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("backup of %s failed: %w", env, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat backup file: %w", err)
	}
	if info.Size() == 0 {
		_ = os.Remove(path)
		return "", fmt.Errorf("backup of %s produced an empty dump", env)
	}

	o.logger.Info("Database backup written", "environment", env, "path", path, "bytes", info.Size())
	o.printf("✓ Backup written to %s (%d bytes)", path, info.Size())
	return path, nil
}

// createBackupFile opens a new file named after env and the current second.
// Backups taken within the same second get a numeric suffix.
func (o *DatabaseOps) createBackupFile(env string) (*os.File, string, error) {
	stem := filepath.Join(o.cfg.BackupDir, fmt.Sprintf("%s_%s", env, o.now().UTC().Format("20060102_150405")))
	for attempt := 0; attempt < maxBackupNameAttempts; attempt++ {
		path := stem + ".sql"
		if attempt > 0 {
			path = fmt.Sprintf("%s_%d.sql", stem, attempt)
		}

		file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			return file, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("failed to create backup file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("failed to create backup file: %s.sql and %d suffixed names already exist", stem, maxBackupNameAttempts-1)
}

// Restore loads file into the database of env after taking a safety backup
func (o *DatabaseOps) Restore(ctx context.Context, env, file string) error {
	if err := o.refuseProductionHost(); err != nil {
		return err
	}

	target, err := o.cfg.Target(env)
	if err != nil {
		return err
	}

	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("backup file %s is not readable: %w", file, err)
	}

	o.printf("Taking a safety backup of %s before restoring...", env)
	safety, err := o.Backup(ctx, env)
	if err != nil {
		return fmt.Errorf("safety backup failed, nothing was restored: %w", err)
	}

	input, err := os.Open(filepath.Clean(file))
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer func() { _ = input.Close() }()

	o.printf("Restoring %s into %s database %s...", file, env, target.DBName)
	err = o.runner.Run(ctx, input, io.Discard, "docker",
		compose(target, "exec", "-T", target.DBService, "psql", "-U", target.DBUser, "-d", target.DBName, "-v", "ON_ERROR_STOP=1", "--quiet")...)
	if err != nil {
		o.logger.Error("Database restore failed", "environment", env, "file", file, "error", err)
		o.printf("✗ Restore failed. To roll back, run:")
		o.printf("    crane-intel-cli restore %s %s", env, safety)
		return fmt.Errorf("restore of %s failed, safety backup at %s: %w", env, safety, err)
	}

	o.logger.Info("Database restored", "environment", env, "file", file, "safety_backup", safety)
	o.printf("✓ Restored %s from %s (safety backup: %s)", env, file, safety)
	return nil
}

// Sync copies the database of from into to. Production is never a sync target.
func (o *DatabaseOps) Sync(ctx context.Context, from, to string) error {
	if from == to {
		return fmt.Errorf("source and target are both %s", from)
	}
	if to == config.EnvironmentProduction {
		return fmt.Errorf("refusing to sync into %s", config.EnvironmentProduction)
	}
	if err := o.refuseProductionHost(); err != nil {
		return err
	}

	o.printf("Syncing %s -> %s", from, to)
	dump, err := o.Backup(ctx, from)
	if err != nil {
		return err
	}

	if err := o.Restore(ctx, to, dump); err != nil {
		return err
	}

	o.printf("✓ Sync %s -> %s complete", from, to)
	return nil
}

// Restart restarts the backend service of env and waits until its health endpoint answers 200
func (o *DatabaseOps) Restart(ctx context.Context, env string, wait time.Duration) error {
	target, err := o.cfg.Target(env)
	if err != nil {
		return err
	}
	if target.BackendService == "" {
		return fmt.Errorf("no backend service configured for %s", env)
	}

	o.printf("Restarting %s backend service %s...", env, target.BackendService)
	if err := o.runner.Run(ctx, nil, io.Discard, "docker", compose(target, "restart", target.BackendService)...); err != nil {
		return fmt.Errorf("restart of %s failed: %w", env, err)
	}

	if target.HealthURL == "" {
		o.printf("✓ Restarted (no health URL configured)")
		return nil
	}

	return o.waitHealthy(ctx, target.HealthURL, wait)
}

func (o *DatabaseOps) waitHealthy(ctx context.Context, url string, wait time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		if o.healthy(ctx, url) {
			o.printf("✓ %s is healthy", url)
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s did not become healthy within %s", url, wait)
		case <-ticker.C:
		}
	}
}

func (o *DatabaseOps) healthy(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK
}
