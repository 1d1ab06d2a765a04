//go:build unit || integration
// +build unit integration

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/craneintel/crane-intelligence/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// writeRestConfig writes a REST config backed by a SQLite file in a temp dir
func writeRestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	content := `
environment: development
database:
  type: sqlite
  dsn: "` + filepath.Join(dir, "crane.db") + `"
logger:
  log_level: error
  log_type: console
spaces:
  key: spaces-key
  secret: spaces-secret
  bucket: crane-uploads
stripe:
  webhook_secret: whsec_test
auth:
  jwt_secret: 0123456789abcdef0123456789abcdef
`
	path := filepath.Join(dir, "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func runServiceCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "crane-intel-cli", SilenceUsage: true, SilenceErrors: true}
	AddConfigFlags(rootCmd)
	initServiceCommands(rootCmd, &ServiceCommandHandler{logger: testutil.SetupTestLogger(t)})

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}
