//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
		wantErr  bool
		logFile  bool
	}{
		{
			name:     "console logger",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole},
		},
		{
			name: "file logger with rotation",
			settings: &config.LoggerSettings{
				LogLevel:   config.LogLevelInfo,
				LogType:    config.LogTypeFile,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
			logFile: true,
		},
		{
			name:     "invalid log level",
			settings: &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole},
			wantErr:  true,
		},
		{
			name:     "unsupported log type",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			if tt.logFile {
				tt.settings.FilePath = filepath.Join(t.TempDir(), "app.log")
			}

			err := InitLogger(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				l, getErr := GetLogger()
				assert.Error(t, getErr)
				assert.Nil(t, l)
				return
			}

			require.NoError(t, err)
			l, err := GetLogger()
			require.NoError(t, err)

			if tt.logFile {
				l.Info("report delivered", "report_id", "abc")
				content, err := os.ReadFile(tt.settings.FilePath)
				require.NoError(t, err)
				assert.Contains(t, string(content), `"report_id":"abc"`)
			}
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	l, err := GetLogger()
	assert.Error(t, err)
	assert.Nil(t, l)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestInitLogger_Idempotent(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole}))

	first, _ := GetLogger()
	second, _ := GetLogger()
	assert.Same(t, first, second)
}

func TestSlogLogger_KeyValueAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := newTextLogger(&buf, config.LogLevelDebug)

	l.Info("payment recorded", "payment_id", "pi_123", "amount_cents", 49500)
	l.Debug("odd args are joined", "dangling")
	l.Warn(42, "not a message")

	out := buf.String()
	assert.Contains(t, out, `msg="payment recorded"`)
	assert.Contains(t, out, "payment_id=pi_123")
	assert.Contains(t, out, "amount_cents=49500")
	assert.Contains(t, out, "odd args are joineddangling")
	assert.Contains(t, out, "level=WARN")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newTextLogger(&buf, config.LogLevelWarning)

	l.Info("hidden")
	l.Error("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSlogLogger_Panic(t *testing.T) {
	l := newTextLogger(&bytes.Buffer{}, config.LogLevelInfo)
	assert.PanicsWithValue(t, "boom", func() { l.Panic("boom") })
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}
