package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"WebDev/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetLogLevel(t *testing.T) {
	level, err := getLogLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level)

	_, err = getLogLevel("verbose")
	assert.EqualError(t, err, "invalid log level: verbose")
}

func TestInit_Disabled(t *testing.T) {
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	cfg := config.GetDefaultConfig()
	cfg.Logs.Enabled = false
	require.NoError(t, Init(cfg))

	assert.False(t, Log.Core().Enabled(zapcore.FatalLevel))
}

func TestInit_WritesRotatedFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	dir := t.TempDir()
	cfg := config.GetDefaultConfig()
	cfg.AppName = "Sample"
	cfg.Logs.FilePath = dir
	cfg.Logs.Stdout = false
	cfg.Logs.Format = "json"

	require.NoError(t, Init(cfg))
	Info("hello", String("k", "v"))
	_ = Sync()

	data, err := os.ReadFile(filepath.Join(dir, "sample.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"app":"Sample"`)
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	Warn("careful", Bool("flag", true))
	Error("failed", Err(assert.AnError))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "careful", logs.All()[0].Message)
	assert.Equal(t, true, logs.All()[0].ContextMap()["flag"])
	assert.Equal(t, assert.AnError.Error(), logs.All()[1].ContextMap()["error"])
}

func TestSetConsole(t *testing.T) {
	t.Cleanup(func() {
		SetConsole(zapcore.AddSync(os.Stdout))
		SetLogger(zap.NewNop())
	})

	var buf bytes.Buffer
	SetConsole(zapcore.AddSync(&buf))

	cfg := config.GetDefaultConfig()
	require.NoError(t, Init(cfg))
	Info("redirected")

	assert.Contains(t, buf.String(), "redirected")
}
