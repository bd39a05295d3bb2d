// File: internal/observability/logger_test.go
package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hollisng/reportforge/internal/config"
)

// testWriteSyncer captures log output for assertions.
type testWriteSyncer struct {
	strings.Builder
}

func (t *testWriteSyncer) Sync() error { return nil }

func TestInitialize_ConsoleFormat(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	ws := &testWriteSyncer{}
	Initialize(config.LoggerConfig{Level: "debug", Format: "console", ServiceName: "reportforge"}, ws)

	logger := GetLogger()
	require.NotNil(t, logger)
	logger.Info("hello from test", zap.String("key", "value"))

	out := ws.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "reportforge.")
	assert.Contains(t, out, "hello from test")
}

func TestInitialize_JSONFormat(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	ws := &testWriteSyncer{}
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "reportforge"}, ws)

	GetLogger().Info("structured entry")
	assert.Contains(t, ws.String(), `"msg":"structured entry"`)
}

func TestInitialize_OnlyOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	first := &testWriteSyncer{}
	second := &testWriteSyncer{}
	Initialize(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "a"}, first)
	Initialize(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "b"}, second)

	GetLogger().Info("routed to the first writer")
	assert.NotEmpty(t, first.String())
	assert.Empty(t, second.String())
}

func TestInitialize_InvalidLevelDefaultsToInfo(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	ws := &testWriteSyncer{}
	Initialize(config.LoggerConfig{Level: "shouting", Format: "console", ServiceName: "reportforge"}, ws)

	GetLogger().Debug("below the fallback level")
	GetLogger().Info("at the fallback level")

	out := ws.String()
	assert.NotContains(t, out, "below the fallback level")
	assert.Contains(t, out, "at the fallback level")
}

func TestGetLogger_FallbackBeforeInit(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	logger := GetLogger()
	require.NotNil(t, logger)
	// The fallback must be usable even though Initialize never ran.
	logger.Debug("fallback logger is alive")
}

func TestSync_NoLogger(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)
	// Must not panic with no logger installed.
	Sync()
}

var _ zapcore.WriteSyncer = (*testWriteSyncer)(nil)
