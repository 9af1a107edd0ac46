package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/firetree/pkg/logger"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	assert.Empty(t, buf.String(), "debug is below the default level")

	log.Info("visible", slog.String("k", "v"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record), "default format is JSON")
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "v", record["k"])
}

func TestNewTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
	)

	log.Debug("dbg")
	assert.Contains(t, buf.String(), "msg=dbg")
}

func TestNewStaticAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("component", "firetree")),
	)

	log.Info("with attrs")
	assert.Contains(t, buf.String(), `"component":"firetree"`)
}

func TestWithFormatPanicsOnUnknown(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("yaml")))
	})
}

func TestNoop(t *testing.T) {
	t.Parallel()

	log := logger.Noop()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(t.Context(), slog.LevelError))

	// Must not panic even for high-severity records.
	log.Error("dropped", slog.String("k", strings.Repeat("v", 10)))
}
