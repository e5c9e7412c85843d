package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestNewSlog(t *testing.T) {
	logger, _ := newBufferLogger(slog.LevelDebug)

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestSlogLogger_Levels(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelDebug)

	logger.Debug("debug message", "grouping", "course-1")
	logger.Info("info message", "policy", "RD")
	logger.Warn("warn message", "state", "Locked")
	logger.Error("error message", "error", "boom")

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "grouping=course-1")
	assert.Contains(t, output, "level=DEBUG")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "policy=RD")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "state=Locked")
	assert.Contains(t, output, "error message")
	assert.Contains(t, output, "error=boom")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")

	logger.Warn("warn message")
	logger.Error("error message")

	output = buf.String()
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}
