package testing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
	t.Run("renders key-value pairs", func(t *testing.T) {
		line := formatLine("INFO", "groups assigned", []any{"grouping", "course-1", "groups", 3})
		require.Equal(t, "INFO groups assigned grouping=course-1 groups=3", line)
	})

	t.Run("no pairs", func(t *testing.T) {
		line := formatLine("DEBUG", "running assignment", nil)
		require.Equal(t, "DEBUG running assignment", line)
	})

	t.Run("dangling key is marked", func(t *testing.T) {
		line := formatLine("WARN", "assignment rejected", []any{"grouping"})
		require.Equal(t, "WARN assignment rejected grouping=(missing)", line)
	})
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	require.NotNil(t, logger)

	logger.Debug("debug message", "grouping", "course-1")
	logger.Info("info message", "policy", "RD")
	logger.Warn("warn message", "state", "Locked")
	logger.Error("error message", "error", "boom")
}
