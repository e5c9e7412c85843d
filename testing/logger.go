package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/t73fde/grpy/types"
)

// NewTestLogger creates a new logger instance that writes to the testing.T
// logger. Key-value pairs are rendered as key=value, matching the shape of
// the library's slog output, so test logs read like production logs.
func NewTestLogger(t *testing.T) types.Logger {
	return &testLogger{t: t}
}

type testLogger struct {
	t *testing.T
}

var _ types.Logger = (*testLogger)(nil)

// formatLine renders one log line: "LEVEL msg key=value ...". A trailing key
// without a value is rendered as key=(missing).
func formatLine(level, msg string, keysAndValues []any) string {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(msg)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, " %v=(missing)", keysAndValues[i])
		}
	}

	return b.String()
}

func (l *testLogger) Debug(msg string, keysAndValues ...any) {
	l.t.Log(formatLine("DEBUG", msg, keysAndValues))
}

func (l *testLogger) Info(msg string, keysAndValues ...any) {
	l.t.Log(formatLine("INFO", msg, keysAndValues))
}

func (l *testLogger) Warn(msg string, keysAndValues ...any) {
	l.t.Log(formatLine("WARN", msg, keysAndValues))
}

func (l *testLogger) Error(msg string, keysAndValues ...any) {
	l.t.Log(formatLine("ERROR", msg, keysAndValues))
}

func (l *testLogger) Fatal(msg string, keysAndValues ...any) {
	l.t.Fatal(formatLine("FATAL", msg, keysAndValues))
}
