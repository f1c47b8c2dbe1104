package logger

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Error":   slog.LevelError,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "%q", in)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, false)
	defer SetOutput(os.Stderr, false)
	defer SetLevel(slog.LevelWarn)

	SetLevel(slog.LevelWarn)
	Logger.Debug("hidden")
	assert.Empty(t, buf.String())

	SetLevel(slog.LevelDebug)
	Logger.Debug("shown", "off", 4)
	assert.Contains(t, buf.String(), "msg=shown off=4")

	buf.Reset()
	SetOutput(&buf, true)
	Logger.Debug("json")
	assert.Contains(t, buf.String(), `"msg":"json"`)
}
