package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealscout/dealscout/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "warning alias", input: "warning", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "uppercase accepted", input: "DEBUG", want: slog.LevelDebug},
		{name: "empty defaults to info", input: "", want: slog.LevelInfo},
		{name: "unknown defaults to info", input: "trace", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.ParseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	require.NotNil(t, logger.New("info", "text"))
}

func TestNewWithWriter_Formats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger.NewWithWriter(&buf, "info", "text").Info("hello")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "hello")

	buf.Reset()
	logger.NewWithWriter(&buf, "info", "json").Info("hello")
	assert.Contains(t, buf.String(), `"level":"INFO"`)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger.NewWithWriter(&buf, "warn", "text").Info("suppressed")
	assert.Empty(t, buf.String())

	logger.NewWithWriter(&buf, "debug", "text").Debug("visible")
	assert.NotEmpty(t, buf.String())
}

func TestNop(t *testing.T) {
	t.Parallel()

	l := logger.Nop()
	require.NotNil(t, l)
	l.Error("goes nowhere")
}
