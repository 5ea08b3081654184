package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{ServiceName: "favorites-test", Level: "debug", Output: &buf})
	t.Cleanup(func() { Logger = zerolog.Nop() })

	ctx := ContextWithRequestID(context.Background(), "req-42")
	Info(ctx).Int64("client_id", 1).Msg("client created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "favorites-test", entry["service"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "client created", entry["message"])
	assert.NotContains(t, entry, "trace_id")
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{ServiceName: "favorites-test", Level: "warn", Output: &buf})
	t.Cleanup(func() { Logger = zerolog.Nop() })

	Debug(context.Background()).Msg("hidden")
	Info(context.Background()).Msg("hidden too")
	assert.Empty(t, buf.String())

	Warn(context.Background()).Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}
