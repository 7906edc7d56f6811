package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONUsesZerolog(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "debug", Format: FormatJSON, Output: &buf})

	log.With("component", "api").Info(context.Background(), "request sent", "status", 200)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "request sent", line["message"])
	assert.Equal(t, "api", line["component"])
	assert.EqualValues(t, 200, line["status"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Format: FormatJSON, Output: &buf})

	log.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	log.Warn(context.Background(), "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_TextUsesSlog(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Format: FormatText, Output: &buf})

	_, ok := log.(*SlogLogger)
	require.True(t, ok)

	log.Error(context.Background(), "boom", "k", "v")
	assert.Contains(t, buf.String(), "msg=boom")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNew_DefaultIsConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf})

	_, ok := log.(*ZerologLogger)
	require.True(t, ok)

	log.Info(context.Background(), "pretty")
	assert.Contains(t, buf.String(), "pretty")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := Nop()
	ctx := context.TODO()
	log.Debug(ctx, "x")
	log.With("a", 1).Error(ctx, "y")
}
