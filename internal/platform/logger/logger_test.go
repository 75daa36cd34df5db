package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"":        Info,
		"INFO":    Info,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat(" JSON "))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core)).With(map[string]any{"component": "test"})

	l.Warn("adoption notification failed", map[string]any{
		"pet_id": int64(3),
		"err":    errors.New("boom"),
		"":       "ignored",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, zapcore.WarnLevel, e.Level)
	assert.Equal(t, "adoption notification failed", e.Message)

	ctx := e.ContextMap()
	assert.Equal(t, "test", ctx["component"])
	assert.Equal(t, int64(3), ctx["pet_id"])
	assert.Equal(t, "boom", ctx["err"])
	assert.NotContains(t, ctx, "")
}

func TestZapLogger_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewFromZap(zap.New(core))

	l.Debug("hidden", nil)
	l.Info("shown", nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop().With(map[string]any{"a": 1})
	l.Error("nothing", map[string]any{"b": 2})
}
