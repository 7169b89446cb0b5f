package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Environments(t *testing.T) {
	for _, env := range []string{"prod", "local", "dev", "test"} {
		t.Run(env, func(t *testing.T) {
			l, err := NewLogger(env, "")
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNewLogger_UnknownEnv(t *testing.T) {
	_, err := NewLogger("staging", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging")
}

func TestNewLogger_LevelOverride(t *testing.T) {
	l, err := NewLogger("prod", "warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger("prod", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	inCtx := zap.New(core)
	ctx := ContextWithLogger(context.Background(), inCtx)

	FromContext(ctx, zap.NewNop()).Info("from context")
	assert.Equal(t, 1, logs.Len())
}

func TestFromContext_Fallback(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	fallback := zap.New(core)

	FromContext(context.Background(), fallback).Info("fallback")
	assert.Equal(t, 1, logs.Len())
}

func TestFromContext_NopWhenNothingSet(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background(), nil))
}
