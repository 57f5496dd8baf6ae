package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultIsUsableBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("not initialized")
		InfoCtx(context.Background(), "not initialized")
	})
}

func TestInitialize(t *testing.T) {
	prev := log
	t.Cleanup(func() { log = prev })

	require.NoError(t, Initialize(Config{Debug: true, Service: "test"}))
	assert.True(t, Default().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Initialize(Config{}))
	assert.False(t, Default().Core().Enabled(zap.DebugLevel))
}

func TestWithFields(t *testing.T) {
	prev := log
	t.Cleanup(func() { log = prev })

	core, logs := observer.New(zap.DebugLevel)
	log = zap.New(core)

	ctx := WithFields(context.Background(), zap.String("request_id", "r-1"))
	ctx = WithFields(ctx, zap.String("caller", "0xaa"))
	InfoCtx(ctx, "committed", zap.String("operation", "stake"))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "r-1", fields["request_id"])
	assert.Equal(t, "0xaa", fields["caller"])
	assert.Equal(t, "stake", fields["operation"])
}
