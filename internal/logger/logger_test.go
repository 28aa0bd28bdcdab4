package logger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/creatorchain/creatorchain/internal/logger"
)

func observe(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(logger.Replace(zap.New(core)))
	return logs
}

func TestFailOpenCtx(t *testing.T) {
	logs := observe(t)

	logger.FailOpenCtx(context.Background(), "Anti-bot validation failed", errors.New("db down"), zap.String("userID", "viewer-1"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "Anti-bot validation failed", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, true, fields["fail_open"])
	assert.Equal(t, "db down", fields["error"])
	assert.Equal(t, "viewer-1", fields["userID"])
}

func TestErrorUsesErrorAsMessage(t *testing.T) {
	logs := observe(t)

	logger.ErrorCtx(context.Background(), errors.New("failed to credit viewer"))
	logger.Error(nil, zap.String("component", "server"))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "failed to credit viewer", entries[0].Message)
	assert.Equal(t, "error occurred", entries[1].Message)
}

func TestInitializeWithoutSentry(t *testing.T) {
	t.Cleanup(logger.Replace(logger.Default()))

	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))
	assert.NotNil(t, logger.Default())
	logger.Flush(0)
}
