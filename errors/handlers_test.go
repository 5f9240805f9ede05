package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	requestID := "test-request-id"

	LogError(logger, NewValidationError(requestID, MsgPromptRequired), requestID)
	LogError(logger, NewProviderError(requestID, errors.New("timeout")), requestID)
	LogError(logger, errors.New("plain"), requestID)

	entries := logs.All()
	if assert.Len(t, entries, 3) {
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, "request rejected", entries[0].Message)

		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
		assert.Equal(t, "provider_error", entries[1].ContextMap()["error_type"])
		assert.Equal(t, requestID, entries[1].ContextMap()["request_id"])

		assert.Equal(t, "unexpected error", entries[2].Message)
	}
}
