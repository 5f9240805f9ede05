package errors

import (
	"go.uber.org/zap"
)

// LogError logs an error with its context. Validation failures are logged
// at warn level, everything else at error level.
func LogError(logger *zap.Logger, err error, requestID string) {
	var gwErr *GatewayError
	if !As(err, &gwErr) {
		logger.Error("unexpected error",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		return
	}

	fields := []zap.Field{
		zap.String("error_type", string(gwErr.Type)),
		zap.String("message", gwErr.Message),
		zap.Int("code", gwErr.Code),
		zap.String("request_id", requestID),
	}
	if cause := gwErr.Unwrap(); cause != nil {
		fields = append(fields, zap.NamedError("cause", cause))
	}

	if gwErr.Type == ValidationError {
		logger.Warn("request rejected", fields...)
		return
	}
	logger.Error("request error", fields...)
}
