package testutils

import (
	"io"

	"go.uber.org/zap/zapcore"

	"github.com/FilaCo/ads/pkg/logging"
)

// NewTestLogger creates a logger for tests that discards all output.
func NewTestLogger() logging.Logger {
	logging.InitLogger("debug", "dev", zapcore.AddSync(io.Discard))
	return logging.GetLogger()
}
