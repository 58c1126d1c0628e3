package dispatch

import (
	"go.uber.org/zap"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/interfaces"
)

// LoggingErrorSink reports recovered errors to a zap logger. It is the
// default error sink when none is configured.
type LoggingErrorSink struct {
	log *zap.Logger
}

func NewLoggingErrorSink(log *zap.Logger) *LoggingErrorSink {
	return &LoggingErrorSink{log: log}
}

func (s *LoggingErrorSink) Report(err error) {
	s.log.Warn("event dropped", zap.Error(err))
}

var _ interfaces.ErrorSink = (*LoggingErrorSink)(nil)
