package interfaces

import (
	"context"
	"fmt"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

// EventSource yields transaction events in source order. The sequence is
// lazy, possibly infinite and not restartable.
//
// Next returns io.EOF once the source is exhausted; that is the pipeline's
// normal termination signal, not a failure. Any other error describes a
// single bad record (see IngestError) and the stream remains usable.
type EventSource interface {
	Next(ctx context.Context) (models.TransactionEvent, error)
}

// IngestError is a malformed or unreadable input record. The dispatch
// pipeline reports it and moves on to the next record.
type IngestError struct {
	Record int
	Err    error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Record, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}
