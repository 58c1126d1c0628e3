package dispatch

import (
	"context"
	"errors"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/interfaces"
	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

// MultiSink fans one emission out to several sinks. Every sink is attempted
// even if an earlier one fails; the failures are joined.
type MultiSink []interfaces.SnapshotSink

func (m MultiSink) Write(ctx context.Context, snapshots []models.AccountSnapshot) error {
	var errs []error
	for _, sink := range m {
		if err := sink.Write(ctx, snapshots); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ interfaces.SnapshotSink = (MultiSink)(nil)
