package interfaces

import (
	"context"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

// SnapshotSink receives account snapshots from the dispatch pipeline, either
// one batch at end of stream or one account at a time, depending on the
// configured emission policy.
type SnapshotSink interface {
	Write(ctx context.Context, snapshots []models.AccountSnapshot) error
}

// ErrorSink receives the non-fatal errors the pipeline recovers from: ledger
// business-rule rejections and ingest errors.
type ErrorSink interface {
	Report(err error)
}
