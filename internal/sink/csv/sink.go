// Package csv writes account snapshots as csv rows shaped
// `client,available,held,total,locked`.
package csv

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/interfaces"
	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

// Sink writes snapshots to a csv stream. The header is written exactly once,
// tracked by an explicit first-write flag, so per-event emission across many
// Write calls still frames a single valid csv document.
type Sink struct {
	writer      *csv.Writer
	wroteHeader bool
}

func NewSink(w io.Writer) *Sink {
	return &Sink{writer: csv.NewWriter(w)}
}

func (s *Sink) Write(ctx context.Context, snapshots []models.AccountSnapshot) error {
	if !s.wroteHeader {
		if err := s.writer.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
			return err
		}
		s.wroteHeader = true
	}

	for _, snapshot := range snapshots {
		row := []string{
			strconv.FormatUint(uint64(snapshot.AccountID), 10),
			snapshot.Available.String(),
			snapshot.Held.String(),
			snapshot.Total.String(),
			strconv.FormatBool(snapshot.Locked),
		}
		if err := s.writer.Write(row); err != nil {
			return err
		}
	}

	s.writer.Flush()
	return s.writer.Error()
}

var _ interfaces.SnapshotSink = (*Sink)(nil)
