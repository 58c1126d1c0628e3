// Package csv reads transaction events from csv input shaped
// `type,client,tx,amount`, with the amount column present only for deposits
// and withdrawals.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/interfaces"
	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

// Listener is an EventSource over a csv stream. Rows may omit the amount
// column, surrounding whitespace is tolerated, and a leading header row is
// skipped. A malformed row yields an IngestError and the stream continues.
type Listener struct {
	reader    *csv.Reader
	record    int
	sawHeader bool
}

func NewListener(r io.Reader) *Listener {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return &Listener{reader: reader}
}

// Next returns the next event, io.EOF at end of input, or an IngestError for
// a row that could not be parsed.
func (l *Listener) Next(ctx context.Context) (models.TransactionEvent, error) {
	for {
		row, err := l.reader.Read()
		if err == io.EOF {
			return models.TransactionEvent{}, io.EOF
		}
		l.record++
		if err != nil {
			return models.TransactionEvent{}, &interfaces.IngestError{Record: l.record, Err: err}
		}
		if !l.sawHeader {
			l.sawHeader = true
			if isHeader(row) {
				continue
			}
		}
		event, err := parseRow(row)
		if err != nil {
			return models.TransactionEvent{}, &interfaces.IngestError{Record: l.record, Err: err}
		}
		return event, nil
	}
}

var _ interfaces.EventSource = (*Listener)(nil)

// FileListener is a Listener over an opened file.
type FileListener struct {
	*Listener
	file *os.File
}

// OpenFile opens path and returns a listener over its contents.
func OpenFile(path string) (*FileListener, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening event file: %w", err)
	}
	return &FileListener{Listener: NewListener(file), file: file}, nil
}

func (f *FileListener) Close() error {
	return f.file.Close()
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "type")
}

func parseRow(row []string) (models.TransactionEvent, error) {
	if len(row) < 3 {
		return models.TransactionEvent{}, fmt.Errorf("expected at least 3 fields, got %d", len(row))
	}

	kind, err := models.ParseTransactionKind(row[0])
	if err != nil {
		return models.TransactionEvent{}, err
	}

	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return models.TransactionEvent{}, fmt.Errorf("invalid client id %q: %w", row[1], err)
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return models.TransactionEvent{}, fmt.Errorf("invalid transaction id %q: %w", row[2], err)
	}

	event := models.TransactionEvent{
		AccountID: uint16(client),
		TxID:      uint32(tx),
		Kind:      kind,
	}

	if len(row) > 3 {
		if raw := strings.TrimSpace(row[3]); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return models.TransactionEvent{}, fmt.Errorf("invalid amount %q: %w", row[3], err)
			}
			event.Amount = &amount
		}
	}

	return event, nil
}
