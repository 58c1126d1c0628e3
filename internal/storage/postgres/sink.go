// Package postgres persists the latest snapshot per account.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/interfaces"
	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

// SnapshotSink upserts one row per account into account_snapshots. Each
// Write runs in a single db transaction so a batch emission lands atomically.
type SnapshotSink struct {
	db *sql.DB
}

func NewSnapshotSink(db *sql.DB) *SnapshotSink {
	return &SnapshotSink{db: db}
}

// Open connects to postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return db, nil
}

func (p *SnapshotSink) Write(ctx context.Context, snapshots []models.AccountSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	const query = `INSERT INTO account_snapshots (account_id, available, held, total, locked)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (account_id) DO UPDATE
	SET available = EXCLUDED.available,
	    held = EXCLUDED.held,
	    total = EXCLUDED.total,
	    locked = EXCLUDED.locked`

	for _, snapshot := range snapshots {
		if _, err = dbTx.ExecContext(ctx, query,
			int64(snapshot.AccountID),
			snapshot.Available,
			snapshot.Held,
			snapshot.Total,
			snapshot.Locked,
		); err != nil {
			return err
		}
	}

	err = dbTx.Commit()
	return err
}

var _ interfaces.SnapshotSink = (*SnapshotSink)(nil)
