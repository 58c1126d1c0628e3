package ledger

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

// Ledger is an in-memory keyed store of aggregates. A single mutex serializes
// every mutation and every snapshot read across the whole store, so no
// transaction can ever be observed half-applied and AllSnapshots is a
// consistent view. The store is fed by one ordered event stream, so the
// coarse lock costs nothing in practice.
type Ledger[ID cmp.Ordered, TxID any, E any, S any, A Aggregate[ID, TxID, E, S]] struct {
	mu           sync.Mutex
	accounts     map[ID]A
	newAggregate func(txID TxID, data E) A
}

// NewLedger creates an empty store. The factory builds an aggregate from the
// first event seen for a previously unknown identity.
func NewLedger[ID cmp.Ordered, TxID any, E any, S any, A Aggregate[ID, TxID, E, S]](factory func(txID TxID, data E) A) *Ledger[ID, TxID, E, S, A] {
	return &Ledger[ID, TxID, E, S, A]{
		accounts:     make(map[ID]A),
		newAggregate: factory,
	}
}

// ProcessTransaction applies one event to the aggregate identified by id,
// creating it from this event if it does not exist yet. A business-rule error
// from the aggregate is returned to the caller, but the aggregate stays at
// its last valid state and the store keeps serving subsequent transactions.
func (l *Ledger[ID, TxID, E, S, A]) ProcessTransaction(ctx context.Context, id ID, txID TxID, data E) (ID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if account, ok := l.accounts[id]; ok {
		if err := account.ApplyTransaction(txID, data); err != nil {
			return id, err
		}
		return id, nil
	}

	l.accounts[id] = l.newAggregate(txID, data)
	return id, nil
}

// Snapshot returns a point-in-time view of a single aggregate.
func (l *Ledger[ID, TxID, E, S, A]) Snapshot(ctx context.Context, id ID) (S, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[id]
	if !ok {
		var zero S
		return zero, fmt.Errorf("account %v: %w", id, ErrAccountNotFound)
	}
	return account.Snapshot(id), nil
}

// AllSnapshots returns a consistent view across every known aggregate,
// ordered by identity so repeated runs produce identical output.
func (l *Ledger[ID, TxID, E, S, A]) AllSnapshots(ctx context.Context) ([]S, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make([]ID, 0, len(l.accounts))
	for id := range l.accounts {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	snapshots := make([]S, 0, len(ids))
	for _, id := range ids {
		snapshots = append(snapshots, l.accounts[id].Snapshot(id))
	}
	return snapshots, nil
}

// AccountLedger is the specialization the dispatch pipeline runs against.
type AccountLedger = Ledger[uint16, uint32, models.TransactionEvent, models.AccountSnapshot, *Account]

// NewAccountLedger creates an empty store of client accounts.
func NewAccountLedger() *AccountLedger {
	return NewLedger[uint16, uint32, models.TransactionEvent, models.AccountSnapshot](NewAccount)
}
