package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

// Account is the concrete aggregate: one client's balance, the deposits and
// withdrawals it has recorded, the subset currently under dispute, and the
// lock set by a chargeback.
type Account struct {
	balance      models.Balance
	transactions map[uint32]models.TransactionEvent
	disputed     map[uint32]struct{}
	highestTxID  uint32
	locked       bool
}

// Compile-time check: Account satisfies the Aggregate contract.
var _ Aggregate[uint16, uint32, models.TransactionEvent, models.AccountSnapshot] = (*Account)(nil)

// NewAccount builds the initial state from the first event ever seen for this
// client. Construction never fails: an opening deposit funds the balance,
// anything else opens the account empty.
func NewAccount(txID uint32, data models.TransactionEvent) *Account {
	balance := models.Balance{}
	if data.Kind == models.KindDeposit && data.Amount != nil {
		balance = models.NewBalance(*data.Amount)
	}
	account := &Account{
		balance:      balance,
		transactions: make(map[uint32]models.TransactionEvent),
		disputed:     make(map[uint32]struct{}),
		highestTxID:  txID,
	}
	if data.Kind.RequiresAmount() && data.Amount != nil {
		account.recordTransaction(txID, data)
	}
	return account
}

// ApplyTransaction runs one event through the state machine. Preconditions
// are checked in order and the first failure aborts with no state change.
func (a *Account) ApplyTransaction(txID uint32, data models.TransactionEvent) error {
	if a.locked {
		return &LockedAccountError{TxID: txID}
	}

	switch data.Kind {
	case models.KindDeposit:
		if err := a.checkTxID(txID); err != nil {
			return err
		}
		amount, err := a.requireAmount(txID, data)
		if err != nil {
			return err
		}
		a.balance.Available = a.balance.Available.Add(amount)
		a.recordTransaction(txID, data)

	case models.KindWithdrawal:
		if err := a.checkTxID(txID); err != nil {
			return err
		}
		amount, err := a.requireAmount(txID, data)
		if err != nil {
			return err
		}
		if err := a.checkAvailable(amount); err != nil {
			return err
		}
		a.balance.Available = a.balance.Available.Sub(amount)
		a.recordTransaction(txID, data)

	case models.KindDispute:
		if err := a.checkDisputed(txID, false); err != nil {
			return err
		}
		tx, err := a.transaction(txID)
		if err != nil {
			return err
		}
		if tx.Amount != nil {
			if err := a.checkAvailable(*tx.Amount); err != nil {
				return err
			}
			a.balance.Available = a.balance.Available.Sub(*tx.Amount)
			a.balance.Held = a.balance.Held.Add(*tx.Amount)
			a.disputed[txID] = struct{}{}
		}

	case models.KindResolve:
		if err := a.checkDisputed(txID, true); err != nil {
			return err
		}
		tx, err := a.transaction(txID)
		if err != nil {
			return err
		}
		// Held below the disputed amount means the balance is corrupted;
		// release nothing rather than go negative.
		if tx.Amount != nil && a.balance.Held.GreaterThanOrEqual(*tx.Amount) {
			a.balance.Held = a.balance.Held.Sub(*tx.Amount)
			a.balance.Available = a.balance.Available.Add(*tx.Amount)
			delete(a.disputed, txID)
		}

	case models.KindChargeback:
		if err := a.checkDisputed(txID, true); err != nil {
			return err
		}
		tx, err := a.transaction(txID)
		if err != nil {
			return err
		}
		if tx.Amount != nil && a.balance.Held.GreaterThanOrEqual(*tx.Amount) {
			a.balance.Held = a.balance.Held.Sub(*tx.Amount)
			a.locked = true
			delete(a.disputed, txID)
		}

	default:
		return fmt.Errorf("unsupported transaction kind %q", data.Kind)
	}

	return nil
}

// Snapshot projects the current state, tagged with the owning client id.
func (a *Account) Snapshot(id uint16) models.AccountSnapshot {
	return models.AccountSnapshot{
		AccountID: id,
		Available: a.balance.Available,
		Held:      a.balance.Held,
		Total:     a.balance.Total(),
		Locked:    a.locked,
	}
}

func (a *Account) recordTransaction(txID uint32, data models.TransactionEvent) {
	a.transactions[txID] = data
	a.highestTxID = txID
}

func (a *Account) transaction(txID uint32) (models.TransactionEvent, error) {
	tx, ok := a.transactions[txID]
	if !ok {
		return models.TransactionEvent{}, &TransactionNotFoundError{TxID: txID}
	}
	return tx, nil
}

// checkTxID guards deposits and withdrawals against replayed or reordered
// transaction ids. Dispute-lifecycle events reference old ids and are exempt.
func (a *Account) checkTxID(txID uint32) error {
	if txID <= a.highestTxID {
		return &SuspiciousTransactionError{TxID: txID}
	}
	return nil
}

func (a *Account) requireAmount(txID uint32, data models.TransactionEvent) (decimal.Decimal, error) {
	if data.Amount == nil {
		return decimal.Decimal{}, &MissingAmountError{TxID: txID}
	}
	return *data.Amount, nil
}

func (a *Account) checkAvailable(amount decimal.Decimal) error {
	if a.balance.Available.LessThan(amount) {
		return &InsufficientFundsError{Available: a.balance.Available, Amount: amount}
	}
	return nil
}

func (a *Account) checkDisputed(txID uint32, expected bool) error {
	if _, disputed := a.disputed[txID]; disputed != expected {
		return &DisputedTransactionError{TxID: txID}
	}
	return nil
}
