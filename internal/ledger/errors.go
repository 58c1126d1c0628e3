package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrAccountNotFound is returned by snapshot reads for an account the ledger
// has never seen.
var ErrAccountNotFound = errors.New("account not found")

// LockedAccountError rejects any event that arrives after a chargeback
// locked the account.
type LockedAccountError struct {
	TxID uint32
}

func (e *LockedAccountError) Error() string {
	return fmt.Sprintf("transaction %d ignored: account is locked", e.TxID)
}

// TransactionNotFoundError rejects a dispute, resolve or chargeback that
// references a transaction id the account never recorded.
type TransactionNotFoundError struct {
	TxID uint32
}

func (e *TransactionNotFoundError) Error() string {
	return fmt.Sprintf("failed to look up transaction %d", e.TxID)
}

// InsufficientFundsError rejects a withdrawal or dispute that exceeds the
// account's available funds.
type InsufficientFundsError struct {
	Available decimal.Decimal
	Amount    decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: available %s, transaction amount %s", e.Available, e.Amount)
}

// DisputedTransactionError rejects a dispute on an already-disputed
// transaction, or a resolve/chargeback on a transaction that is not disputed.
type DisputedTransactionError struct {
	TxID uint32
}

func (e *DisputedTransactionError) Error() string {
	return fmt.Sprintf("transaction %d is in the wrong dispute state", e.TxID)
}

// SuspiciousTransactionError rejects a deposit or withdrawal whose
// transaction id is not strictly greater than the highest id already applied.
type SuspiciousTransactionError struct {
	TxID uint32
}

func (e *SuspiciousTransactionError) Error() string {
	return fmt.Sprintf("transaction id %d is not greater than previously recorded", e.TxID)
}

// MissingAmountError rejects a deposit or withdrawal without an amount.
type MissingAmountError struct {
	TxID uint32
}

func (e *MissingAmountError) Error() string {
	return fmt.Sprintf("transaction %d is missing a required amount", e.TxID)
}
