package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionKind enumerates the event types the ledger understands.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindDispute    TransactionKind = "dispute"
	KindResolve    TransactionKind = "resolve"
	KindChargeback TransactionKind = "chargeback"
)

// ParseTransactionKind maps a wire-format type string to a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDeposit:
		return KindDeposit, nil
	case KindWithdrawal:
		return KindWithdrawal, nil
	case KindDispute:
		return KindDispute, nil
	case KindResolve:
		return KindResolve, nil
	case KindChargeback:
		return KindChargeback, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// RequiresAmount reports whether events of this kind must carry an amount.
// Dispute, resolve and chargeback reference an earlier transaction instead.
func (k TransactionKind) RequiresAmount() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// TransactionEvent is a single incoming event for one account.
// Amount is present only for deposits and withdrawals.
type TransactionEvent struct {
	AccountID uint16           `json:"client"`
	TxID      uint32           `json:"tx"`
	Kind      TransactionKind  `json:"type"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
}

// Balance holds the funds of a single account, split between the amount
// freely available and the amount held pending dispute resolution.
type Balance struct {
	Available decimal.Decimal
	Held      decimal.Decimal
}

// NewBalance returns a Balance with the given available funds and nothing held.
func NewBalance(available decimal.Decimal) Balance {
	return Balance{Available: available}
}

// Total is the sum of available and held funds. It is derived, never stored.
func (b Balance) Total() decimal.Decimal {
	return b.Available.Add(b.Held)
}
