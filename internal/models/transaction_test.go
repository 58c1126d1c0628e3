package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionKind(t *testing.T) {
	for raw, want := range map[string]TransactionKind{
		"deposit":    KindDeposit,
		"withdrawal": KindWithdrawal,
		"dispute":    KindDispute,
		"resolve":    KindResolve,
		"chargeback": KindChargeback,
		" Deposit ":  KindDeposit,
		"CHARGEBACK": KindChargeback,
	} {
		kind, err := ParseTransactionKind(raw)
		require.NoError(t, err, "parsing %q", raw)
		assert.Equal(t, want, kind)
	}

	for _, raw := range []string{"", "refund", "deposit!"} {
		_, err := ParseTransactionKind(raw)
		assert.Error(t, err, "parsing %q", raw)
	}
}

func TestRequiresAmount(t *testing.T) {
	assert.True(t, KindDeposit.RequiresAmount())
	assert.True(t, KindWithdrawal.RequiresAmount())
	assert.False(t, KindDispute.RequiresAmount())
	assert.False(t, KindResolve.RequiresAmount())
	assert.False(t, KindChargeback.RequiresAmount())
}

func TestBalanceTotal(t *testing.T) {
	balance := Balance{
		Available: decimal.RequireFromString("60702.514"),
		Held:      decimal.RequireFromString("752.56"),
	}
	assert.True(t, balance.Total().Equal(decimal.RequireFromString("61455.074")))

	funded := NewBalance(decimal.RequireFromString("12.3456"))
	assert.True(t, funded.Held.IsZero())
	assert.True(t, funded.Total().Equal(decimal.RequireFromString("12.3456")))
}
