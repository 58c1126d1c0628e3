package csv

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/interfaces"
	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

func collect(t *testing.T, l *Listener) ([]models.TransactionEvent, []error) {
	t.Helper()
	var events []models.TransactionEvent
	var errs []error
	for {
		event, err := l.Next(context.Background())
		if err == io.EOF {
			return events, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		events = append(events, event)
	}
}

func TestListenerParsesFlexibleInput(t *testing.T) {
	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,56",
		"chargeback,1,2",
		"withdrawal, 1, 3, 12.004",
		"dispute,3,96",
	}, "\n")

	events, errs := collect(t, NewListener(strings.NewReader(input)))
	require.Empty(t, errs)
	require.Len(t, events, 4)

	assert.Equal(t, models.KindDeposit, events[0].Kind)
	assert.Equal(t, uint16(1), events[0].AccountID)
	assert.Equal(t, uint32(1), events[0].TxID)
	require.NotNil(t, events[0].Amount)
	assert.True(t, events[0].Amount.Equal(decimal.RequireFromString("56")))

	assert.Equal(t, models.KindChargeback, events[1].Kind)
	assert.Nil(t, events[1].Amount)

	assert.Equal(t, models.KindWithdrawal, events[2].Kind)
	require.NotNil(t, events[2].Amount)
	assert.True(t, events[2].Amount.Equal(decimal.RequireFromString("12.004")))

	assert.Equal(t, models.KindDispute, events[3].Kind)
	assert.Equal(t, uint16(3), events[3].AccountID)
	assert.Equal(t, uint32(96), events[3].TxID)
}

func TestListenerWithoutHeaderRow(t *testing.T) {
	events, errs := collect(t, NewListener(strings.NewReader("deposit,1,1,56\n")))
	require.Empty(t, errs)
	require.Len(t, events, 1)
	assert.Equal(t, models.KindDeposit, events[0].Kind)
}

func TestListenerSkipsMalformedRecords(t *testing.T) {
	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,56",
		"refund,1,2,10",
		"deposit,not-a-client,3,10",
		"deposit,1,4,ten",
		"deposit,1",
		"withdrawal,1,5,6",
	}, "\n")

	events, errs := collect(t, NewListener(strings.NewReader(input)))

	require.Len(t, events, 2)
	assert.Equal(t, uint32(1), events[0].TxID)
	assert.Equal(t, uint32(5), events[1].TxID)

	require.Len(t, errs, 4)
	for _, err := range errs {
		var ingest *interfaces.IngestError
		assert.ErrorAs(t, err, &ingest)
	}
}

func TestListenerEmptyInput(t *testing.T) {
	events, errs := collect(t, NewListener(strings.NewReader("")))
	assert.Empty(t, events)
	assert.Empty(t, errs)
}

func TestListenerAmountRequiredKindsLeaveValidationToLedger(t *testing.T) {
	// a deposit without an amount parses fine; rejecting it is the ledger's job
	events, errs := collect(t, NewListener(strings.NewReader("deposit,1,1\n")))
	require.Empty(t, errs)
	require.Len(t, events, 1)
	assert.Nil(t, events[0].Amount)
}
