package csv

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

func snapshot(client uint16, available, held string, locked bool) models.AccountSnapshot {
	a := decimal.RequireFromString(available)
	h := decimal.RequireFromString(held)
	return models.AccountSnapshot{
		AccountID: client,
		Available: a,
		Held:      h,
		Total:     a.Add(h),
		Locked:    locked,
	}
}

func TestSinkWritesHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)

	err := sink.Write(context.Background(), []models.AccountSnapshot{
		snapshot(1, "60702.514", "752.56", false),
		snapshot(3, "8328.446", "0", true),
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "client,available,held,total,locked", lines[0])
	assert.Equal(t, "1,60702.514,752.56,61455.074,false", lines[1])
	assert.Equal(t, "3,8328.446,0,8328.446,true", lines[2])
}

func TestSinkWritesHeaderOnlyOnce(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	ctx := context.Background()

	require.NoError(t, sink.Write(ctx, []models.AccountSnapshot{snapshot(1, "10", "0", false)}))
	require.NoError(t, sink.Write(ctx, []models.AccountSnapshot{snapshot(2, "20", "0", false)}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "client,available,held,total,locked", lines[0])
	assert.Equal(t, 1, strings.Count(buf.String(), "client,"))
}

func TestSinkEmptyBatchStillFramesDocument(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)

	require.NoError(t, sink.Write(context.Background(), nil))
	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}
