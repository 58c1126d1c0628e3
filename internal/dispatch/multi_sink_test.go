package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

type failingSink struct {
	err error
}

func (f *failingSink) Write(ctx context.Context, snapshots []models.AccountSnapshot) error {
	return f.err
}

func TestMultiSinkFansOut(t *testing.T) {
	first := &captureSink{}
	second := &captureSink{}
	sinks := MultiSink{first, second}

	snapshots := []models.AccountSnapshot{{AccountID: 1}}
	require.NoError(t, sinks.Write(context.Background(), snapshots))

	require.Len(t, first.writes, 1)
	require.Len(t, second.writes, 1)
	assert.Equal(t, snapshots, first.writes[0])
	assert.Equal(t, snapshots, second.writes[0])
}

func TestMultiSinkAttemptsAllSinksOnFailure(t *testing.T) {
	boom := errors.New("kafka unreachable")
	late := &captureSink{}
	sinks := MultiSink{&failingSink{err: boom}, late}

	err := sinks.Write(context.Background(), []models.AccountSnapshot{{AccountID: 1}})
	require.ErrorIs(t, err, boom)
	assert.Len(t, late.writes, 1)
}
