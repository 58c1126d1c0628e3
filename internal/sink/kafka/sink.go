// Package kafka publishes account snapshots as JSON records, keyed by
// account id so per-account ordering is preserved across partitions.
package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/interfaces"
	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

type Sink struct {
	writer *kafka.Writer
}

func NewSink(brokers []string, topic string) *Sink {
	return &Sink{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (s *Sink) Write(ctx context.Context, snapshots []models.AccountSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(snapshots))
	for _, snapshot := range snapshots {
		data, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(strconv.FormatUint(uint64(snapshot.AccountID), 10)),
			Value: data,
		})
	}

	return s.writer.WriteMessages(ctx, messages...)
}

func (s *Sink) Close() error {
	return s.writer.Close()
}

var _ interfaces.SnapshotSink = (*Sink)(nil)
