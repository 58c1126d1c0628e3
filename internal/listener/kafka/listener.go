// Package kafka consumes transaction events published as JSON records on a
// kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/interfaces"
	"github.com/sheikh-saqib/payments-replay-ledger/internal/models"
)

// Listener is an EventSource backed by a kafka consumer group. The stream is
// effectively infinite; it ends only when the reader is closed or the
// context is cancelled.
type Listener struct {
	reader *kafka.Reader
}

// NewListener subscribes to topic on the given brokers. An empty groupID
// gets a fresh per-run group so replays start from the configured offset.
func NewListener(brokers []string, topic, groupID string) *Listener {
	if groupID == "" {
		groupID = "replay-" + uuid.NewString()
	}
	return &Listener{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
	}
}

// Next returns the next event. Reader-level failures (closed reader,
// cancelled context) end the stream with io.EOF; a message that does not
// decode into a valid event is a skippable IngestError.
func (l *Listener) Next(ctx context.Context) (models.TransactionEvent, error) {
	message, err := l.reader.ReadMessage(ctx)
	if err != nil {
		return models.TransactionEvent{}, io.EOF
	}

	var event models.TransactionEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return models.TransactionEvent{}, &interfaces.IngestError{Record: int(message.Offset), Err: err}
	}
	kind, err := models.ParseTransactionKind(string(event.Kind))
	if err != nil {
		return models.TransactionEvent{}, &interfaces.IngestError{Record: int(message.Offset), Err: err}
	}
	event.Kind = kind

	return event, nil
}

func (l *Listener) Close() error {
	return l.reader.Close()
}

var _ interfaces.EventSource = (*Listener)(nil)
