package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sheikh-saqib/payments-replay-ledger/internal/config"
	"github.com/sheikh-saqib/payments-replay-ledger/internal/dispatch"
	"github.com/sheikh-saqib/payments-replay-ledger/internal/interfaces"
	"github.com/sheikh-saqib/payments-replay-ledger/internal/ledger"
	csvlistener "github.com/sheikh-saqib/payments-replay-ledger/internal/listener/csv"
	kafkalistener "github.com/sheikh-saqib/payments-replay-ledger/internal/listener/kafka"
	"github.com/sheikh-saqib/payments-replay-ledger/internal/logging"
	csvsink "github.com/sheikh-saqib/payments-replay-ledger/internal/sink/csv"
	kafkasink "github.com/sheikh-saqib/payments-replay-ledger/internal/sink/kafka"
	"github.com/sheikh-saqib/payments-replay-ledger/internal/storage/postgres"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	policy, err := dispatch.ParseEmissionPolicy(cfg.SnapshotEmission)
	if err != nil {
		return err
	}

	inputPath := cfg.InputPath
	if len(os.Args) > 1 {
		inputPath = os.Args[1]
	}

	var source interfaces.EventSource
	switch {
	case inputPath != "":
		fileListener, err := csvlistener.OpenFile(inputPath)
		if err != nil {
			return err
		}
		defer fileListener.Close()
		source = fileListener
		logger.Info("reading events from file", zap.String("path", inputPath))
	case len(cfg.KafkaBrokers) > 0:
		listener := kafkalistener.NewListener(cfg.KafkaBrokers, cfg.KafkaEventsTopic, cfg.KafkaGroupID)
		defer listener.Close()
		source = listener
		logger.Info("reading events from kafka",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaEventsTopic),
		)
	default:
		return errors.New("no event source: pass a csv file argument or set REPLAY_KAFKA_BROKERS")
	}

	sinks := dispatch.MultiSink{csvsink.NewSink(os.Stdout)}

	if cfg.KafkaPublish && len(cfg.KafkaBrokers) > 0 {
		snapshotPublisher := kafkasink.NewSink(cfg.KafkaBrokers, cfg.KafkaSnapshotsTopic)
		defer snapshotPublisher.Close()
		sinks = append(sinks, snapshotPublisher)
	}

	if cfg.PostgresDSN != "" {
		db, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		sinks = append(sinks, postgres.NewSnapshotSink(db))
	}

	dispatcher := dispatch.New(ledger.NewAccountLedger(), sinks, dispatch.Options{
		Policy: policy,
		Logger: logger,
	})
	return dispatcher.Run(ctx, source)
}
