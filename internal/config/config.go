package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration, read from REPLAY_-prefixed
// environment variables after loading an optional .env file.
type Config struct {
	// InputPath points at a csv event file. A positional command-line
	// argument takes precedence.
	InputPath string `envconfig:"INPUT_PATH"`

	// SnapshotEmission is "batch" (default) or "per-event".
	SnapshotEmission string `envconfig:"SNAPSHOT_EMISSION" default:"batch"`

	// Kafka ingestion and publishing. The kafka listener is used when no
	// input file is given and brokers are configured; snapshots are
	// published only when KafkaPublish is set.
	KafkaBrokers        []string `envconfig:"KAFKA_BROKERS"`
	KafkaEventsTopic    string   `envconfig:"KAFKA_EVENTS_TOPIC" default:"transaction_events"`
	KafkaSnapshotsTopic string   `envconfig:"KAFKA_SNAPSHOTS_TOPIC" default:"account_snapshots"`
	KafkaGroupID        string   `envconfig:"KAFKA_GROUP_ID"`
	KafkaPublish        bool     `envconfig:"KAFKA_PUBLISH" default:"false"`

	// PostgresDSN, when set, enables the postgres snapshot sink.
	PostgresDSN string `envconfig:"POSTGRES_DSN"`

	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("replay", &cfg); err != nil {
		return Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}
