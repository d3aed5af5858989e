// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	GRPCAddr    string `env:"GRPC_ADDR" envDefault:":50051"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9100"`

	WALDir           string        `env:"WAL_DIR" envDefault:"./data/wal"`
	SnapshotDir      string        `env:"SNAPSHOT_DIR" envDefault:"./data/snapshot"`
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"30s"`
	OutboxDir        string        `env:"OUTBOX_DIR" envDefault:"./data/outbox"`

	KafkaBrokers      []string      `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	TradeTopic        string        `env:"TRADE_TOPIC" envDefault:"matchbook.trades"`
	BroadcastInterval time.Duration `env:"BROADCAST_INTERVAL" envDefault:"250ms"`
	DepthTopic        string        `env:"DEPTH_TOPIC" envDefault:"matchbook.depth"`
	DepthInterval     time.Duration `env:"DEPTH_INTERVAL" envDefault:"1s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	// missing .env is fine; the environment wins either way
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
