package config

import (
	"os"
	"time"
)

type Config struct {
	// HTTPAddr serves the read-only storefront API; empty disables it.
	HTTPAddr string
	// DatabaseDSN selects the mirror store: a postgres:// URL uses pgx,
	// anything else is treated as a SQLite file path. Empty disables
	// persistence.
	DatabaseDSN string
	// NATS Streaming settings for the order-event publisher; empty
	// NatsURL disables publishing.
	NatsURL       string
	StanClusterID string
	StanClientID  string
	StanSubject   string
	// SeedFile points at a YAML seed catalog; empty uses the built-in
	// default shops.
	SeedFile string
	// DeliveryPacing is the user-facing pause while a shipment is
	// "on its way".
	DeliveryPacing time.Duration
}

func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		DatabaseDSN:    getenv("DATABASE_DSN", "shop_system.db"),
		NatsURL:        getenv("NATS_URL", ""),
		StanClusterID:  getenv("STAN_CLUSTER_ID", "shop-cluster"),
		StanClientID:   getenv("STAN_CLIENT_ID", ""),
		StanSubject:    getenv("STAN_SUBJECT", "shop.order.events"),
		SeedFile:       getenv("SEED_FILE", ""),
		DeliveryPacing: getDuration("DELIVERY_PACING", 3*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
