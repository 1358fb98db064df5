package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load(":9999")

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, StorageModePostgres, cfg.StorageMode)
	assert.Equal(t, "orders", cfg.KafkaOrdersTopic)
	assert.Equal(t, CheckoutModeFull, cfg.CheckoutMode)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, 10*time.Second, cfg.AlertDedupeWindow)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_MODE", "local")
	t.Setenv("LOCAL_DATA_FILE", "/tmp/shop.json")
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("CHECKOUT_MODE", "simple")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")

	cfg := Load(":8081")

	assert.Equal(t, StorageModeLocal, cfg.StorageMode)
	assert.Equal(t, "/tmp/shop.json", cfg.LocalDataFile)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, CheckoutModeSimple, cfg.CheckoutMode)
	assert.Contains(t, cfg.PostgresDSN(), "host=db port=6543")
}

func TestConfig_Location(t *testing.T) {
	cfg := Config{Timezone: "UTC"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg = Config{Timezone: "Not/AZone"}
	assert.Equal(t, time.Local, cfg.Location())
}

func TestKafkaClients_DisabledWithoutBroker(t *testing.T) {
	cfg := Config{KafkaOrdersTopic: "orders"}
	assert.Nil(t, NewKafkaWriter(cfg))
	assert.Nil(t, NewKafkaReader(cfg, "group"))

	cfg.KafkaBroker = "localhost:9092"
	writer := NewKafkaWriter(cfg)
	if assert.NotNil(t, writer) {
		assert.Equal(t, "orders", writer.Topic)
	}
}

func TestTracing_NoopWithoutEndpoint(t *testing.T) {
	tracing := MustInitTracing(Config{}, "test-svc")
	assert.NoError(t, tracing.Shutdown(context.Background()))
}
