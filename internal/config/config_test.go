package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, StorageFile, cfg.StorageDriver)
	assert.Equal(t, "data", cfg.DataDir)
	assert.False(t, cfg.KafkaConfig.Enabled())
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOTEL_SERVICE_PORT", "9090")
	t.Setenv("HOTEL_STORAGE_DRIVER", "Postgres")
	t.Setenv("HOTEL_DB_HOST", "db")
	t.Setenv("HOTEL_DB_PASSWORD", "p@ss")
	t.Setenv("HOTEL_KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaConfig.Brokers)
	assert.Contains(t, cfg.DBConfig.DSN(), "host=db")
	assert.Equal(t, "postgres://postgres:p%40ss@db:5432/hotel_booking?sslmode=disable", cfg.DBConfig.DatabaseURL())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOTEL_STORAGE_DRIVER", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}
