package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	require.NoError(t, Load())

	assert.Equal(t, ":8000", APIAddr())
	assert.Equal(t, "pgx", DBDriver())
	assert.Equal(t, DefaultDSN, DatabaseURL())
	assert.Equal(t, 10, DBWaitRetries())
	assert.Equal(t, 2*time.Second, DBWaitInterval())
	assert.Equal(t, 28.0, DefaultMaxTemp())
	assert.Equal(t, "smartclimate/measurements", MQTTTopic())
	assert.False(t, UseCloudServices())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_WAIT_INTERVAL", "500ms")
	t.Setenv("USE_CLOUD_SERVICES", "true")
	t.Setenv("LOG_LEVEL", "warn")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	require.NoError(t, Load())

	assert.Equal(t, "file:test.db", DatabaseURL())
	assert.Equal(t, "sqlite3", DBDriver())
	assert.Equal(t, 500*time.Millisecond, DBWaitInterval())
	assert.True(t, UseCloudServices())
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestLoad_BadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	assert.Error(t, Load())
}
