package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "admin123", cfg.Auth.AdminWorkID)
	assert.Equal(t, 20, cfg.Submission.PointsPerComplaint)
	assert.Equal(t, time.Duration(0), cfg.Submission.Delay)
	assert.Equal(t, "Others", cfg.Routing.Fallback)
	assert.Equal(t, "civicpulse:complaint:events", cfg.Events.Channel)
	assert.Equal(t, "redis", cfg.Events.Transport)
	assert.Equal(t, "civicpulse/complaints", cfg.Events.MQTTTopicPrefix)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.NeedsRedis())
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CIVICPULSE_STORAGE_BACKEND", "redis")
	t.Setenv("CIVICPULSE_SUBMISSION_DELAY", "1500ms")
	t.Setenv("CIVICPULSE_SUBMISSION_POINTS_PER_COMPLAINT", "35")

	cfg, err := Load("release")
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, 1500*time.Millisecond, cfg.Submission.Delay)
	assert.Equal(t, 35, cfg.Submission.PointsPerComplaint)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.True(t, cfg.NeedsRedis())
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown backend", key: "CIVICPULSE_STORAGE_BACKEND", val: "etcd"},
		{name: "unknown driver", key: "CIVICPULSE_DATABASE_DRIVER", val: "oracle"},
		{name: "zero points", key: "CIVICPULSE_SUBMISSION_POINTS_PER_COMPLAINT", val: "0"},
		{name: "negative delay", key: "CIVICPULSE_SUBMISSION_DELAY", val: "-1s"},
		{name: "unknown event transport", key: "CIVICPULSE_EVENTS_TRANSPORT", val: "kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

// unsetForTest clears key for the duration of the test and restores it after.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	unsetForTest(t, "CIVICPULSE_AUTH_ADMIN_WORK_ID")
	t.Setenv("CIVICPULSE_SUBMISSION_POINTS_PER_COMPLAINT", "50")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"CIVICPULSE_AUTH_ADMIN_WORK_ID=ward-office-7\n"+
			"CIVICPULSE_SUBMISSION_POINTS_PER_COMPLAINT=10\n",
	), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "ward-office-7", cfg.Auth.AdminWorkID)
	assert.Equal(t, 50, cfg.Submission.PointsPerComplaint, "process environment wins over .env")
}

func TestLoad_Postgres(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CIVICPULSE_DATABASE_DRIVER", "postgres")
	t.Setenv("CIVICPULSE_STORAGE_BACKEND", "database")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.False(t, cfg.NeedsRedis())
}

func TestLoad_MQTTEvents(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CIVICPULSE_EVENTS_ENABLED", "true")
	t.Setenv("CIVICPULSE_EVENTS_TRANSPORT", "mqtt")
	t.Setenv("CIVICPULSE_EVENTS_MQTT_BROKER", "tcp://broker.city.local:1883")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Events.UsesMQTT())
	assert.Equal(t, "tcp://broker.city.local:1883", cfg.Events.MQTTBroker)
	assert.False(t, cfg.NeedsRedis(), "mqtt events do not need redis")

	t.Setenv("CIVICPULSE_EVENTS_TRANSPORT", "redis")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.True(t, cfg.NeedsRedis())
}
