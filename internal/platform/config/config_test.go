package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("REMINDER_CRON", "")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "agendaviva", cfg.ServiceName)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "0 7 * * *", cfg.ReminderCron)
	assert.True(t, cfg.SeedDemoData)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: \"9000\"\ntimezone: America/Sao_Paulo\n"), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("TIMEZONE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.HTTPPort)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t-"), 0o600))

	t.Setenv("CONFIG_FILE", path)
	_, err := Load()
	assert.Error(t, err)
}

func TestEnvBool(t *testing.T) {
	t.Setenv("SEED_DEMO_DATA", "off")
	assert.False(t, envBool("SEED_DEMO_DATA", true))

	t.Setenv("SEED_DEMO_DATA", "yes")
	assert.True(t, envBool("SEED_DEMO_DATA", false))

	// unrecognized values fall back
	t.Setenv("SEED_DEMO_DATA", "sim")
	assert.False(t, envBool("SEED_DEMO_DATA", false))
	assert.True(t, envBool("SEED_DEMO_DATA", true))
}
