package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BARBER_TEST_DB_PASSWORD", "secret")

	path := writeFile(t, dir, "config.toml", `
[server]
http_port = 9090

[database]
host = "db"
dbname = "barber"
user = "barber"
password = "${BARBER_TEST_DB_PASSWORD}"

[shop]
timezone = "UTC"
max_advance_days = 30
purge_cron = ""

[redis]
address = "redis:6379"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "host=db port=5432 user=barber password=secret dbname=barber sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 30, cfg.Shop.MaxAdvanceDays)
	assert.Empty(t, cfg.Shop.PurgeCron)
	assert.True(t, cfg.Redis.Enabled())

	// Не указанные в файле поля берутся по умолчанию
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "* * * * *", cfg.Shop.ReminderCron)
	assert.Equal(t, time.Minute, cfg.Throttle.Window())
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	// Переменная должна прийти из .env, а не из окружения теста
	t.Setenv("BARBER_TEST_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("BARBER_TEST_LOG_LEVEL"))

	writeFile(t, dir, ".env", "BARBER_TEST_LOG_LEVEL=debug\n")
	path := writeFile(t, dir, "config.toml", `
[database]
driver = "memory"

[logs]
level = "${BARBER_TEST_LOG_LEVEL}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown driver", content: "[database]\ndriver = \"sqlite\"\n"},
		{name: "bad timezone", content: "[database]\ndriver = \"memory\"\n[shop]\ntimezone = \"Mars/Olympus\"\n"},
		{name: "negative advance", content: "[database]\ndriver = \"memory\"\n[shop]\nmax_advance_days = -1\n"},
		{name: "bad throttle", content: "[database]\ndriver = \"memory\"\n[throttle]\nlimit = 0\n"},
		{name: "bad port", content: "[server]\nhttp_port = 0\n"},
		{name: "broken toml", content: "[server\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.toml", tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
