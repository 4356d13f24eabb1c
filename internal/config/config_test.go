package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
user = "booking"
password = "secret"
dbname = "bsa_booking"

[mail]
api_key = "re_test"
from = "Bookings <bookings@example.com>"
admin_email = "admin@example.com"

[auth]
admin_token = "token"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	// Не заданные в файле поля берутся из дефолтов
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "https://api.resend.com", cfg.Mail.BaseURL)
}

func TestLoad_DSN(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db.internal"
port = 5433
user = "svc"
password = "pw"
dbname = "bookings"
sslmode = "require"

[mail]
api_key = "re_test"

[auth]
admin_token = "token"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "host=db.internal port=5433 user=svc password=pw dbname=bookings sslmode=require", cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing database credentials",
			content: "[auth]\nadmin_token = \"t\"\n[mail]\nenabled = false\n",
		},
		{
			name:    "missing admin token",
			content: "[database]\nuser = \"u\"\ndbname = \"d\"\n[mail]\nenabled = false\n",
		},
		{
			name:    "mail enabled without api key",
			content: "[database]\nuser = \"u\"\ndbname = \"d\"\n[auth]\nadmin_token = \"t\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
