package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CONFIG_FILE", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SLOT_LOCK_WAIT_MS", "250")
	t.Setenv("REQUIRE_APPROVED_SALON", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 250*time.Millisecond, cfg.SlotLockWait())
	assert.True(t, cfg.RequireApprovedSalon)
	assert.Equal(t, 168*time.Hour, cfg.JWTTTL())
}

func TestLoad_TOMLFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
jwt_secret = "from-file"
server_port = "7000"
db_driver = "sqlite"
database_url = "file::memory:"
reminder_cron = "30 8 * * *"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SERVER_PORT", "7100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "7100", cfg.ServerPort)
	assert.Equal(t, "30 8 * * *", cfg.ReminderCron)
}

func TestValidate_RejectsUnknownDriver(t *testing.T) {
	cfg := Defaults()
	cfg.JWTSecret = "x"
	cfg.DBDriver = "mongodb"

	require.Error(t, cfg.Validate())
}
