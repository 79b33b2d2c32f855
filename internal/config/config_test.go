package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "SERVER_PORT", "DB_DRIVER", "KUDOS_API_URL", "KUDOS_API_TIMEOUT"} {
		t.Setenv(k, "")
	}
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "http://localhost:3000/api", cfg.Client.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Client.TimeoutDuration())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	yaml := `
env: production
server:
  port: 8081
database:
  driver: mysql
  host: db.internal
  user: kudos
  password: secret
  name: kudos_prod
redis:
  enabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GIPHY_API_KEY", "k")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "k", cfg.Giphy.APIKey)
	// Defaults survive for keys the file does not mention.
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [\n"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 3307, User: "u", Password: "p", Name: "kudos"}
	dsn := d.GetDSN()
	assert.Contains(t, dsn, "u:p@tcp(db:3307)/kudos")
	assert.Contains(t, dsn, "parseTime=true")

	d.DSN = "explicit"
	assert.Equal(t, "explicit", d.GetDSN())
}

func TestAllowOriginList(t *testing.T) {
	c := CORSConfig{AllowOrigins: " http://a , ,http://b"}
	assert.Equal(t, []string{"http://a", "http://b"}, c.AllowOriginList())
}

func TestPathForEnv(t *testing.T) {
	assert.Equal(t, "configs/config.local.yaml", PathForEnv(""))
	assert.Equal(t, "configs/config.prod.yaml", PathForEnv("prod"))
}
