package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests share process-global environment variables, so none of them
// run in parallel.

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "sweetbliss.db", cfg.Database.DSN)
	assert.Equal(t, "/static/uploads", cfg.Upload.URLPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 20, cfg.Catalogue.SearchLimit)
	assert.Equal(t, 12, cfg.Catalogue.PageSize)
	assert.Empty(t, cfg.Admin.Username)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SWEETBLISS_DATABASE_DRIVER", "POSTGRES")
	t.Setenv("SWEETBLISS_DATABASE_DSN", "host=db user=bliss dbname=bliss")
	t.Setenv("SWEETBLISS_CATALOGUE_SEARCH_LIMIT", "5")
	t.Setenv("SWEETBLISS_UPLOAD_URL_PATH", "media/")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=db user=bliss dbname=bliss", cfg.Database.DSN)
	assert.Equal(t, 5, cfg.Catalogue.SearchLimit)
	assert.Equal(t, "/media", cfg.Upload.URLPath)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweetbliss.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  listen_addr: ":9000"
admin:
  username: "  admin "
  password: secret
log:
  level: DEBUG
  format: json
catalogue:
  search_limit: -3
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.ListenAddr)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "secret", cfg.Admin.Password)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 20, cfg.Catalogue.SearchLimit)
}

func TestLoad_InvalidFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}
