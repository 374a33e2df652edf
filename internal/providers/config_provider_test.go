package providers

import (
	"drinkdays/internal/structures"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewConfigProvider_ReadsYamlAndDefaults(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  dir: /tmp/drinkdays
logger:
  dir: /tmp/logs
cache:
  enabled: true
  size: 2
`)
	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "DrinkDays", conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, path, conf.Path)
	assert.Equal(t, "127.0.0.1", conf.WebServer.Host)
	assert.Equal(t, 8087, conf.WebServer.Port)
	assert.Equal(t, "drinkdays_records", conf.Storage.RecordsKey)
	assert.Equal(t, "drinkdays_settings", conf.Storage.SettingsKey)
	assert.Equal(t, "info", conf.Logger.Level)
	assert.True(t, conf.Cache.Enabled)
	assert.Equal(t, 2, conf.Cache.Size)
	assert.Equal(t, 3600, conf.Cache.TTL)
}

func TestNewConfigProvider_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  dir: /tmp/drinkdays
logger:
  dir: /tmp/logs
`)
	t.Setenv("DRINKDAYS_LOG_LEVEL", "debug")
	t.Setenv("DRINKDAYS_STORAGE_DIR", "/tmp/other")
	t.Setenv("DRINKDAYS_LOCALE", "ko_KR.UTF-8")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "debug", conf.Logger.Level)
	assert.Equal(t, "/tmp/other", conf.Storage.Dir)
	assert.Equal(t, "ko_KR.UTF-8", conf.Settings.Locale)
}

func TestNewConfigProvider_InvalidConfig(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  dir: /tmp/logs
`)
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yml")})
	assert.Error(t, err)
}
