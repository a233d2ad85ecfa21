package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/heroes/internal/config"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, config.SourceFile, cfg.Data.Source)
	assert.Equal(t, "http://localhost:3000", cfg.Data.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Data.Timeout())
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
data:
  source: api
  api_url: http://example.test
logging:
  level: warn
`), 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.SourceAPI, cfg.Data.Source)
		assert.Equal(t, "http://example.test", cfg.Data.APIURL)
		assert.Equal(t, 10, cfg.Data.TimeoutSeconds, "unset fields keep defaults")
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("data: [oops"), 0o600))

		_, err := config.Load(path)
		require.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.Default()
	cfg.Data.Source = config.SourceAPI

	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.ApplyEnvOverrides(envMap(map[string]string{
		"HEROES_DATA_SOURCE": "API",
		"HEROES_API_URL":     "http://env.test",
		"HEROES_API_TIMEOUT": "3",
		"HEROES_LOG_LEVEL":   "debug",
		"HEROES_LOG_FORMAT":  " ",
	}))

	assert.Equal(t, config.SourceAPI, cfg.Data.Source)
	assert.Equal(t, "http://env.test", cfg.Data.APIURL)
	assert.Equal(t, 3, cfg.Data.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format, "blank values are ignored")
}

func TestApplyEnvOverrides_BadTimeoutIgnored(t *testing.T) {
	cfg := config.Default()
	cfg.ApplyEnvOverrides(envMap(map[string]string{"HEROES_API_TIMEOUT": "soon"}))
	assert.Equal(t, 10, cfg.Data.TimeoutSeconds)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "api source", mutate: func(c *config.Config) { c.Data.Source = config.SourceAPI }},
		{name: "unknown source", mutate: func(c *config.Config) { c.Data.Source = "ldap" }, wantErr: true},
		{
			name: "api source without url",
			mutate: func(c *config.Config) {
				c.Data.Source = config.SourceAPI
				c.Data.APIURL = ""
			},
			wantErr: true,
		},
		{name: "zero timeout", mutate: func(c *config.Config) { c.Data.TimeoutSeconds = 0 }, wantErr: true},
		{name: "bad format", mutate: func(c *config.Config) { c.Output.DefaultFormat = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDataFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HEROES_HOME", home)

	cfg := config.Default()
	assert.Equal(t, filepath.Join(home, "heroes.yaml"), cfg.DataFilePath())

	cfg.Data.File = "/tmp/custom.yaml"
	assert.Equal(t, "/tmp/custom.yaml", cfg.DataFilePath())
}

func TestGlobalConfig(t *testing.T) {
	t.Cleanup(config.ResetGlobalConfig)

	custom := config.Default()
	custom.Output.DefaultFormat = config.FormatJSON
	config.SetGlobalConfig(custom)

	assert.Same(t, custom, config.GetGlobalConfig())
	assert.Equal(t, config.FormatJSON, config.GetOutputFormat(""))
	assert.Equal(t, config.FormatTable, config.GetOutputFormat(config.FormatTable))
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "console"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", got.Output)
	assert.Equal(t, "debug", got.Level)

	lc.File = "/tmp/heroes.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/tmp/heroes.log", got.File)
}
