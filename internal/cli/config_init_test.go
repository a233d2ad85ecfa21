package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/heroes/internal/cli"
	"github.com/rshade/heroes/internal/config"
)

// setupCLITest isolates HEROES_* state and registers cleanup for global state.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HEROES_HOME", home)
	t.Setenv("HEROES_LOG_LEVEL", "error")
	t.Setenv("HEROES_PROJECT_DIR", "")
	t.Setenv("HEROES_DATA_SOURCE", "")
	t.Setenv("HEROES_DATA_FILE", "")
	t.Setenv("HEROES_API_URL", "")
	t.Cleanup(func() {
		config.ResetGlobalConfig()
		config.SetResolvedProjectDir("")
	})
	return home
}

// executeCLI runs the root command with args and returns combined output.
func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return buf.String(), err
}

// TestConfigInit_InsideProject verifies that "config init" inside a project
// writes .heroes/config.yaml and .heroes/.gitignore.
func TestConfigInit_InsideProject(t *testing.T) {
	setupCLITest(t)
	projectDir := t.TempDir()
	t.Setenv("HEROES_PROJECT_DIR", projectDir)

	output, err := executeCLI(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, output, "Configuration initialized at")

	configPath := filepath.Join(projectDir, ".heroes", "config.yaml")
	assert.FileExists(t, configPath)

	gitignoreData, err := os.ReadFile(filepath.Join(projectDir, ".heroes", ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, config.GitignoreContent(), string(gitignoreData))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestConfigInit_ExistingGitignorePreserved verifies "config init --force" never
// overwrites an existing .gitignore.
func TestConfigInit_ExistingGitignorePreserved(t *testing.T) {
	setupCLITest(t)
	projectDir := t.TempDir()
	heroesDir := filepath.Join(projectDir, ".heroes")
	require.NoError(t, os.MkdirAll(heroesDir, 0o750))
	custom := "# custom\n"
	require.NoError(t, os.WriteFile(filepath.Join(heroesDir, ".gitignore"), []byte(custom), 0o600))
	t.Setenv("HEROES_PROJECT_DIR", projectDir)

	_, err := executeCLI(t, "config", "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(heroesDir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}

// TestConfigInit_Global verifies the global config path and the --force guard.
func TestConfigInit_Global(t *testing.T) {
	home := setupCLITest(t)

	output, err := executeCLI(t, "config", "init", "--global")
	require.NoError(t, err)
	assert.Contains(t, output, "Configuration initialized successfully")
	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	_, err = executeCLI(t, "config", "init", "--global")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCLI(t, "config", "init", "--global", "--force")
	require.NoError(t, err)
}

// TestConfigValidate covers a valid setup, an invalid config and verbose output.
func TestConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		setupCLITest(t)

		output, err := executeCLI(t, "config", "validate", "--verbose")
		require.NoError(t, err)
		assert.Contains(t, output, "Configuration is valid")
		assert.Contains(t, output, "Data source: file")
		assert.Contains(t, output, "Heroes: 6")
	})

	t.Run("invalid source", func(t *testing.T) {
		setupCLITest(t)
		t.Setenv("HEROES_DATA_SOURCE", "ftp")

		_, err := executeCLI(t, "config", "validate")
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("explicit data file must exist", func(t *testing.T) {
		setupCLITest(t)
		t.Setenv("HEROES_DATA_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := executeCLI(t, "config", "validate")
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("config flag", func(t *testing.T) {
		setupCLITest(t)
		path := filepath.Join(t.TempDir(), "alt.yaml")
		cfg := config.Default()
		cfg.Data.Source = config.SourceAPI
		cfg.Data.APIURL = "http://heroes.test"
		require.NoError(t, cfg.Save(path))

		output, err := executeCLI(t, "--config", path, "config", "validate", "-v")
		require.NoError(t, err)
		assert.Contains(t, output, "API URL: http://heroes.test")
	})
}
