package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssselect.yaml")
	configContent := `
verbose: true

render:
  output-format: json
  paths:
    - "web/**/*.selectors.yaml"

lint:
  strict: true
  max-issues: 10
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "json", k.String("render.output-format"))
	assert.Equal(t, []string{"web/**/*.selectors.yaml"}, k.Strings("render.paths"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, 10, k.Int("lint.max-issues"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// A missing config file is not an error
	require.NoError(t, loadConfigFromPath("/nonexistent/.cssselect.yaml"))

	config := buildRenderConfig(nil)
	assert.Equal(t, defaultDocumentPaths, config.Paths)
	assert.Equal(t, "text", config.OutputFormat)
	assert.Equal(t, ".gitignore", config.IgnoreFile)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssselect.yaml")
	configContent := `
verbose: false
lint:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("CSSSELECT_VERBOSE", "true")
	t.Setenv("CSSSELECT_LINT_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("lint.strict"))
}

func TestBuildLintConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildLintConfig(nil)
	assert.Equal(t, defaultDocumentPaths, config.Paths)
	assert.False(t, config.Strict)
	assert.Equal(t, "issues", config.OutputFormat)
	assert.Equal(t, 0, config.Lint.MaxIssues)
	assert.Equal(t, 0, config.Lint.MaxSameIssues)
	assert.True(t, config.Lint.PrintIssuedLines)
	assert.True(t, config.Lint.PrintLinterName)
	assert.False(t, config.Lint.UseColors)
	assert.False(t, config.Lint.ShowStats)
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssselect.yaml")
	configContent := `
color: true
lint:
  strict: true
  paths:
    - "src/**/*.selectors.json"
  max-same-issues: 3
  print-lines: false
  output-format: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildLintConfig(nil)
	assert.True(t, config.Strict)
	assert.Equal(t, []string{"src/**/*.selectors.json"}, config.Paths)
	assert.Equal(t, "json", config.OutputFormat)
	assert.Equal(t, 3, config.Lint.MaxSameIssues)
	assert.False(t, config.Lint.PrintIssuedLines)
	assert.True(t, config.Lint.UseColors)
}

func TestDocumentPaths_ArgsWin(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("render.paths", []string{"from-config.yaml"}))

	assert.Equal(t, []string{"a.yaml"}, documentPaths([]string{"a.yaml"}, "render.paths"))
	assert.Equal(t, []string{"from-config.yaml"}, documentPaths(nil, "render.paths"))
}

func TestFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssselect.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("lint:\n  strict: true\n  max-issues: 7\n"), 0644))

	resetFlags(rootCmd)
	require.NoError(t, lintCmd.ParseFlags([]string{"--config", configPath, "--max-issues", "2"}))
	require.NoError(t, loadConfig(lintCmd))

	config := buildLintConfig(nil)
	assert.Equal(t, 2, config.Lint.MaxIssues, "explicit flag wins")
	assert.True(t, config.Strict, "unchanged flag default must not shadow the file")
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, _, err := execute(t, "init")
	require.NoError(t, err)
	assert.Equal(t, "Created .cssselect.yaml\n", stdout)

	// Verify file was created
	data, err := os.ReadFile(".cssselect.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "render:")
	assert.Contains(t, string(data), "lint:")

	// The written defaults load cleanly
	resetKoanf()
	require.NoError(t, loadConfigFromPath(".cssselect.yaml"))
	assert.Equal(t, "issues", buildLintConfig(nil).OutputFormat)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	// Create existing file
	require.NoError(t, os.WriteFile(".cssselect.yaml", []byte("existing"), 0644))

	_, _, err := execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	// Create existing file
	require.NoError(t, os.WriteFile(".cssselect.yaml", []byte("existing"), 0644))

	_, _, err := execute(t, "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(".cssselect.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "render:")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cssselect dev\n", stdout)
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("config.key", "from-config"))
	assert.Equal(t, "from-config", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("flag-key", "from-flag"))
	assert.Equal(t, "from-flag", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
