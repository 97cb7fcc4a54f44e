package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/cssselect/internal/lint"
)

const defaultConfigPath = ".cssselect.yaml"

var k = koanf.New(".")

// defaultDocumentPaths are scanned when neither arguments nor config name any.
var defaultDocumentPaths = []string{
	"**/*.selectors.yaml",
	"**/*.selectors.yml",
	"**/*.selectors.json",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Unchanged flags are skipped so their
	// defaults never shadow a config file or env value.
	fs := cmd.Flags()
	provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSSELECT_* prefix)
	if err := k.Load(env.Provider("CSSSELECT_", ".", func(s string) string {
		// CSSSELECT_RENDER_PATHS -> render.paths
		// CSSSELECT_LINT_STRICT -> lint.strict
		// CSSSELECT_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSSELECT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// renderConfig holds the settings of the render command.
type renderConfig struct {
	Paths        []string
	OutputFormat string
	IgnoreFile   string
}

// buildRenderConfig constructs the render settings from args and koanf state.
func buildRenderConfig(args []string) renderConfig {
	return renderConfig{
		Paths:        documentPaths(args, "render.paths"),
		OutputFormat: getStringWithFallback("output-format", "render.output-format", "text"),
		IgnoreFile:   getStringWithFallback("ignore-file", "ignore-file", ".gitignore"),
	}
}

// lintSettings holds the settings of the lint command.
type lintSettings struct {
	Paths        []string
	Strict       bool
	OutputFormat string
	IgnoreFile   string
	Lint         lint.Config
}

// buildLintConfig constructs the lint settings from args and koanf state.
func buildLintConfig(args []string) lintSettings {
	return lintSettings{
		Paths:        documentPaths(args, "lint.paths"),
		Strict:       getBoolWithFallback("strict", "lint.strict", false),
		OutputFormat: getStringWithFallback("output-format", "lint.output-format", "issues"),
		IgnoreFile:   getStringWithFallback("ignore-file", "ignore-file", ".gitignore"),
		Lint: lint.Config{
			MaxIssues:        getIntWithFallback("max-issues", "lint.max-issues", 0),
			MaxSameIssues:    getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
			PrintIssuedLines: getBoolWithFallback("print-lines", "lint.print-lines", true),
			PrintLinterName:  getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
			UseColors:        getBoolWithFallback("color", "color", false),
			ShowStats:        getBoolWithFallback("verbose", "verbose", false),
		},
	}
}

// documentPaths picks positional arguments first, then the config key, then
// the default patterns.
func documentPaths(args []string, configKey string) []string {
	if len(args) > 0 {
		return args
	}
	if paths := k.Strings(configKey); len(paths) > 0 {
		return paths
	}
	return defaultDocumentPaths
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
