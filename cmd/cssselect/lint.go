package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/cssselect/internal/document"
	"github.com/yacobolo/cssselect/internal/lint"
)

// errLintFailed is returned when the exit policy fails the run. The report
// has already been written.
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint selector documents",
	Long: `Check selector documents for fragment order and duplicate violations,
broken references and values that render into invalid CSS.
Errors fail the run; --strict also fails on warnings.`,
	PreRunE: prepare,
	RunE:    runLint,
}

func init() {
	f := lintCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "issues", "Output format: issues|json")
	f.String("ignore-file", ".gitignore", "Ignore file applied to relative paths")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (selectorlint) suffix on issues")
}

func runLint(cmd *cobra.Command, args []string) error {
	config := buildLintConfig(args)

	files, stats, err := document.NewScanner(logger, config.IgnoreFile).Scan(config.Paths)
	if err != nil {
		return fmt.Errorf("scanning documents: %w", err)
	}
	logger.Debug("Scanned documents",
		zap.Strings("patterns", config.Paths),
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("skipped", stats.FilesSkipped))

	result := lint.New(logger, config.Lint).LintFiles(files)

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		format := lint.DetermineOutputFormat(config.OutputFormat)
		if err := lint.WriteOutput(cmd.OutOrStdout(), result, format, config.Lint); err != nil {
			return err
		}
	}

	// Exit code logic - "Soft Gate" approach
	if config.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 {
			return errLintFailed
		}
	} else if result.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		return errLintFailed
	}

	return nil
}
