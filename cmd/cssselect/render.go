package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/cssselect/internal/document"
	"github.com/yacobolo/cssselect/jsonx"
)

// errRenderFailed is returned under --quiet when a selector fails, so only
// the exit code reports it.
var errRenderFailed = errors.New("render failed")

var renderCmd = &cobra.Command{
	Use:   "render [paths...]",
	Short: "Render the selectors defined in selector documents",
	Long: `Load YAML or JSON selector documents and print every selector they define.
Paths are doublestar glob patterns; files ignored by .gitignore are skipped.`,
	PreRunE: prepare,
	RunE:    runRender,
}

func init() {
	f := renderCmd.Flags()
	f.String("output-format", "text", "Output format: text|json")
	f.String("ignore-file", ".gitignore", "Ignore file applied to relative paths")
}

// renderOutput is the JSON shape of the render command.
type renderOutput struct {
	Selectors []document.Result `json:"selectors"`
	Failed    int               `json:"failed"`
}

func runRender(cmd *cobra.Command, args []string) error {
	config := buildRenderConfig(args)

	files, stats, err := document.NewScanner(logger, config.IgnoreFile).Scan(config.Paths)
	if err != nil {
		return fmt.Errorf("scanning documents: %w", err)
	}
	logger.Debug("Scanned documents",
		zap.Strings("patterns", config.Paths),
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("skipped", stats.FilesSkipped))
	if len(files) == 0 {
		return fmt.Errorf("no selector documents match %v", config.Paths)
	}

	compiler := document.NewCompiler(logger)
	var (
		results []document.Result
		errs    error
	)
	for _, path := range files {
		doc, err := document.Load(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			results = append(results, document.Result{File: path, Error: err.Error(), Err: err})
			continue
		}
		compiled, err := compiler.Compile(doc)
		errs = multierr.Append(errs, err)
		results = append(results, compiled...)
	}

	failed := len(multierr.Errors(errs))
	quiet := getBoolWithFallback("quiet", "quiet", false)
	switch {
	case quiet:
		if failed > 0 {
			return errRenderFailed
		}
		return nil
	case config.OutputFormat == "json":
		if err := jsonx.Write(cmd.OutOrStdout(), renderOutput{Selectors: results, Failed: failed}); err != nil {
			return fmt.Errorf("writing json: %w", err)
		}
	default:
		writeText(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d selectors failed", failed, len(results))
	}
	return nil
}

// writeText prints "name: selector" lines to out and failures to errOut.
func writeText(out, errOut io.Writer, results []document.Result) {
	for _, res := range results {
		switch {
		case res.Err != nil:
			fmt.Fprintln(errOut, res.Error)
		case res.Name != "":
			fmt.Fprintf(out, "%s: %s\n", res.Name, res.Selector)
		default:
			fmt.Fprintln(out, res.Selector)
		}
	}
}
