package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is replaced by prepare once flags and config are known.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "cssselect",
	Short: "CSS selector builder and linter",
	Long: `Build CSS selector strings from ordered fragments.
Fragments must follow CSS grammar order: element, id, class, attribute,
pseudo-class, pseudo-element. Selectors combine with descendant, child (>),
next-sibling (+) and subsequent-sibling (~) combinators.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// prepare loads configuration and builds the logger. Commands that read
// config use it as PreRunE.
func prepare(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	logger = newLogger(cmd.ErrOrStderr(),
		getBoolWithFallback("verbose", "verbose", false),
		getBoolWithFallback("quiet", "quiet", false),
		getBoolWithFallback("color", "color", false))
	return nil
}
