package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssselect/internal/document"
)

var buildCmd = &cobra.Command{
	Use:   "build kind=value... [combinator kind=value...]",
	Short: "Build one selector from command-line fragments",
	Long: `Build a selector from kind=value fragments, in CSS grammar order.
Kinds: element (tag), id, class, attr, pseudo-class, pseudo-element.
Combinators: " " (descendant), ">" (child), "+" (next-sibling),
"~" (subsequent-sibling), or their names. Combinations nest to the right.`,
	Example: `  cssselect build element=a attr='href$=".png"' pseudo-class=focus
  cssselect build element=div id=main + element=table
  cssselect build element=nav descendant element=a`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: prepare,
	RunE:    runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	def, err := document.ParseArgs(args)
	if err != nil {
		return err
	}

	selector, err := document.NewCompiler(logger).Render(def)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), selector)
	return nil
}
