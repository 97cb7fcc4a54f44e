// Package main provides the cssselect CLI for building, rendering and linting
// CSS selectors.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// lint already printed its report; quiet render prints nothing
		if !errors.Is(err, errLintFailed) && !errors.Is(err, errRenderFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
