package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bindwire",
		Short: "Reactive value-binding engine tooling",
		Long: `Bindwire is a reactive value-binding engine for Go.

Define source values and derived expressions; writes to a source
propagate synchronously to every dependent expression, eagerly or
lazily per expression. This CLI ships a walkthrough of the engine
and a development inspector for live graphs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		demoCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
