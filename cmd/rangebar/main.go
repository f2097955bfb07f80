// Package main is the entry point for the rangebar demo, a terminal program
// showing a single range bar.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rangebar",
		Short: "Terminal range bar demo",
		Long:  `rangebar shows a range bar with two thumbs in the terminal. Drag the thumbs with the mouse or move them with the keyboard.`,
	}

	cmd.AddCommand(runCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}
