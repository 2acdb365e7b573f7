// Package main provides the entry point for the docdump CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for docdump.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docdump",
		Short: "Dump a documentation website into Markdown files",
		Long: `docdump extracts a documentation site into portable Markdown.

Starting from one URL, it discovers sibling lesson pages through the
site's sidebar navigation (plus a page-wide link scan), fetches each
page, extracts the article content, converts it to Markdown, and saves
every page as a numbered file for offline reading or archiving.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewDumpCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
