package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/docdump/internal/config"
	"github.com/nao1215/docdump/internal/crawler"
	"github.com/nao1215/docdump/internal/pipeline"
	"github.com/nao1215/docdump/internal/report"
	"github.com/nao1215/docdump/internal/writer"
)

// NewDumpCmd creates the dump command.
func NewDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <url>",
		Short: "Crawl a documentation site and save each page as Markdown",
		Long: `Dump crawls a documentation website starting from the given URL.

It discovers sibling lesson pages via the site's sidebar navigation and
a page-wide link scan, restricted to the base path derived from the
starting URL. Each discovered page is fetched, its article content is
extracted and converted to Markdown, and the result is saved as a
numbered file ({NNN}_{title}.md) in the output directory.

Pages that fail to fetch, lack article content, duplicate an already
saved title, or convert to empty Markdown are skipped; the run always
continues to the next page.

Examples:
  # Dump a documentation section next to the seed page
  docdump dump https://reactnative.dev/docs/getting-started

  # Choose the output directory
  docdump dump -o lessons https://reactnative.dev/docs/getting-started

  # Use a selector profile from a .docdump config file
  docdump dump -s nextra https://example.com/docs/intro

  # Print the run summary as Markdown
  docdump dump -m https://example.com/docs/intro

Configuration file (.docdump) example:
  defaults:
    article: "article"
  sites:
    nextra:
      sidebar:
        - ".nextra-sidebar"
      article: "main"`,
		Args: cobra.ExactArgs(1),
		RunE: runDumpCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultOutputDir,
		"Directory to save markdown files into")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each HTTP request")
	cmd.Flags().StringP("user-agent", "u", config.DefaultUserAgent,
		"User-Agent header to send with requests")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .docdump in current dir, home dir, or XDG config dir)")
	cmd.Flags().StringP("site", "s", "",
		"Selector profile name from the configuration file")
	cmd.Flags().BoolP("markdown", "m", false,
		"Print the run summary as Markdown instead of plain text")
	cmd.Flags().Int64("max-body-size", config.DefaultMaxBodySize,
		"Maximum response body size in bytes to read per page")

	return cmd
}

// runDumpCmd executes the dump command.
func runDumpCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runDump(ctx, cfg, logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.SeedURL = args[0]

	var err error

	cfg.OutputDir, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
	if err != nil {
		return nil, err
	}

	cfg.MaxBodySize, err = cmd.Flags().GetInt64("max-body-size")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Site, err = cmd.Flags().GetString("site")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Resolve the selector profile from the config file.
	// If the user explicitly specified a config file path, error if it
	// is not found; otherwise silently fall back to built-in defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	switch {
	case configPath != "":
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Selectors = cf.GetSelectors(cfg.Site)
	case explicitConfigPath:
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	case cfg.Site != "":
		return nil, fmt.Errorf("selector profile %q requested but no configuration file found", cfg.Site)
	}

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runDump executes the dump run and prints the end-of-run summary.
func runDump(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting dump",
		"seedURL", cfg.SeedURL,
		"outputDir", cfg.OutputDir,
		"timeout", cfg.Timeout,
	)

	fetcher := crawler.NewFetcher(
		crawler.WithTimeout(cfg.Timeout),
		crawler.WithUserAgent(cfg.UserAgent),
		crawler.WithMaxBodySize(cfg.MaxBodySize),
	)

	p := pipeline.New(
		fetcher,
		writer.New(cfg.OutputDir),
		cfg.Selectors,
		pipeline.WithLogger(logger),
	)

	result, err := p.Run(ctx, cfg.SeedURL)
	if err != nil {
		// The two discovery failures end the run with an explanation
		// rather than an error exit: nothing was written and there is
		// nothing to clean up.
		switch {
		case errors.Is(err, pipeline.ErrSeedUnreachable):
			fmt.Printf("Could not fetch the initial documentation page: %s. Exiting.\n", cfg.SeedURL)
			return nil
		case errors.Is(err, pipeline.ErrNoLinks):
			fmt.Printf("%v.\n", err)
			fmt.Println("Please check that the starting URL is correct and contains links to other documentation pages.")
			return nil
		default:
			return err
		}
	}

	result.Elapsed = time.Since(result.StartedAt)

	// End-of-run summary
	var w report.Writer
	if cfg.MarkdownReport {
		w = report.NewMarkdownWriter(os.Stdout)
	} else {
		w = report.NewSimpleWriter(os.Stdout, report.WithVerbose(cfg.Verbose))
	}
	if _, err := w.Write(result); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}
