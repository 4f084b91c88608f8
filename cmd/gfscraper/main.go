// Package main is the entry point for the Google Flights combination
// scraper. It enumerates every (airport pair, date window) combination of
// the configured search plan, scrapes each one through a headless browser,
// and appends one CSV row per combination.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rodaine/table"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/memoryleak07/GFScraper/internal/adapter/scraper/googleflights"
	"github.com/memoryleak07/GFScraper/internal/adapter/sink"
	"github.com/memoryleak07/GFScraper/internal/config"
	"github.com/memoryleak07/GFScraper/internal/infrastructure/logger"
	"github.com/memoryleak07/GFScraper/internal/usecase"
)

func main() {
	settingsPath := flag.String("settings", config.DefaultSettingsPath, "path to the JSON settings file")
	flag.Parse()

	cfg, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration error")
	}

	setupLogger(cfg)

	log.Info().
		Strs("from", cfg.Search.FromAirports).
		Strs("to", cfg.Search.ToAirports).
		Str("outbound", cfg.Search.OutboundStart.String()).
		Int("delta", cfg.Search.DeltaDays).
		Int("flexdays", cfg.Search.FlexDays).
		Str("lastdate", cfg.Search.LastDate.String()).
		Bool("fastmode", cfg.Search.FastMode).
		Int("combinations", cfg.Search.CombinationCount()).
		Msg("Search plan loaded")

	// Ctrl-C stops the run between combinations; rows already appended
	// stay in the results file.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("Run failed")
	}
}

// run wires the browser client, the CSV sink, and the orchestrator, then
// drives the plan to completion.
func run(ctx context.Context, cfg *config.Config) error {
	appLog := logger.New(cfg.Logging).WithRunID(uuid.New().String())

	client, err := googleflights.NewClient(ctx, googleflights.Options{
		Headless:  cfg.Browser.Headless,
		UserAgent: cfg.Browser.UserAgent,
		FastMode:  cfg.Search.FastMode,
	}, appLog)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			appLog.Warn().Err(err).Msg("Error closing browser session")
		}
	}()

	csvSink, err := sink.NewCSVSink(cfg.ResultsFilePath(time.Now()))
	if err != nil {
		return err
	}
	defer csvSink.Close()

	orc := usecase.NewScrapeOrchestrator(client, csvSink, &usecase.Config{Logger: appLog})

	report, err := orc.Run(ctx, cfg.Search)
	printSummary(report, csvSink.Path())

	if errors.Is(err, context.Canceled) {
		appLog.Warn().Msg("Run interrupted, partial results kept")
		return nil
	}
	return err
}

// printSummary renders the end-of-run per-status tallies to stdout.
func printSummary(report *usecase.RunReport, resultsPath string) {
	fmt.Println()
	tbl := table.New("Status", "Count")
	tbl.AddRow("found", report.Found)
	tbl.AddRow("not_found", report.NotFound)
	tbl.AddRow("timed_out", report.TimedOut)
	tbl.AddRow("error", report.Errors)
	tbl.AddRow("total", fmt.Sprintf("%d/%d", report.Processed, report.Combinations))
	tbl.Print()

	fmt.Printf("\nStarted:  %s\n", report.StartedAt.Format(time.RFC3339))
	fmt.Printf("Finished: %s\n", report.FinishedAt.Format(time.RFC3339))
	fmt.Printf("Elapsed:  %s\n", report.Elapsed().Round(time.Second))
	fmt.Printf("Results:  %s\n", resultsPath)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Use console writer for non-JSON format
	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
