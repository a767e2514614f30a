package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/handiism/spotify-analysis/internal/config"
	"github.com/handiism/spotify-analysis/internal/pipeline"
)

var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#1DB954")).
	Padding(0, 1)

func main() {
	// Command line flags
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		inputFlag   = flag.String("input", "", "Dataset CSV (overrides config)")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag  = flag.Bool("dry-run", false, "Analyze without writing output files")
	)

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Spotify Analysis - Report on the Spotify top 100 songs")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  spotify-analysis [options]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "For interactive mode, use: spotify-tui")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := zerolog.InfoLevel
	if *verboseFlag {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			logger.Error().Err(err).Msg("loading config")
			os.Exit(1)
		}
	}

	// Apply flags
	if *inputFlag != "" {
		settings.InputPath = *inputFlag
	}

	// Handle interrupts
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runner := pipeline.NewRunner(settings, func(event pipeline.ProgressEvent) {
		logEvent(logger, event)
	})

	var (
		result *pipeline.Result
		err    error
	)
	if *dryRunFlag {
		result, err = runner.Analyze(ctx)
	} else {
		result, err = runner.Run(ctx)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			logger.Warn().Msg("interrupted, no output written")
			os.Exit(130)
		}
		os.Exit(1)
	}

	fmt.Println(summary(result, *dryRunFlag))
}

// logEvent sinks a pipeline progress event into the console logger.
func logEvent(logger zerolog.Logger, event pipeline.ProgressEvent) {
	var e *zerolog.Event
	switch event.Level {
	case pipeline.LevelVerbose:
		e = logger.Debug()
	case pipeline.LevelWarning:
		e = logger.Warn()
	case pipeline.LevelError:
		e = logger.Error()
	default:
		e = logger.Info()
	}
	e.Str("event", event.Level.String()).Msg(event.Message)
}

func summary(result *pipeline.Result, dryRun bool) string {
	report := result.Report

	var b strings.Builder
	fmt.Fprintf(&b, "Songs analyzed: %d\n", len(result.Songs))
	fmt.Fprintf(&b, "%s: %d\n", report.ArtistSongsKey(), len(report.ArtistSongs))
	fmt.Fprintf(&b, "%s: %s\n", report.OldestSongsKey(), strings.Join(report.OldestSongs, ", "))
	fmt.Fprintf(&b, "Artists with stream totals: %d", len(report.ArtistTotals))

	if dryRun {
		b.WriteString("\n\n[Dry run - no files written]")
	} else {
		for _, path := range result.Files {
			fmt.Fprintf(&b, "\nWrote %s", path)
		}
	}

	return summaryStyle.Render(b.String())
}
