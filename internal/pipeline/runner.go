package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/spotify-analysis/internal/analysis"
	"github.com/handiism/spotify-analysis/internal/chart"
	"github.com/handiism/spotify-analysis/internal/config"
	ioutils "github.com/handiism/spotify-analysis/internal/io"
	"github.com/handiism/spotify-analysis/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the lower-case level name.
func (l ProgressLevel) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Result is the outcome of a run.
type Result struct {
	// Songs are the normalized dataset rows in source order.
	Songs []model.Song

	// Report holds every computed view.
	Report *model.Report

	// Files lists the paths written, empty after Analyze.
	Files []string
}

// Runner coordinates an analysis run.
type Runner struct {
	settings *config.Settings
	options  analysis.Options
	renderer *chart.Renderer

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewRunner creates a new Runner.
func NewRunner(settings *config.Settings, onProgress func(ProgressEvent)) *Runner {
	return &Runner{
		settings:   settings,
		options:    settings.ToAnalysisOptions(),
		renderer:   chart.NewRenderer(settings.ToChartConfig()),
		onProgress: onProgress,
	}
}

// Analyze reads the dataset and builds the report without writing anything.
func (r *Runner) Analyze(ctx context.Context) (*Result, error) {
	r.progress(ProgressEvent{Message: fmt.Sprintf("Reading dataset: %s", r.settings.InputPath), Level: LevelInfo})

	rows, err := ioutils.ReadDataset(ctx, r.settings.InputPath, r.options.StreamsColumn)
	if err != nil {
		r.progress(ProgressEvent{Message: fmt.Sprintf("Error reading dataset: %v", err), Level: LevelError})
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	r.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d rows", len(rows)), Level: LevelVerbose})

	songs, err := analysis.NormalizeRows(rows, r.options.StreamsColumn)
	if err != nil {
		r.progress(ProgressEvent{Message: fmt.Sprintf("Error normalizing dataset: %v", err), Level: LevelError})
		return nil, fmt.Errorf("normalize %s: %w", r.settings.InputPath, err)
	}
	r.progress(ProgressEvent{Message: "Normalized release dates and stream counts", Level: LevelVerbose})

	report := analysis.ReportFromSongs(songs, r.options)
	r.progress(ProgressEvent{
		Message: fmt.Sprintf("Found %d %s song(s), %d artist(s), %d release year(s)",
			len(report.ArtistSongs), report.TargetArtist, len(report.ArtistTotals), len(report.SongsPerYear)),
		Level: LevelInfo,
	})

	return &Result{Songs: songs, Report: report}, nil
}

// Run analyzes the dataset and writes the report and chart.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	result, err := r.Analyze(ctx)
	if err != nil {
		return nil, err
	}

	reportFile := ioutils.File{Path: r.settings.ReportPath}
	chartFile := ioutils.File{Path: r.settings.ChartPath}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := ioutils.EncodeReport(result.Report)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		reportFile.Data = data
		r.progress(ProgressEvent{Message: fmt.Sprintf("Encoded report (%d bytes)", len(data)), Level: LevelVerbose})
		return nil
	})

	g.Go(func() error {
		format := chart.FormatFromPath(chartFile.Path)
		data, err := r.renderer.Encode(gctx, result.Report.SongsPerYear, format)
		if err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		chartFile.Data = data
		r.progress(ProgressEvent{Message: fmt.Sprintf("Rendered chart (%d bytes)", len(data)), Level: LevelVerbose})
		return nil
	})

	if err := g.Wait(); err != nil {
		r.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return nil, err
	}

	if err := ioutils.CommitFiles(ctx, reportFile, chartFile); err != nil {
		r.progress(ProgressEvent{Message: fmt.Sprintf("Error writing output: %v", err), Level: LevelError})
		return nil, fmt.Errorf("write output: %w", err)
	}

	result.Files = []string{reportFile.Path, chartFile.Path}
	for _, path := range result.Files {
		r.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", filepath.Base(path)), Level: LevelSuccess})
	}

	return result, nil
}

// progress serializes callbacks; the output goroutines report concurrently.
func (r *Runner) progress(event ProgressEvent) {
	if r.onProgress == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onProgress(event)
}
