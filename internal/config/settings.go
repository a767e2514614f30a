package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/spotify-analysis/internal/analysis"
	"github.com/handiism/spotify-analysis/internal/chart"
	ioutils "github.com/handiism/spotify-analysis/internal/io"
	"github.com/handiism/spotify-analysis/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Files
	InputPath  string `json:"input_path"`
	ReportPath string `json:"report_path"`
	ChartPath  string `json:"chart_path"`

	// Analysis
	TargetArtist  string `json:"target_artist"`
	OldestCount   int    `json:"oldest_count"`
	StreamsColumn string `json:"streams_column"`
	StreamsUnit   string `json:"streams_unit"`
	MatchMode     string `json:"match_mode"` // substring, exact

	// Chart
	ChartWidth    int    `json:"chart_width"`
	ChartHeight   int    `json:"chart_height"`
	ChartTitle    string `json:"chart_title"`
	ChartXLabel   string `json:"chart_x_label"`
	ChartYLabel   string `json:"chart_y_label"`
	ChartBarColor string `json:"chart_bar_color"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	chartCfg := chart.DefaultConfig()
	opts := analysis.DefaultOptions()

	return &Settings{
		InputPath:  "spotify_songs_top_100.csv",
		ReportPath: "spotify_analysis_results.json",
		ChartPath:  "spotify_songs_by_year.png",

		TargetArtist:  opts.TargetArtist,
		OldestCount:   opts.OldestCount,
		StreamsColumn: model.DefaultStreamsColumn,
		StreamsUnit:   opts.StreamsUnit,
		MatchMode:     opts.MatchMode.String(),

		ChartWidth:    chartCfg.Width,
		ChartHeight:   chartCfg.Height,
		ChartTitle:    chartCfg.Title,
		ChartXLabel:   chartCfg.XLabel,
		ChartYLabel:   chartCfg.YLabel,
		ChartBarColor: "#1DB954",
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks values that the converters cannot fall back on.
func (s *Settings) Validate() error {
	if s.InputPath == "" || s.ReportPath == "" || s.ChartPath == "" {
		return fmt.Errorf("input_path, report_path and chart_path are required")
	}
	if s.OldestCount < 0 {
		return fmt.Errorf("oldest_count must not be negative, got %d", s.OldestCount)
	}
	if s.StreamsColumn == "" {
		return fmt.Errorf("streams_column is required")
	}
	if _, err := analysis.ParseMatchMode(s.MatchMode); err != nil {
		return err
	}
	if _, err := chart.ParseHexColor(s.ChartBarColor); err != nil {
		return err
	}
	return nil
}

// ToAnalysisOptions converts settings to analysis.Options.
func (s *Settings) ToAnalysisOptions() analysis.Options {
	mode, err := analysis.ParseMatchMode(s.MatchMode)
	if err != nil {
		mode = analysis.MatchSubstring
	}

	return analysis.Options{
		TargetArtist:  s.TargetArtist,
		OldestCount:   s.OldestCount,
		StreamsColumn: s.StreamsColumn,
		StreamsUnit:   s.StreamsUnit,
		MatchMode:     mode,
	}
}

// ToChartConfig converts settings to chart.Config.
func (s *Settings) ToChartConfig() *chart.Config {
	cfg := chart.DefaultConfig()
	cfg.Width = s.ChartWidth
	cfg.Height = s.ChartHeight
	cfg.Title = s.ChartTitle
	cfg.XLabel = s.ChartXLabel
	cfg.YLabel = s.ChartYLabel
	if c, err := chart.ParseHexColor(s.ChartBarColor); err == nil {
		cfg.BarColor = c
	}
	return cfg
}
