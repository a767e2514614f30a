package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/spotify-analysis/internal/config"
	"github.com/handiism/spotify-analysis/internal/model"
)

const sampleCSV = `Song,Artist,Streams (Billions),Release Date
Shape of You,Ed Sheeran,"3,562",6 January 2017
Blinding Lights,The Weeknd,"3,703",29.November.19
Someone You Loved,Lewis Capaldi,"2,887",8 November 2018
Perfect,Ed Sheeran and Beyonce,"2,56",3 March 2017
One Dance,Drake featuring Wizkid and Kyla,"2,713",5 April 2016
`

func setup(t *testing.T, csv string) *config.Settings {
	t.Helper()

	dir := t.TempDir()
	input := filepath.Join(dir, "songs.csv")
	if err := os.WriteFile(input, []byte(csv), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := config.DefaultSettings()
	s.InputPath = input
	s.ReportPath = filepath.Join(dir, "out", "results.json")
	s.ChartPath = filepath.Join(dir, "out", "chart.png")
	return s
}

func TestRunner_Run(t *testing.T) {
	s := setup(t, sampleCSV)

	var events []ProgressEvent
	runner := NewRunner(s, func(e ProgressEvent) { events = append(events, e) })

	result, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(result.Songs) != 5 {
		t.Errorf("len(Songs) = %d, want 5", len(result.Songs))
	}
	if len(result.Files) != 2 {
		t.Fatalf("Files = %v, want report and chart", result.Files)
	}

	data, err := os.ReadFile(s.ReportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	for _, part := range []string{
		`"Ed Sheeran songs": [`,
		`"Shape of You"`,
		`"3 oldest songs": [`,
		`"Artists total streams (Billions)": {`,
		`"Ed Sheeran": 6.122`,
		`"Beyonce": 2.56`,
	} {
		if !strings.Contains(string(data), part) {
			t.Errorf("report missing %s:\n%s", part, data)
		}
	}

	img, err := os.ReadFile(s.ChartPath)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(img)); err != nil {
		t.Errorf("chart is not a PNG: %v", err)
	}

	var successes int
	for _, e := range events {
		if e.Level == LevelSuccess {
			successes++
		}
	}
	if successes != 2 {
		t.Errorf("got %d success events, want 2", successes)
	}
}

func TestRunner_Run_OldestSongs(t *testing.T) {
	s := setup(t, sampleCSV)

	result, err := NewRunner(s, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := []string{"One Dance", "Shape of You", "Perfect"}
	got := result.Report.OldestSongs
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("OldestSongs = %q, want %q", got, want)
	}
}

func TestRunner_Run_JPEGChart(t *testing.T) {
	s := setup(t, sampleCSV)
	s.ChartPath = strings.TrimSuffix(s.ChartPath, ".png") + ".jpg"

	if _, err := NewRunner(s, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	img, err := os.ReadFile(s.ChartPath)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(img)); err != nil {
		t.Errorf("chart is not a JPEG: %v", err)
	}
}

func TestRunner_Run_FailureWritesNothing(t *testing.T) {
	tests := []struct {
		name  string
		csv   string
		check func(t *testing.T, err error)
	}{
		{
			name: "bad date",
			csv:  "Song,Artist,Streams (Billions),Release Date\nS1,A,\"1,0\",1 January 2020\nS2,B,\"1,0\",32 January 2020\n",
			check: func(t *testing.T, err error) {
				var pe *model.ParseError
				if !errors.As(err, &pe) || pe.Row != 2 {
					t.Errorf("error = %v, want ParseError on row 2", err)
				}
			},
		},
		{
			name: "bad streams",
			csv:  "Song,Artist,Streams (Billions),Release Date\nS1,A,\"1,0,0\",1 January 2020\n",
			check: func(t *testing.T, err error) {
				var pe *model.ParseError
				if !errors.As(err, &pe) || pe.Field != model.DefaultStreamsColumn {
					t.Errorf("error = %v, want ParseError on the streams column", err)
				}
			},
		},
		{
			name: "missing column",
			csv:  "Song,Artist,Release Date\nS1,A,1 January 2020\n",
			check: func(t *testing.T, err error) {
				var se *model.SchemaError
				if !errors.As(err, &se) {
					t.Errorf("error = %v, want SchemaError", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setup(t, tt.csv)

			var errorEvents int
			runner := NewRunner(s, func(e ProgressEvent) {
				if e.Level == LevelError {
					errorEvents++
				}
			})

			_, err := runner.Run(context.Background())
			if err == nil {
				t.Fatal("Run should fail")
			}
			tt.check(t, err)

			if errorEvents == 0 {
				t.Error("expected an error progress event")
			}
			for _, path := range []string{s.ReportPath, s.ChartPath} {
				if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
					t.Errorf("%s should not exist after a failed run", path)
				}
			}
		})
	}
}

func TestRunner_Run_MissingInput(t *testing.T) {
	s := setup(t, sampleCSV)
	s.InputPath = filepath.Join(t.TempDir(), "missing.csv")

	_, err := NewRunner(s, nil).Run(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestRunner_Run_Cancelled(t *testing.T) {
	s := setup(t, sampleCSV)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(s, nil).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(s.ReportPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("cancelled run should not write the report")
	}
}

func TestRunner_Analyze_WritesNothing(t *testing.T) {
	s := setup(t, sampleCSV)

	result, err := NewRunner(s, nil).Analyze(context.Background())
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if result.Report == nil || len(result.Files) != 0 {
		t.Errorf("Analyze result = %+v, want a report and no files", result)
	}
	if _, err := os.Stat(filepath.Dir(s.ReportPath)); !errors.Is(err, os.ErrNotExist) {
		t.Error("Analyze should not create the output directory")
	}
}

func TestProgressLevel_String(t *testing.T) {
	tests := []struct {
		level ProgressLevel
		want  string
	}{
		{LevelInfo, "info"},
		{LevelVerbose, "verbose"},
		{LevelWarning, "warning"},
		{LevelError, "error"},
		{LevelSuccess, "success"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
