package analysis

import (
	"errors"

	"github.com/handiism/spotify-analysis/internal/model"
	"github.com/handiism/spotify-analysis/internal/normalize"
)

// Options configures BuildReport.
type Options struct {
	// TargetArtist selects the artist-songs view.
	TargetArtist string

	// OldestCount is the number of oldest songs to report.
	OldestCount int

	// StreamsColumn names the stream-count column in error messages.
	StreamsColumn string

	// StreamsUnit labels the artist totals entry.
	StreamsUnit string

	// MatchMode selects substring or exact artist matching for totals.
	MatchMode MatchMode
}

// DefaultOptions returns the options of the standard Spotify top 100 report.
func DefaultOptions() Options {
	return Options{
		TargetArtist:  "Ed Sheeran",
		OldestCount:   3,
		StreamsColumn: model.DefaultStreamsColumn,
		StreamsUnit:   "Billions",
		MatchMode:     MatchSubstring,
	}
}

// BuildReport normalizes rows and computes every report view.
//
// All release dates are normalized first, then all stream counts. The
// first value that fails aborts the build with a *model.ParseError
// carrying its 1-based row number; no partial report is returned.
func BuildReport(rows []model.Row, opts Options) (*model.Report, error) {
	songs, err := NormalizeRows(rows, opts.StreamsColumn)
	if err != nil {
		return nil, err
	}

	return ReportFromSongs(songs, opts), nil
}

// ReportFromSongs computes every report view over already normalized songs.
func ReportFromSongs(songs []model.Song, opts Options) *model.Report {
	return &model.Report{
		TargetArtist: opts.TargetArtist,
		ArtistSongs:  SongsByArtist(songs, opts.TargetArtist),
		OldestCount:  opts.OldestCount,
		OldestSongs:  OldestSongs(songs, opts.OldestCount),
		StreamsUnit:  opts.StreamsUnit,
		ArtistTotals: ArtistTotals(songs, opts.MatchMode),
		SongsPerYear: SongsPerYear(songs),
	}
}

// NormalizeRows converts raw rows into songs. Source rows are left untouched.
func NormalizeRows(rows []model.Row, streamsColumn string) ([]model.Song, error) {
	songs := make([]model.Song, len(rows))

	for i, row := range rows {
		released, err := normalize.ParseDate(row.ReleaseDate)
		if err != nil {
			return nil, withRow(err, i+1, "")
		}
		songs[i] = model.Song{Title: row.Song, Artist: row.Artist, ReleaseDate: released}
	}

	for i, row := range rows {
		streams, err := normalize.ParseStreams(row.Streams)
		if err != nil {
			return nil, withRow(err, i+1, streamsColumn)
		}
		songs[i].Streams = streams
	}

	return songs, nil
}

// withRow stamps the row number, and optionally the column name, on a parse error.
func withRow(err error, row int, field string) error {
	var pe *model.ParseError
	if !errors.As(err, &pe) {
		return err
	}

	stamped := *pe
	stamped.Row = row
	if field != "" {
		stamped.Field = field
	}
	return &stamped
}
