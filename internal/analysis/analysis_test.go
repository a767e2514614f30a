package analysis

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/handiism/spotify-analysis/internal/model"
)

func TestBuildReport_EndToEnd(t *testing.T) {
	rows := []model.Row{
		{Song: "S1", Artist: "Ed Sheeran", ReleaseDate: "1 January 2020", Streams: "1,5"},
		{Song: "S2", Artist: "Ed Sheeran and Drake", ReleaseDate: "2.January.19", Streams: "2,0"},
	}

	report, err := BuildReport(rows, DefaultOptions())
	if err != nil {
		t.Fatalf("BuildReport returned error: %v", err)
	}

	if want := []string{"S1", "S2"}; !reflect.DeepEqual(report.ArtistSongs, want) {
		t.Errorf("ArtistSongs = %q, want %q", report.ArtistSongs, want)
	}
	if want := []string{"S2", "S1"}; !reflect.DeepEqual(report.OldestSongs, want) {
		t.Errorf("OldestSongs = %q, want %q", report.OldestSongs, want)
	}

	wantTotals := model.StreamTotals{
		{Artist: "Drake", Streams: 2.0},
		{Artist: "Ed Sheeran", Streams: 3.5},
	}
	if !reflect.DeepEqual(report.ArtistTotals, wantTotals) {
		t.Errorf("ArtistTotals = %v, want %v", report.ArtistTotals, wantTotals)
	}

	wantYears := []model.YearCount{{Year: 2019, Count: 1}, {Year: 2020, Count: 1}}
	if !reflect.DeepEqual(report.SongsPerYear, wantYears) {
		t.Errorf("SongsPerYear = %v, want %v", report.SongsPerYear, wantYears)
	}

	if report.ArtistSongsKey() != "Ed Sheeran songs" || report.OldestSongsKey() != "3 oldest songs" ||
		report.ArtistTotalsKey() != "Artists total streams (Billions)" {
		t.Errorf("unexpected report keys: %q, %q, %q", report.ArtistSongsKey(), report.OldestSongsKey(), report.ArtistTotalsKey())
	}
}

func TestBuildReport_ParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		rows      []model.Row
		wantRow   int
		wantField string
	}{
		{
			name: "invalid day",
			rows: []model.Row{
				{Song: "S1", Artist: "A", ReleaseDate: "1 January 2020", Streams: "1,0"},
				{Song: "S2", Artist: "B", ReleaseDate: "32 January 2020", Streams: "1,0"},
			},
			wantRow:   2,
			wantField: model.ColumnReleaseDate,
		},
		{
			name: "four tokens",
			rows: []model.Row{
				{Song: "S1", Artist: "A", ReleaseDate: "1 January 2020 x", Streams: "1,0"},
			},
			wantRow:   1,
			wantField: model.ColumnReleaseDate,
		},
		{
			name: "dates checked before streams",
			rows: []model.Row{
				{Song: "S1", Artist: "A", ReleaseDate: "1 January 2020", Streams: "1,0,0"},
				{Song: "S2", Artist: "B", ReleaseDate: "nope", Streams: "1,0"},
			},
			wantRow:   2,
			wantField: model.ColumnReleaseDate,
		},
		{
			name: "bad streams",
			rows: []model.Row{
				{Song: "S1", Artist: "A", ReleaseDate: "1 January 2020", Streams: "1,0"},
				{Song: "S2", Artist: "B", ReleaseDate: "1 January 2020", Streams: "x"},
			},
			wantRow:   2,
			wantField: model.DefaultStreamsColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := BuildReport(tt.rows, DefaultOptions())
			if err == nil {
				t.Fatal("BuildReport should fail")
			}
			if report != nil {
				t.Error("BuildReport should not return a partial report")
			}

			var pe *model.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %T, want *model.ParseError", err)
			}
			if pe.Row != tt.wantRow || pe.Field != tt.wantField {
				t.Errorf("ParseError = {Row: %d, Field: %q}, want {%d, %q}", pe.Row, pe.Field, tt.wantRow, tt.wantField)
			}
		})
	}
}

func TestNormalizeRows_DoesNotMutateInput(t *testing.T) {
	rows := []model.Row{{Song: "S1", Artist: "A", ReleaseDate: "5.May.21", Streams: "1,25"}}
	original := rows[0]

	songs, err := NormalizeRows(rows, model.DefaultStreamsColumn)
	if err != nil {
		t.Fatalf("NormalizeRows returned error: %v", err)
	}
	if rows[0] != original {
		t.Errorf("row changed to %+v", rows[0])
	}
	if songs[0].Streams != 1.25 || songs[0].Year() != 2021 {
		t.Errorf("song = %+v, want 1.25 streams released 2021", songs[0])
	}
}

func TestArtistTotals_SubstringSemantics(t *testing.T) {
	songs := []model.Song{
		song("S1", "Ed", 2021, 1.0),
		song("S2", "Ed Sheeran", 2021, 2.0),
		song("S3", "Halsey and Ed Sheeran", 2021, 0.5),
	}

	totals := ArtistTotals(songs, MatchSubstring)

	tests := []struct {
		artist string
		want   float64
	}{
		{"Ed", 3.5},
		{"Ed Sheeran", 2.5},
		{"Halsey", 0.5},
	}
	for _, tt := range tests {
		if got, ok := totals.Get(tt.artist); !ok || got != tt.want {
			t.Errorf("total[%q] = %v (present %v), want %v", tt.artist, got, ok, tt.want)
		}
	}
}

func TestArtistTotals_ExactSemantics(t *testing.T) {
	songs := []model.Song{
		song("S1", "Ed", 2021, 1.0),
		song("S2", "Ed Sheeran", 2021, 2.0),
		song("S3", "Halsey featuring Ed Sheeran", 2021, 0.5),
	}

	totals := ArtistTotals(songs, MatchExact)

	if got, _ := totals.Get("Ed"); got != 1.0 {
		t.Errorf("total[Ed] = %v, want 1", got)
	}
	if got, _ := totals.Get("Ed Sheeran"); got != 2.5 {
		t.Errorf("total[Ed Sheeran] = %v, want 2.5", got)
	}
}

func TestArtistTotals_KeysAreSortedUniverse(t *testing.T) {
	songs := []model.Song{
		song("S1", "The Weeknd", 2020, 1),
		song("S2", "Drake featuring Rihanna", 2016, 1),
		song("S3", "Rihanna and Drake", 2016, 1),
		song("S4", "Adele", 2015, 1),
	}

	got := ArtistTotals(songs, MatchSubstring).Artists()
	want := []string{"Adele", "Drake", "Rihanna", "The Weeknd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("artists = %q, want %q", got, want)
	}
}

func TestArtistTotals_AtLeastEveryMatchingRow(t *testing.T) {
	songs := []model.Song{
		song("S1", "Post Malone and Swae Lee", 2018, 2.8),
		song("S2", "Post Malone", 2019, 2.1),
		song("S3", "Swae Lee", 2017, 0.4),
	}

	for _, total := range ArtistTotals(songs, MatchSubstring) {
		for _, s := range songs {
			if credits(s.Artist, total.Artist, MatchSubstring) && total.Streams < s.Streams {
				t.Errorf("total[%q] = %v is below row %q streams %v", total.Artist, total.Streams, s.Title, s.Streams)
			}
		}
	}
}

func TestArtistTotal_Rounding(t *testing.T) {
	songs := []model.Song{
		song("S1", "A", 2020, 0.1),
		song("S2", "A", 2020, 0.2),
		song("S3", "A", 2020, 1.0004),
	}

	if got := ArtistTotal(songs, "A", MatchSubstring); got != 1.3 {
		t.Errorf("ArtistTotal = %v, want 1.3", got)
	}
}

func TestSongsByArtist(t *testing.T) {
	songs := []model.Song{
		song("S1", "Ed Sheeran", 2017, 1),
		song("S2", "Drake", 2016, 1),
		song("S3", "Justin Bieber featuring Ed Sheeran", 2019, 1),
		song("S4", "ed sheeran", 2019, 1),
	}

	got := SongsByArtist(songs, "Ed Sheeran")
	want := []string{"S1", "S3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SongsByArtist = %q, want %q", got, want)
	}

	if got := SongsByArtist(songs, "Adele"); got == nil || len(got) != 0 {
		t.Errorf("SongsByArtist with no match = %#v, want empty slice", got)
	}
}

func TestOldestSongs(t *testing.T) {
	songs := []model.Song{
		song("New", "A", 2021, 1),
		song("Tie1", "A", 2010, 1),
		song("Old", "A", 2000, 1),
		song("Tie2", "A", 2010, 1),
	}

	got := OldestSongs(songs, 3)
	want := []string{"Old", "Tie1", "Tie2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OldestSongs = %q, want %q", got, want)
	}

	if songs[0].Title != "New" {
		t.Error("OldestSongs should not reorder its input")
	}
}

func TestOldestSongs_IdempotentOnSortedInput(t *testing.T) {
	songs := []model.Song{
		song("A", "X", 2001, 1),
		song("B", "X", 2001, 1),
		song("C", "X", 2005, 1),
		song("D", "X", 2009, 1),
	}

	got := OldestSongs(songs, len(songs))
	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OldestSongs = %q, want %q", got, want)
	}
}

func TestOldestSongs_FewerRowsThanK(t *testing.T) {
	songs := []model.Song{song("Only", "X", 2020, 1)}

	if got := OldestSongs(songs, 3); !reflect.DeepEqual(got, []string{"Only"}) {
		t.Errorf("OldestSongs = %q, want [Only]", got)
	}
	if got := OldestSongs(nil, 3); len(got) != 0 {
		t.Errorf("OldestSongs(nil) = %q, want empty", got)
	}
}

func TestSongsPerYear(t *testing.T) {
	songs := []model.Song{
		song("S1", "A", 2019, 1),
		song("S2", "A", 2017, 1),
		song("S3", "A", 2019, 1),
	}

	got := SongsPerYear(songs)
	want := []model.YearCount{{Year: 2017, Count: 1}, {Year: 2019, Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SongsPerYear = %v, want %v", got, want)
	}
}

func TestParseMatchMode(t *testing.T) {
	tests := []struct {
		input   string
		want    MatchMode
		wantErr bool
	}{
		{"", MatchSubstring, false},
		{"substring", MatchSubstring, false},
		{"Exact", MatchExact, false},
		{"fuzzy", MatchSubstring, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMatchMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMatchMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMatchMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func song(title, artist string, year int, streams float64) model.Song {
	return model.Song{
		Title:       title,
		Artist:      artist,
		ReleaseDate: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Streams:     streams,
	}
}
