package model

import (
	"strconv"
	"time"
)

// Dataset column names.
const (
	ColumnSong        = "Song"
	ColumnArtist      = "Artist"
	ColumnReleaseDate = "Release Date"

	// DefaultStreamsColumn is the stream-count column of the Spotify top 100 dataset.
	DefaultStreamsColumn = "Streams (Billions)"
)

// Row is one raw dataset record. Rows are never modified after reading.
type Row struct {
	// Song is the song title.
	Song string

	// Artist is the artist credit, possibly naming several collaborators
	// ("A and B", "A featuring B").
	Artist string

	// ReleaseDate is the raw date text, either "D Month YYYY" or "D.Month.YY".
	ReleaseDate string

	// Streams is the raw stream count using a comma as decimal separator.
	Streams string
}

// Song is a Row with normalized release date and stream count.
type Song struct {
	// Title is the song title.
	Title string

	// Artist is the raw artist credit, kept verbatim.
	Artist string

	// ReleaseDate is the canonical calendar date at midnight UTC.
	ReleaseDate time.Time

	// Streams is the stream count in the dataset's unit.
	Streams float64
}

// Year returns the release year.
func (s Song) Year() int {
	return s.ReleaseDate.Year()
}

// YearCount is the number of songs released in one year.
type YearCount struct {
	Year  int
	Count int
}

// Label returns the year as chart axis text.
func (yc YearCount) Label() string {
	return strconv.Itoa(yc.Year)
}
