package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ArtistTotal is the accumulated stream count of one artist.
type ArtistTotal struct {
	Artist  string
	Streams float64
}

// StreamTotals is the per-artist stream table, ordered by artist name.
//
// It serializes as a JSON object whose keys keep the slice order:
//
//	{"Drake": 2.0, "Ed Sheeran": 3.5}
type StreamTotals []ArtistTotal

// Get returns the total for artist and whether the artist is present.
func (st StreamTotals) Get(artist string) (float64, bool) {
	for _, t := range st {
		if t.Artist == artist {
			return t.Streams, true
		}
	}
	return 0, false
}

// Artists returns the artist names in table order.
func (st StreamTotals) Artists() []string {
	names := make([]string, len(st))
	for i, t := range st {
		names[i] = t.Artist
	}
	return names
}

// MarshalJSON writes the table as an object in slice order.
func (st StreamTotals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range st {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(&buf, t.Artist); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		buf.WriteString(formatFloat(t.Streams))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Report is the result of one analysis run. It is built once and never
// modified afterwards.
type Report struct {
	// TargetArtist is the substring used to select ArtistSongs.
	TargetArtist string

	// ArtistSongs lists, in dataset order, the songs whose credit contains TargetArtist.
	ArtistSongs []string

	// OldestCount is the requested length of OldestSongs.
	OldestCount int

	// OldestSongs lists the oldest songs, oldest first. It is shorter than
	// OldestCount only when the dataset has fewer rows.
	OldestSongs []string

	// StreamsUnit labels the stream totals, e.g. "Billions".
	StreamsUnit string

	// ArtistTotals maps every individual artist to its stream total.
	ArtistTotals StreamTotals

	// SongsPerYear is the release-year histogram, ascending by year.
	// It feeds the chart and is not part of the serialized report.
	SongsPerYear []YearCount
}

// ArtistSongsKey is the report entry name for ArtistSongs.
func (r *Report) ArtistSongsKey() string {
	return r.TargetArtist + " songs"
}

// OldestSongsKey is the report entry name for OldestSongs.
func (r *Report) OldestSongsKey() string {
	return fmt.Sprintf("%d oldest songs", r.OldestCount)
}

// ArtistTotalsKey is the report entry name for ArtistTotals.
func (r *Report) ArtistTotalsKey() string {
	return fmt.Sprintf("Artists total streams (%s)", r.StreamsUnit)
}

// MarshalJSON writes the three report entries in their fixed order.
func (r *Report) MarshalJSON() ([]byte, error) {
	entries := []struct {
		key   string
		value any
	}{
		{r.ArtistSongsKey(), nonNil(r.ArtistSongs)},
		{r.OldestSongsKey(), nonNil(r.OldestSongs)},
		{r.ArtistTotalsKey(), r.ArtistTotals},
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(&buf, e.key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, e.value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// writeJSONValue encodes v without HTML escaping so names like
// "Simon & Garfunkel" stay readable.
func writeJSONValue(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// formatFloat renders whole numbers with a trailing ".0" so totals always
// read as decimals (2.0 rather than 2).
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
