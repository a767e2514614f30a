package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/handiism/spotify-analysis/internal/model"
	"github.com/handiism/spotify-analysis/internal/normalize"
)

// MatchMode selects how an artist is matched against row credits when
// totals are computed.
type MatchMode int

const (
	// MatchSubstring counts every row whose raw credit contains the artist
	// name as a substring. "Ed" would also collect "Ed Sheeran" rows.
	MatchSubstring MatchMode = iota

	// MatchExact counts only rows whose split credit includes the artist.
	MatchExact
)

// String returns the settings-file spelling of the mode.
func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "exact"
	default:
		return "substring"
	}
}

// ParseMatchMode reads "substring" or "exact". An empty string selects MatchSubstring.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "substring":
		return MatchSubstring, nil
	case "exact":
		return MatchExact, nil
	default:
		return MatchSubstring, fmt.Errorf("unknown match mode %q", s)
	}
}

// totalPrecision is the number of decimals kept in artist totals.
const totalPrecision = 3

// ArtistTotal sums the streams of every song matching artist under mode,
// rounded to three decimals.
func ArtistTotal(songs []model.Song, artist string, mode MatchMode) float64 {
	var total float64
	for _, song := range songs {
		if credits(song.Artist, artist, mode) {
			total += song.Streams
		}
	}
	return round(total, totalPrecision)
}

// ArtistTotals computes ArtistTotal for every artist of the universe,
// ordered by artist name.
func ArtistTotals(songs []model.Song, mode MatchMode) model.StreamTotals {
	creditList := make([]string, len(songs))
	for i, song := range songs {
		creditList[i] = song.Artist
	}

	universe := normalize.ArtistUniverse(creditList)
	totals := make(model.StreamTotals, 0, len(universe))
	for _, artist := range universe {
		totals = append(totals, model.ArtistTotal{
			Artist:  artist,
			Streams: ArtistTotal(songs, artist, mode),
		})
	}
	return totals
}

func credits(credit, artist string, mode MatchMode) bool {
	if mode == MatchExact {
		for _, name := range normalize.SplitArtists(credit) {
			if name == artist {
				return true
			}
		}
		return false
	}
	return strings.Contains(credit, artist)
}

func round(f float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(f*p) / p
}
