package analysis

import (
	"sort"
	"strings"

	"github.com/handiism/spotify-analysis/internal/model"
)

// SongsByArtist returns, in dataset order, the titles of songs whose
// credit contains substring. Matching is case-sensitive.
func SongsByArtist(songs []model.Song, substring string) []string {
	titles := []string{}
	for _, song := range songs {
		if strings.Contains(song.Artist, substring) {
			titles = append(titles, song.Title)
		}
	}
	return titles
}

// OldestSongs returns the titles of the k earliest releases, oldest first.
// Songs with equal dates keep their dataset order. The input is not reordered.
func OldestSongs(songs []model.Song, k int) []string {
	sorted := make([]model.Song, len(songs))
	copy(sorted, songs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReleaseDate.Before(sorted[j].ReleaseDate)
	})

	if k < 0 {
		k = 0
	}
	if k > len(sorted) {
		k = len(sorted)
	}

	titles := make([]string, k)
	for i := range titles {
		titles[i] = sorted[i].Title
	}
	return titles
}

// SongsPerYear counts songs per release year, ascending by year.
func SongsPerYear(songs []model.Song) []model.YearCount {
	counts := make(map[int]int)
	for _, song := range songs {
		counts[song.Year()]++
	}

	histogram := make([]model.YearCount, 0, len(counts))
	for year, count := range counts {
		histogram = append(histogram, model.YearCount{Year: year, Count: count})
	}
	sort.Slice(histogram, func(i, j int) bool {
		return histogram[i].Year < histogram[j].Year
	})
	return histogram
}
