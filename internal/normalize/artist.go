package normalize

import (
	"sort"
	"strings"
)

const (
	// FeaturingToken marks a featured artist. It is rewritten to "and"
	// before splitting.
	FeaturingToken = "featuring"

	// CollaborationDelimiter separates collaborating artists in a credit.
	// Only the space-surrounded form splits, so names like "Brandy" or
	// "Band of Horses" stay whole.
	CollaborationDelimiter = " and "
)

// SplitArtists decomposes an artist credit into individual artist names.
//
// Every "featuring" is first replaced with "and"; the credit is then split
// on " and ". A credit without the delimiter is a single artist. Names are
// trimmed, empty segments are dropped and duplicates are kept.
//
// Example:
//
//	SplitArtists("A featuring B")  // ["A", "B"]
//	SplitArtists("A and B and C")  // ["A", "B", "C"]
//	SplitArtists("Brandy")         // ["Brandy"]
func SplitArtists(credit string) []string {
	if strings.Contains(credit, FeaturingToken) {
		credit = strings.ReplaceAll(credit, FeaturingToken, "and")
	}

	if !strings.Contains(credit, CollaborationDelimiter) {
		if name := strings.TrimSpace(credit); name != "" {
			return []string{name}
		}
		return nil
	}

	var names []string
	for _, segment := range strings.Split(credit, CollaborationDelimiter) {
		if name := strings.TrimSpace(segment); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ArtistUniverse returns the deduplicated names of every credit, sorted ascending.
func ArtistUniverse(credits []string) []string {
	seen := make(map[string]struct{})
	for _, credit := range credits {
		for _, name := range SplitArtists(credit) {
			seen[name] = struct{}{}
		}
	}

	universe := make([]string, 0, len(seen))
	for name := range seen {
		universe = append(universe, name)
	}
	sort.Strings(universe)
	return universe
}
