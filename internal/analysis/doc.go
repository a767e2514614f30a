// Package analysis derives the report views from a dataset.
//
// # Report Builder
//
// BuildReport normalizes every row and assembles a model.Report:
//
//	report, err := analysis.BuildReport(rows, analysis.DefaultOptions())
//	if err != nil {
//	    // *model.ParseError: no partial report is produced
//	}
//
// # Aggregation
//
// ArtistTotals sums stream counts per individual artist. A collaboration
// row counts in full for every participant. By default rows are matched by
// substring against the raw credit (MatchSubstring), so a short name that
// appears inside another credit also collects that row. MatchExact
// switches to membership in the split credit.
//
// # Views
//
//   - SongsByArtist: songs whose credit contains a substring, in dataset order
//   - OldestSongs: the k earliest releases, ties kept in dataset order
//   - SongsPerYear: release-year histogram for the chart
package analysis
