// Package normalize turns the raw text fields of a dataset row into
// canonical values.
//
// # Dates
//
// ParseDate accepts two encodings and returns a calendar date at midnight UTC:
//
//	normalize.ParseDate("1 January 2020") // 2020-01-01
//	normalize.ParseDate("2.January.19")   // 2019-01-02
//
// Two-digit years are always read as 20YY (see ExpandYear).
//
// # Stream Counts
//
// ParseStreams reads a decimal number written with a comma separator:
//
//	normalize.ParseStreams("1,234") // 1.234
//
// # Artist Credits
//
// SplitArtists decomposes a credit into individual names, and
// ArtistUniverse collects the sorted set of names across many credits:
//
//	normalize.SplitArtists("Ed Sheeran featuring Drake") // [Ed Sheeran Drake]
//
// Every parse failure is a *model.ParseError.
package normalize
