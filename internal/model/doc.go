// Package model defines the core data structures used throughout
// the spotify-analysis application.
//
// # Rows and Songs
//
// Row is one raw record exactly as read from the dataset. Song is the same
// record after its release date and stream count have been normalized:
//
//	row := model.Row{Song: "Shape of You", Artist: "Ed Sheeran", ReleaseDate: "6 January 2017", Streams: "3,56"}
//	song := model.Song{Title: row.Song, Artist: row.Artist, ReleaseDate: released, Streams: 3.56}
//	fmt.Println(song.Year()) // 2017
//
// # Report
//
// Report holds the analytical views produced by a run. It serializes to a
// JSON object with exactly three entries, in this order:
//
//	{
//	    "Ed Sheeran songs": [...],
//	    "3 oldest songs": [...],
//	    "Artists total streams (Billions)": {...}
//	}
//
// StreamTotals keeps artist totals as an ordered slice so the serialized
// mapping preserves ascending key order.
//
// # Errors
//
// ParseError reports a date or stream value that could not be normalized.
// SchemaError reports required dataset columns that are missing.
package model
