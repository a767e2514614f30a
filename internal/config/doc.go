// Package config provides configuration management for spotify-analysis.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to analysis.Options and chart.Config for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get the standard run:
//
//	settings := config.DefaultSettings()
//	// Reads spotify_songs_top_100.csv
//	// Writes spotify_analysis_results.json and spotify_songs_by_year.png
//	// Reports "Ed Sheeran songs" and the 3 oldest songs
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.TargetArtist = "Drake"
//	err := settings.Save("/path/to/config.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Input dataset and output file locations
//   - Target artist and number of oldest songs
//   - Stream column name and unit label
//   - Artist matching mode for totals
//   - Chart size, labels and bar colour
package config
