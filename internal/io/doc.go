// Package ioutils provides the file boundary of spotify-analysis.
//
// This package contains functions for:
//   - Reading the CSV dataset and checking its columns
//   - Encoding the report as indented JSON
//   - Writing several output files atomically
//   - Directory creation
//
// # Reading the Dataset
//
//	rows, err := ioutils.ReadDataset(ctx, "spotify_songs_top_100.csv", model.DefaultStreamsColumn)
//	var schemaErr *model.SchemaError
//	if errors.As(err, &schemaErr) {
//	    // a required column is missing
//	}
//
// # Writing Outputs
//
// CommitFiles writes every file to a temporary sibling first and renames
// them into place only when all writes succeeded:
//
//	err := ioutils.CommitFiles(ctx,
//	    ioutils.File{Path: "report.json", Data: reportJSON},
//	    ioutils.File{Path: "chart.png", Data: chartPNG},
//	)
package ioutils
