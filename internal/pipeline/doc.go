// Package pipeline runs the Spotify top songs analysis from dataset to
// output files.
//
// # Runner
//
// The Runner coordinates a full run:
//
//  1. Read the CSV dataset and check its columns
//  2. Normalize release dates, then stream counts
//  3. Build the report views
//  4. Encode the JSON report and render the chart concurrently
//  5. Commit both files atomically
//
// # Basic Usage
//
//	runner := pipeline.NewRunner(settings, func(event pipeline.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := runner.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Analyze performs steps 1 to 3 only and writes nothing, which is what
// dry runs and the interactive viewer use.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// # Failure
//
// Any failure aborts the run. Because outputs are rendered in memory and
// committed together, a failed run never leaves a report or chart behind.
package pipeline
