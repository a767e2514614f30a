// Package chart draws the songs-per-year bar chart.
//
// The chart is rasterized with golang.org/x/image: bars, grid and axes are
// filled with draw, labels use the basicfont bitmap face, and the finished
// canvas is scaled to the configured size with Catmull-Rom interpolation.
//
//	r := chart.NewRenderer(chart.DefaultConfig())
//	data, err := r.Encode(ctx, report.SongsPerYear, chart.FormatPNG)
//	os.WriteFile("spotify_songs_by_year.png", data, 0644)
//
// Years run along the x axis in ascending order with vertical labels; the
// y axis counts songs with integer ticks and a light horizontal grid.
package chart
