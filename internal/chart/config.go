package chart

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"
)

// Base canvas size. Layout constants below are in base pixels.
const (
	baseWidth  = 800
	baseHeight = 600
)

// Config holds the chart's visual settings.
type Config struct {
	// Width and Height bound the output image. The chart keeps the base
	// 4:3 aspect ratio and is scaled to fit inside them.
	Width  int
	Height int

	Title  string
	XLabel string
	YLabel string

	// BarColor fills the bars; bars always get a black edge.
	BarColor color.RGBA
}

// DefaultConfig returns the standard Spotify green chart at 800x600.
func DefaultConfig() *Config {
	return &Config{
		Width:    baseWidth,
		Height:   baseHeight,
		Title:    "Popular Spotify songs by release year",
		XLabel:   "Release year",
		YLabel:   "Number of popular songs",
		BarColor: color.RGBA{R: 0x1D, G: 0xB9, B: 0x54, A: 0xFF},
	}
}

// Format is an output image encoding.
type Format int

const (
	// FormatPNG is lossless and the default.
	FormatPNG Format = iota

	// FormatJPEG is encoded at quality 90.
	FormatJPEG
)

// FormatFromPath picks the encoding from a file extension.
// Unknown extensions fall back to PNG.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	default:
		return FormatPNG
	}
}

// ParseHexColor reads "#RRGGBB" or "RRGGBB".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: want #RRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
