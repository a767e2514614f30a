package chart

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/handiism/spotify-analysis/internal/model"
)

// Plot margins in base pixels.
const (
	marginLeft   = 70
	marginRight  = 20
	marginTop    = 50
	marginBottom = 80

	// minTickSpacing keeps y tick labels from overlapping.
	minTickSpacing = 16

	// barFill is the share of each year slot covered by its bar.
	barFill = 0.8
)

var (
	black     = color.RGBA{A: 0xFF}
	white     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	gridColor = color.RGBA{R: 0xB3, G: 0xB3, B: 0xB3, A: 0xFF}
)

// Renderer draws bar charts of songs per release year.
//
// Renderer is safe for concurrent use; it keeps no state between calls.
type Renderer struct {
	cfg  *Config
	face font.Face
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(cfg *Config) *Renderer {
	return &Renderer{
		cfg:  cfg,
		face: basicfont.Face7x13,
	}
}

// Encode renders the histogram and encodes it in the given format.
func (r *Renderer) Encode(ctx context.Context, histogram []model.YearCount, format Format) ([]byte, error) {
	img, err := r.Render(ctx, histogram)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Render draws the chart. The histogram must be ordered by year; each
// entry becomes one bar in the given order.
func (r *Renderer) Render(ctx context.Context, histogram []model.YearCount) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, baseWidth, baseHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)

	plot := image.Rect(marginLeft, marginTop, baseWidth-marginRight, baseHeight-marginBottom)

	maxCount := 1
	for _, yc := range histogram {
		if yc.Count > maxCount {
			maxCount = yc.Count
		}
	}

	r.drawGrid(canvas, plot, maxCount)
	r.drawBars(canvas, plot, histogram, maxCount)
	r.drawAxes(canvas, plot)
	r.drawLabels(canvas, plot)

	return r.scale(canvas), nil
}

// yFor maps a count to a canvas row inside plot.
func yFor(plot image.Rectangle, count, maxCount int) int {
	return plot.Max.Y - count*plot.Dy()/maxCount
}

// tickStep is the smallest integer step that keeps ticks minTickSpacing apart.
func tickStep(plot image.Rectangle, maxCount int) int {
	step := 1
	for step*plot.Dy()/maxCount < minTickSpacing && step < maxCount {
		step++
	}
	return step
}

func (r *Renderer) drawGrid(dst *image.RGBA, plot image.Rectangle, maxCount int) {
	step := tickStep(plot, maxCount)
	for count := 0; count <= maxCount; count += step {
		y := yFor(plot, count, maxCount)
		fill(dst, image.Rect(plot.Min.X, y, plot.Max.X, y+1), gridColor)

		label := strconv.Itoa(count)
		width := font.MeasureString(r.face, label).Ceil()
		r.drawText(dst, label, plot.Min.X-8-width, y+r.ascent()/2, black)
		fill(dst, image.Rect(plot.Min.X-4, y, plot.Min.X, y+1), black)
	}
}

func (r *Renderer) drawBars(dst *image.RGBA, plot image.Rectangle, histogram []model.YearCount, maxCount int) {
	if len(histogram) == 0 {
		return
	}

	slot := float64(plot.Dx()) / float64(len(histogram))
	barWidth := int(slot * barFill)
	if barWidth < 1 {
		barWidth = 1
	}

	for i, yc := range histogram {
		center := plot.Min.X + int(slot*(float64(i)+0.5))
		bar := image.Rect(center-barWidth/2, yFor(plot, yc.Count, maxCount), center-barWidth/2+barWidth, plot.Max.Y)

		if yc.Count > 0 {
			fill(dst, bar, r.cfg.BarColor)
			outline(dst, bar, black)
		}

		fill(dst, image.Rect(center, plot.Max.Y, center+1, plot.Max.Y+4), black)

		label := r.rotatedText(yc.Label())
		at := image.Pt(center-label.Bounds().Dx()/2, plot.Max.Y+6)
		draw.Draw(dst, label.Bounds().Add(at), label, image.Point{}, draw.Over)
	}
}

func (r *Renderer) drawAxes(dst *image.RGBA, plot image.Rectangle) {
	fill(dst, image.Rect(plot.Min.X, plot.Min.Y, plot.Min.X+1, plot.Max.Y+1), black)
	fill(dst, image.Rect(plot.Min.X, plot.Max.Y, plot.Max.X, plot.Max.Y+1), black)
}

func (r *Renderer) drawLabels(dst *image.RGBA, plot image.Rectangle) {
	// Title is drawn twice, one pixel apart, for a bold weight.
	titleX := (baseWidth - font.MeasureString(r.face, r.cfg.Title).Ceil()) / 2
	r.drawText(dst, r.cfg.Title, titleX, marginTop/2+r.ascent()/2, black)
	r.drawText(dst, r.cfg.Title, titleX+1, marginTop/2+r.ascent()/2, black)

	xLabelX := plot.Min.X + (plot.Dx()-font.MeasureString(r.face, r.cfg.XLabel).Ceil())/2
	r.drawText(dst, r.cfg.XLabel, xLabelX, baseHeight-12, black)

	yLabel := r.rotatedText(r.cfg.YLabel)
	at := image.Pt(12, plot.Min.Y+(plot.Dy()-yLabel.Bounds().Dy())/2)
	draw.Draw(dst, yLabel.Bounds().Add(at), yLabel, image.Point{}, draw.Over)
}

func (r *Renderer) ascent() int {
	return r.face.Metrics().Ascent.Ceil()
}

func (r *Renderer) drawText(dst draw.Image, s string, x, baseline int, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// rotatedText renders s in black on a transparent background, rotated a
// quarter turn counter-clockwise so it reads bottom to top.
func (r *Renderer) rotatedText(s string) *image.RGBA {
	width := font.MeasureString(r.face, s).Ceil()
	height := r.face.Metrics().Height.Ceil()

	flat := image.NewRGBA(image.Rect(0, 0, width, height))
	r.drawText(flat, s, 0, r.ascent(), black)

	rotated := image.NewRGBA(image.Rect(0, 0, height, width))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rotated.Set(y, width-1-x, flat.At(x, y))
		}
	}
	return rotated
}

// scale fits the base canvas inside the configured size, keeping the aspect ratio.
func (r *Renderer) scale(src *image.RGBA) image.Image {
	width, height := r.cfg.Width, r.cfg.Height
	if width <= 0 || height <= 0 || (width == baseWidth && height == baseHeight) {
		return src
	}

	if width*baseHeight > height*baseWidth {
		width = height * baseWidth / baseHeight
	} else {
		height = width * baseHeight / baseWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func fill(dst draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

func outline(dst draw.Image, rect image.Rectangle, c color.Color) {
	fill(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1), c)
	fill(dst, image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y), c)
	fill(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y), c)
	fill(dst, image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y), c)
}
