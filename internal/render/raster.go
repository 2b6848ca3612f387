// Package render provides the surfaces the sketcher draws onto: an in-memory
// raster for display and a recorder for inspection.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"Sketcher/internal/state"
)

// Raster is a fixed-size RGBA canvas. Lines are anti-aliased with round caps.
type Raster struct {
	img   *image.RGBA
	fonts *fontCache
}

var _ state.Surface = (*Raster)(nil)

func NewRaster(width, height int, log *slog.Logger) *Raster {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		fonts: newDefaultFontCache(log),
	}
}

// Image returns the live backing image. It changes as the raster is drawn on.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) DrawLine(from, to state.Point, c color.Color, width float32) {
	b := r.img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), r.img, b)
	stroker := rasterx.NewStroker(b.Dx(), b.Dy(), scanner)
	stroker.SetStroke(fixed.Int26_6(float64(width)*64), 0,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	stroker.SetColor(c)

	// rasterx caps a zero-length segment as a dot
	stroker.Start(rasterx.ToFixedP(float64(from.X), float64(from.Y)))
	stroker.Line(rasterx.ToFixedP(float64(to.X), float64(to.Y)))
	stroker.Stop(false)
	stroker.Draw()
}

// DrawText places s with its baseline starting at the given point.
func (r *Raster) DrawText(s string, at state.Point, c color.Color, size float32) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.fonts.face(size),
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(float64(at.X) * 64),
			Y: fixed.Int26_6(float64(at.Y) * 64),
		},
	}
	d.DrawString(s)
}

func (r *Raster) FillRect(a state.Area, c color.Color) {
	rect := image.Rect(
		int(math.Floor(float64(a.X))),
		int(math.Floor(float64(a.Y))),
		int(math.Ceil(float64(a.X+a.Width))),
		int(math.Ceil(float64(a.Y+a.Height))),
	)
	draw.Draw(r.img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}
