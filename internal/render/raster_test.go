package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"Sketcher/internal/applog"
	"Sketcher/internal/state"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func newWhiteRaster(t *testing.T, w, h int) *Raster {
	t.Helper()
	r := NewRaster(w, h, applog.Discard())
	r.FillRect(state.Area{Width: float32(w), Height: float32(h)}, color.White)
	return r
}

func countWhere(img *image.RGBA, area image.Rectangle, pred func(color.RGBA) bool) int {
	n := 0
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if pred(img.RGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}

func TestFillRectCoversWholeRaster(t *testing.T) {
	r := newWhiteRaster(t, 40, 30)
	img := r.Image()
	assert.Equal(t, 40*30, countWhere(img, img.Bounds(), func(c color.RGBA) bool { return c == white }))
}

func TestFillRectClipsToBounds(t *testing.T) {
	r := newWhiteRaster(t, 20, 20)
	assert.NotPanics(t, func() {
		r.FillRect(state.Area{X: -5, Y: -5, Width: 100, Height: 100}, blue)
	})
	assert.Equal(t, color.RGBA{B: 255, A: 255}, r.Image().RGBAAt(19, 19))
}

func TestDrawLinePaintsStrokeColor(t *testing.T) {
	r := newWhiteRaster(t, 100, 100)
	r.DrawLine(state.Point{X: 10, Y: 50}, state.Point{X: 90, Y: 50}, red, 5)

	img := r.Image()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(50, 50))
	assert.Equal(t, white, img.RGBAAt(50, 10), "pixels away from the line stay white")
}

func TestDrawLineWidthControlsThickness(t *testing.T) {
	thin := newWhiteRaster(t, 100, 100)
	thin.DrawLine(state.Point{X: 10, Y: 50}, state.Point{X: 90, Y: 50}, red, 1)
	thick := newWhiteRaster(t, 100, 100)
	thick.DrawLine(state.Point{X: 10, Y: 50}, state.Point{X: 90, Y: 50}, red, 20)

	notWhite := func(c color.RGBA) bool { return c != white }
	b := image.Rect(0, 0, 100, 100)
	assert.Greater(t,
		countWhere(thick.Image(), b, notWhite),
		countWhere(thin.Image(), b, notWhite)*5)
}

func TestDrawLineRoundCapExtendsPastEndpoint(t *testing.T) {
	r := newWhiteRaster(t, 100, 100)
	r.DrawLine(state.Point{X: 30, Y: 50}, state.Point{X: 70, Y: 50}, red, 20)

	// a butt cap would stop at x=70
	assert.Equal(t, color.RGBA{R: 255, A: 255}, r.Image().RGBAAt(75, 50))
}

func TestDrawLineZeroLengthLeavesDot(t *testing.T) {
	r := newWhiteRaster(t, 50, 50)
	r.DrawLine(state.Point{X: 25, Y: 25}, state.Point{X: 25, Y: 25}, red, 10)

	assert.NotEqual(t, white, r.Image().RGBAAt(25, 25))
}

func TestLaterStrokesLeaveEarlierPixels(t *testing.T) {
	r := newWhiteRaster(t, 100, 100)
	r.DrawLine(state.Point{X: 10, Y: 20}, state.Point{X: 90, Y: 20}, red, 5)
	r.DrawLine(state.Point{X: 10, Y: 80}, state.Point{X: 90, Y: 80}, blue, 10)

	img := r.Image()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(50, 20))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(50, 80))
}

func TestDrawTextMarksPixelsInTextColor(t *testing.T) {
	r := newWhiteRaster(t, 300, 100)
	r.DrawText("Hello World", state.Point{X: 20, Y: 60}, red, 36)

	img := r.Image()
	above := image.Rect(20, 20, 300, 62)
	inked := countWhere(img, above, func(c color.RGBA) bool { return c != white })
	assert.Greater(t, inked, 50)

	reddish := countWhere(img, above, func(c color.RGBA) bool { return c.R == 255 && c.G < 200 })
	assert.Greater(t, reddish, 0)

	left := image.Rect(0, 0, 15, 100)
	assert.Zero(t, countWhere(img, left, func(c color.RGBA) bool { return c != white }),
		"text starts at the press point")
}

func TestDrawTextSizesDiffer(t *testing.T) {
	small := newWhiteRaster(t, 400, 100)
	small.DrawText("Hello World", state.Point{X: 10, Y: 60}, red, 12)
	large := newWhiteRaster(t, 400, 100)
	large.DrawText("Hello World", state.Point{X: 10, Y: 60}, red, 36)

	notWhite := func(c color.RGBA) bool { return c != white }
	b := image.Rect(0, 0, 400, 100)
	assert.Greater(t, countWhere(large.Image(), b, notWhite), countWhere(small.Image(), b, notWhite))
}

func TestFontCacheReusesFaces(t *testing.T) {
	fc := newDefaultFontCache(applog.Discard())
	require.NotNil(t, fc.font)
	assert.Same(t, fc.face(24), fc.face(24))
	assert.NotSame(t, fc.face(12), fc.face(24))
}

func TestFontCacheFallsBackOnBadFont(t *testing.T) {
	fc := newFontCache([]byte("not a font"), applog.Discard())
	assert.Nil(t, fc.font)
	assert.Equal(t, basicfont.Face7x13, fc.face(24))
}
