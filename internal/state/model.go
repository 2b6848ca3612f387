package state

import (
	"errors"
	"image/color"
	"strconv"
)

// ErrUnknownOption is returned when a setter gets a value outside its group.
var ErrUnknownOption = errors.New("unknown option")

type Point struct{ X, Y float32 }

// Area is an axis-aligned rectangle on the canvas.
type Area struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

type Tool int

const (
	ToolDraw Tool = iota
	ToolStamp
	ToolBurst
)

// Tools lists every tool in menu order.
var Tools = []Tool{ToolDraw, ToolStamp, ToolBurst}

func (t Tool) String() string {
	switch t {
	case ToolDraw:
		return "Draw Curve"
	case ToolStamp:
		return "Stamp Text"
	case ToolBurst:
		return "Burst"
	default:
		return "Tool(" + strconv.Itoa(int(t)) + ")"
	}
}

func (t Tool) Valid() bool {
	return t >= ToolDraw && t <= ToolBurst
}

// PaletteColor is one of the fixed colors offered for strokes and text.
type PaletteColor int

const (
	Black PaletteColor = iota
	Red
	Green
	Blue
	Orange
	Yellow
	Brown
)

// Palette lists every color in menu order.
var Palette = []PaletteColor{Black, Red, Green, Blue, Orange, Yellow, Brown}

var paletteNames = [...]string{"Black", "Red", "Green", "Blue", "Orange", "Yellow", "Brown"}

var paletteRGBA = [...]color.NRGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 128, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 165, G: 42, B: 42, A: 255},
}

func (c PaletteColor) Valid() bool {
	return c >= Black && c <= Brown
}

func (c PaletteColor) String() string {
	if !c.Valid() {
		return "PaletteColor(" + strconv.Itoa(int(c)) + ")"
	}
	return paletteNames[c]
}

// Color returns the concrete color; invalid values render black.
func (c PaletteColor) Color() color.NRGBA {
	if !c.Valid() {
		return paletteRGBA[Black]
	}
	return paletteRGBA[c]
}

// StrokeWidth is a line width in canvas units.
type StrokeWidth int

// StrokeWidths lists every selectable width in menu order.
var StrokeWidths = []StrokeWidth{1, 2, 5, 10, 20}

func (w StrokeWidth) Valid() bool {
	for _, v := range StrokeWidths {
		if v == w {
			return true
		}
	}
	return false
}

func (w StrokeWidth) String() string { return strconv.Itoa(int(w)) }

// FontSize is a stamp text size in points.
type FontSize int

// FontSizes lists every selectable size in menu order.
var FontSizes = []FontSize{12, 24, 36}

func (s FontSize) Valid() bool {
	for _, v := range FontSizes {
		if v == s {
			return true
		}
	}
	return false
}

func (s FontSize) String() string { return strconv.Itoa(int(s)) }

// StrokeStyle applies to freehand and burst segments.
type StrokeStyle struct {
	Color PaletteColor
	Width StrokeWidth
}

// TextStyle applies to stamped text.
type TextStyle struct {
	Color PaletteColor
	Size  FontSize
}

var (
	DefaultStrokeStyle = StrokeStyle{Color: Black, Width: 1}
	DefaultTextStyle   = TextStyle{Color: Black, Size: 12}
)
