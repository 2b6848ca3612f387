package state

import (
	"fmt"
	"image/color"
	"log/slog"
)

// Surface is the drawing capability the Sketcher paints onto.
type Surface interface {
	DrawLine(from, to Point, c color.Color, width float32)
	DrawText(s string, at Point, c color.Color, size float32)
	FillRect(a Area, c color.Color)
}

// Background is the color the canvas starts with and Clear restores.
var Background color.Color = color.White

// Sketcher interprets pointer gestures with the active tool and draws them
// immediately onto its Surface. It is driven from a single event goroutine.
type Sketcher struct {
	surface Surface
	bounds  Area
	log     *slog.Logger

	tool      Tool
	stroke    StrokeStyle
	text      TextStyle
	stampText string

	// gesture state
	active bool
	prev   Point // last freehand sample
	anchor Point // burst press point
}

// NewSketcher returns a Sketcher with default selections and clears the
// surface to Background.
func NewSketcher(s Surface, width, height int, stampText string, log *slog.Logger) *Sketcher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	sk := &Sketcher{
		surface:   s,
		bounds:    Area{Width: float32(width), Height: float32(height)},
		log:       log,
		tool:      ToolDraw,
		stroke:    DefaultStrokeStyle,
		text:      DefaultTextStyle,
		stampText: stampText,
	}
	sk.surface.FillRect(sk.bounds, Background)
	return sk
}

func (sk *Sketcher) Tool() Tool               { return sk.tool }
func (sk *Sketcher) StrokeStyle() StrokeStyle { return sk.stroke }
func (sk *Sketcher) TextStyle() TextStyle     { return sk.text }
func (sk *Sketcher) StampText() string        { return sk.stampText }
func (sk *Sketcher) Bounds() Area             { return sk.bounds }

// PointerDown starts a gesture at p.
func (sk *Sketcher) PointerDown(p Point) {
	sk.active = true
	switch sk.tool {
	case ToolDraw:
		sk.prev = p
	case ToolStamp:
		sk.surface.DrawText(sk.stampText, p, sk.text.Color.Color(), float32(sk.text.Size))
	case ToolBurst:
		sk.anchor = p
	}
}

// PointerDrag continues the active gesture to p. A drag with no gesture in
// progress starts one at p without drawing.
func (sk *Sketcher) PointerDrag(p Point) {
	if sk.tool == ToolStamp {
		return
	}
	if !sk.active {
		sk.PointerDown(p)
		return
	}
	c, w := sk.stroke.Color.Color(), float32(sk.stroke.Width)
	switch sk.tool {
	case ToolDraw:
		sk.surface.DrawLine(sk.prev, p, c, w)
		sk.prev = p
	case ToolBurst:
		sk.surface.DrawLine(p, sk.anchor, c, w)
	}
}

// PointerUp ends the active gesture.
func (sk *Sketcher) PointerUp() {
	sk.active = false
}

func (sk *Sketcher) SetTool(t Tool) error {
	if !t.Valid() {
		return sk.reject("tool", t)
	}
	sk.tool = t
	sk.log.Debug("tool selected", slog.String("tool", t.String()))
	return nil
}

func (sk *Sketcher) SetStrokeColor(c PaletteColor) error {
	if !c.Valid() {
		return sk.reject("stroke color", c)
	}
	sk.stroke.Color = c
	sk.log.Debug("stroke color selected", slog.String("color", c.String()))
	return nil
}

func (sk *Sketcher) SetStrokeWidth(w StrokeWidth) error {
	if !w.Valid() {
		return sk.reject("stroke width", w)
	}
	sk.stroke.Width = w
	sk.log.Debug("stroke width selected", slog.Int("width", int(w)))
	return nil
}

func (sk *Sketcher) SetTextColor(c PaletteColor) error {
	if !c.Valid() {
		return sk.reject("text color", c)
	}
	sk.text.Color = c
	sk.log.Debug("text color selected", slog.String("color", c.String()))
	return nil
}

func (sk *Sketcher) SetFontSize(s FontSize) error {
	if !s.Valid() {
		return sk.reject("font size", s)
	}
	sk.text.Size = s
	sk.log.Debug("font size selected", slog.Int("size", int(s)))
	return nil
}

// SetStampText replaces the string placed by the stamp tool.
func (sk *Sketcher) SetStampText(s string) {
	sk.stampText = s
}

// Clear paints the whole canvas with Background.
func (sk *Sketcher) Clear() {
	sk.surface.FillRect(sk.bounds, Background)
	sk.log.Info("canvas cleared")
}

func (sk *Sketcher) reject(group string, v fmt.Stringer) error {
	err := fmt.Errorf("%s %s: %w", group, v, ErrUnknownOption)
	sk.log.Warn("option rejected", slog.Any("err", err))
	return err
}
