package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"slices"
	"strings"

	"Sketcher/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var (
	barBackground = color.NRGBA{R: 211, G: 211, B: 211, A: 255} // light gray
	barBorder     = color.Black
)

const (
	barPadding = 5
	barSpacing = 15
)

// --- Radio menus ---

// radioGroup is a menu whose items behave like radio buttons: exactly one
// is checked at a time.
type radioGroup struct {
	menu  *fyne.Menu
	items []*fyne.MenuItem
}

func newRadioGroup(title string, labels []string, selected int, onSelect func(i int)) *radioGroup {
	g := &radioGroup{}
	for i, label := range labels {
		item := fyne.NewMenuItem(label, nil)
		item.Action = func() {
			g.Select(i)
			onSelect(i)
		}
		g.items = append(g.items, item)
	}
	g.menu = fyne.NewMenu(title, g.items...)
	g.check(selected)
	return g
}

func (g *radioGroup) check(i int) {
	for j, item := range g.items {
		item.Checked = j == i
	}
}

// Select checks item i and unchecks the rest.
func (g *radioGroup) Select(i int) {
	g.check(i)
	g.menu.Refresh()
}

// Selected returns the index of the checked item, or -1.
func (g *radioGroup) Selected() int {
	return slices.IndexFunc(g.items, func(item *fyne.MenuItem) bool { return item.Checked })
}

func labels[T fmt.Stringer](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

// choose builds a radio menu over values, starting at current and calling
// set for every selection.
func choose[T interface {
	comparable
	fmt.Stringer
}](title string, values []T, current T, set func(T) error, log *slog.Logger) *radioGroup {
	return newRadioGroup(title, labels(values), slices.Index(values, current), func(i int) {
		if err := set(values[i]); err != nil {
			log.Error("menu selection failed", slog.String("menu", title), slog.Any("err", err))
		}
	})
}

// --- Chrome ---

// Chrome is the menu bar plus the bottom control bar. Every control
// dispatches straight into the Sketcher.
type Chrome struct {
	MainMenu *fyne.MainMenu
	Bottom   fyne.CanvasObject

	StrokeColor *radioGroup
	TextColor   *radioGroup
	StrokeWidth *radioGroup
	FontSize    *radioGroup
	Tool        *radioGroup

	ClearButton *widget.Button
	StampEntry  *widget.Entry
}

func NewChrome(sk *state.Sketcher, board *BoardWidget, stampColumns int, log *slog.Logger) *Chrome {
	c := &Chrome{}

	c.StrokeColor = choose("CurveColor", state.Palette, sk.StrokeStyle().Color, sk.SetStrokeColor, log)
	c.TextColor = choose("TextColor", state.Palette, sk.TextStyle().Color, sk.SetTextColor, log)
	c.StrokeWidth = choose("CurveWidth", state.StrokeWidths, sk.StrokeStyle().Width, sk.SetStrokeWidth, log)
	c.FontSize = choose("FontSize", state.FontSizes, sk.TextStyle().Size, sk.SetFontSize, log)
	c.Tool = choose("Tool", state.Tools, sk.Tool(), sk.SetTool, log)

	c.MainMenu = fyne.NewMainMenu(
		c.StrokeColor.menu,
		c.TextColor.menu,
		c.StrokeWidth.menu,
		c.FontSize.menu,
		c.Tool.menu,
	)

	c.ClearButton = widget.NewButton("Clear", func() {
		sk.Clear()
		board.Redraw()
	})

	c.StampEntry = widget.NewEntry()
	c.StampEntry.SetText(sk.StampText())
	c.StampEntry.OnChanged = sk.SetStampText

	c.Bottom = c.makeBottom(stampColumns)
	return c
}

func (c *Chrome) makeBottom(stampColumns int) fyne.CanvasObject {
	// Size the entry for stampColumns characters of body text.
	textWidth := fyne.MeasureText(strings.Repeat("m", stampColumns), theme.TextSize(), fyne.TextStyle{}).Width
	entrySize := fyne.NewSize(textWidth+2*theme.InnerPadding(), c.StampEntry.MinSize().Height)

	row := container.New(layout.NewCustomPaddedHBoxLayout(barSpacing),
		c.ClearButton,
		widget.NewLabel("Text for Stamper:"),
		container.NewGridWrap(entrySize, c.StampEntry),
	)

	bg := canvas.NewRectangle(barBackground)
	bg.StrokeColor = barBorder
	bg.StrokeWidth = 1

	return container.NewStack(bg,
		container.New(layout.NewCustomPaddedLayout(barPadding, barPadding, barPadding, barPadding),
			container.NewCenter(row)))
}
