package ui

import (
	"log/slog"

	"Sketcher/internal/applog"
	"Sketcher/internal/config"
	"Sketcher/internal/render"
	"Sketcher/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// Sketchpad is the assembled main window and the parts behind it.
type Sketchpad struct {
	Window   fyne.Window
	Board    *BoardWidget
	Chrome   *Chrome
	Sketcher *state.Sketcher
	Raster   *render.Raster
}

// NewSketchpad builds the main window on a for the given config.
func NewSketchpad(a fyne.App, cfg config.Config, log *slog.Logger) *Sketchpad {
	raster := render.NewRaster(cfg.CanvasWidth, cfg.CanvasHeight, applog.WithComponent(log, "render"))
	sk := state.NewSketcher(raster, cfg.CanvasWidth, cfg.CanvasHeight, cfg.StampText, applog.WithComponent(log, "state"))

	board := NewBoardWidget(sk, raster.Image())
	chrome := NewChrome(sk, board, cfg.StampColumns, applog.WithComponent(log, "ui"))

	w := a.NewWindow(cfg.WindowTitle)
	w.SetMainMenu(chrome.MainMenu)
	w.SetContent(container.NewBorder(nil, chrome.Bottom, nil, nil, board))
	w.SetFixedSize(true)

	return &Sketchpad{
		Window:   w,
		Board:    board,
		Chrome:   chrome,
		Sketcher: sk,
		Raster:   raster,
	}
}

// RunApp opens the sketch window and blocks until it is closed.
func RunApp(cfg config.Config, log *slog.Logger) {
	l := applog.WithComponent(log, "ui")
	myApp := app.New()
	pad := NewSketchpad(myApp, cfg, log)

	l.Info("showing window", slog.String("title", cfg.WindowTitle),
		slog.Int("width", cfg.CanvasWidth), slog.Int("height", cfg.CanvasHeight))
	pad.Window.ShowAndRun()
	l.Info("window closed")
}
