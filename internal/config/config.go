package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrInvalid is returned by Validate for any unusable setting.
var ErrInvalid = errors.New("invalid config")

const (
	CanvasWidth  = 800
	CanvasHeight = 600

	WindowTitle      = "Sketcher: Draw on a Canvas"
	DefaultStampText = "Hello World"

	// StampColumns is how many characters the stamp entry is sized for.
	StampColumns = 30
)

// Config holds the compiled-in settings of one Sketcher run.
type Config struct {
	CanvasWidth  int
	CanvasHeight int
	WindowTitle  string
	StampText    string
	StampColumns int
	LogLevel     slog.Level
}

func Default() Config {
	return Config{
		CanvasWidth:  CanvasWidth,
		CanvasHeight: CanvasHeight,
		WindowTitle:  WindowTitle,
		StampText:    DefaultStampText,
		StampColumns: StampColumns,
		LogLevel:     slog.LevelInfo,
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.CanvasWidth, c.CanvasHeight)
	}
	if c.WindowTitle == "" {
		return fmt.Errorf("%w: empty window title", ErrInvalid)
	}
	if c.StampColumns <= 0 {
		return fmt.Errorf("%w: stamp columns %d", ErrInvalid, c.StampColumns)
	}
	return nil
}
