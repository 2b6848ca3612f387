package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sketcher/internal/applog"
	"Sketcher/internal/config"

	"fyne.io/fyne/v2/test"
)

func TestNewSketchpad(t *testing.T) {
	a := test.NewTempApp(t)
	cfg := config.Default()

	pad := NewSketchpad(a, cfg, applog.Discard())
	t.Cleanup(pad.Window.Close)

	assert.Equal(t, "Sketcher: Draw on a Canvas", pad.Window.Title())
	assert.True(t, pad.Window.FixedSize())
	require.NotNil(t, pad.Window.MainMenu())
	assert.Len(t, pad.Window.MainMenu().Items, 5)
	assert.Equal(t, "Hello World", pad.Chrome.StampEntry.Text)

	img := pad.Raster.Image()
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
	assert.Equal(t, uint8(255), img.RGBAAt(400, 300).R, "canvas starts white")
}
