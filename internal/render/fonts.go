package render

import (
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontCache hands out one face per point size, all cut from the same font.
// When the font cannot be loaded every size gets the fixed bitmap face.
type fontCache struct {
	font  *opentype.Font
	faces map[float32]font.Face
	log   *slog.Logger
}

func newFontCache(ttf []byte, log *slog.Logger) *fontCache {
	fc := &fontCache{faces: make(map[float32]font.Face), log: log}
	f, err := opentype.Parse(ttf)
	if err != nil {
		log.Warn("font unavailable, using bitmap fallback", slog.Any("err", err))
		return fc
	}
	fc.font = f
	return fc
}

func newDefaultFontCache(log *slog.Logger) *fontCache {
	return newFontCache(goregular.TTF, log)
}

func (fc *fontCache) face(size float32) font.Face {
	if face, ok := fc.faces[size]; ok {
		return face
	}
	var face font.Face = basicfont.Face7x13
	if fc.font != nil {
		f, err := opentype.NewFace(fc.font, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			fc.log.Warn("font face failed, using bitmap fallback",
				slog.Float64("size", float64(size)), slog.Any("err", err))
		} else {
			face = f
		}
	}
	fc.faces[size] = face
	return face
}
