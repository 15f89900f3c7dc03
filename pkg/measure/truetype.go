package measure

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// fallbackFonts are tried in order when no explicit font path is
// given. DejaVu ships with most Linux distributions; the others cover
// macOS and Windows.
var fallbackFonts = []string{
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"Arial.ttf",
	"Helvetica.ttc",
}

// TrueType measures words with real font metrics and hands out
// [font.Face] values for raster rendering. Faces are cached per size
// and must be released with Close when the run ends.
type TrueType struct {
	font  *truetype.Font
	faces map[int]font.Face
}

// LoadFont parses the TrueType font at path. An empty path searches
// the system font directories for a known sans-serif fallback. A
// missing or unparsable font is a fatal error for the caller: without
// metrics no layout can be computed.
func LoadFont(path string) (*TrueType, error) {
	if path == "" {
		found, err := findFallback()
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &TrueType{font: f, faces: make(map[int]font.Face)}, nil
}

func findFallback() (string, error) {
	for _, name := range fallbackFonts {
		if path, err := findfont.Find(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no usable font found (tried %v); pass an explicit font path", fallbackFonts)
}

// Measure implements Measurer using the font's advance widths and
// vertical metrics.
func (t *TrueType) Measure(word string, size int) (float64, float64, error) {
	if size <= 0 {
		return 0, 0, fmt.Errorf("invalid font size %d", size)
	}
	face := t.Face(size)
	adv := font.MeasureString(face, word)
	m := face.Metrics()
	return float64(adv) / 64, float64(m.Ascent+m.Descent) / 64, nil
}

// Face returns a cached rendering face for the given pixel size.
// The face is owned by the TrueType instance; callers must not close
// it themselves.
func (t *TrueType) Face(size int) font.Face {
	if f, ok := t.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(t.font, &truetype.Options{
		Size: float64(size),
		DPI:  72,
	})
	t.faces[size] = f
	return f
}

// Close releases all cached faces. Safe to call multiple times and on
// every exit path, including after measurement failures.
func (t *TrueType) Close() error {
	var first error
	for size, f := range t.faces {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(t.faces, size)
	}
	return first
}

var _ Measurer = (*TrueType)(nil)
var _ Measurer = FixedRatio{}
