package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/matzehuels/wordspin/pkg/cloud"
	"github.com/matzehuels/wordspin/pkg/measure"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	background string
}

// WithPNGBackground fills the canvas with the given color before any
// word is drawn. Empty means white: PNG has no transparent default
// that reads well in image viewers.
func WithPNGBackground(hex string) PNGOption {
	return func(r *pngRenderer) { r.background = hex }
}

// RenderPNG rasterizes the placements using faces from the given font.
// The font stays owned by the caller, who must Close it when the run
// ends; the drawing context itself holds no OS resources beyond the
// pixel buffer.
func RenderPNG(c cloud.Canvas, placements []cloud.Placement, fnt *measure.TrueType, opts ...PNGOption) ([]byte, error) {
	if fnt == nil {
		return nil, fmt.Errorf("png: no font loaded")
	}

	r := pngRenderer{background: "#ffffff"}
	for _, opt := range opts {
		opt(&r)
	}

	dc := gg.NewContext(int(c.Width), int(c.Height))
	dc.SetHexColor(r.background)
	dc.Clear()

	for _, p := range placements {
		dc.SetHexColor(p.Color)
		dc.SetFontFace(fnt.Face(p.Size))

		cx, cy := p.Rect.CenterX(), p.Rect.CenterY()
		if p.Orientation == cloud.Vertical {
			dc.Push()
			dc.RotateAbout(gg.Radians(90), cx, cy)
			dc.DrawStringAnchored(p.Word, cx, cy, 0.5, 0.5)
			dc.Pop()
			continue
		}
		dc.DrawStringAnchored(p.Word, cx, cy, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
