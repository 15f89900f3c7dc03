package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/wordspin/pkg/cloud"
)

// defaultFontFamily matches the sans-serif metrics the measurement
// layer assumes.
const defaultFontFamily = "DejaVu Sans, Helvetica, Arial, sans-serif"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background string
	fontFamily string
	boxes      bool
}

// WithSVGBackground fills the canvas with the given color before any
// word is drawn. Empty means a transparent background.
func WithSVGBackground(hex string) SVGOption {
	return func(r *svgRenderer) { r.background = hex }
}

// WithSVGFontFamily overrides the CSS font-family on the word texts.
func WithSVGFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// WithSVGBoxes draws each placement's bounding box as a faint outline.
// Debugging aid for packing density.
func WithSVGBoxes() SVGOption {
	return func(r *svgRenderer) { r.boxes = true }
}

// RenderSVG renders the placements as a standalone SVG document.
// Words are anchored at their rectangle centers; vertical words are
// rotated a quarter turn around that center.
func RenderSVG(c cloud.Canvas, placements []cloud.Placement, opts ...SVGOption) []byte {
	r := svgRenderer{fontFamily: defaultFontFamily}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.Width, c.Height, c.Width, c.Height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			c.Width, c.Height, escapeXML(r.background))
	}

	fmt.Fprintf(&buf, `  <g font-family="%s" text-anchor="middle" dominant-baseline="central">`+"\n",
		escapeXML(r.fontFamily))

	for _, p := range placements {
		cx, cy := p.Rect.CenterX(), p.Rect.CenterY()

		if r.boxes {
			fmt.Fprintf(&buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#cccccc" stroke-width="0.5"/>`+"\n",
				p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H)
		}

		rotate := ""
		if p.Orientation == cloud.Vertical {
			rotate = fmt.Sprintf(` transform="rotate(90 %.2f %.2f)"`, cx, cy)
		}
		fmt.Fprintf(&buf, `    <text x="%.2f" y="%.2f" font-size="%d" fill="%s"%s>%s</text>`+"\n",
			cx, cy, p.Size, escapeXML(p.Color), rotate, escapeXML(p.Word))
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

// escapeXML escapes text for safe embedding in SVG markup.
func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
