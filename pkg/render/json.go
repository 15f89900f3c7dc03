package render

import (
	"encoding/json"

	"github.com/matzehuels/wordspin/pkg/cloud"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	report *cloud.Report
	seed   uint64
	theme  string
}

// WithJSONReport includes the run summary in the output.
func WithJSONReport(r cloud.Report) JSONOption {
	return func(j *jsonRenderer) { j.report = &r }
}

// WithJSONSeed records the random seed, enabling reproducible
// re-rendering of the same layout.
func WithJSONSeed(seed uint64) JSONOption {
	return func(j *jsonRenderer) { j.seed = seed }
}

// WithJSONTheme records the palette theme name.
func WithJSONTheme(name string) JSONOption {
	return func(j *jsonRenderer) { j.theme = name }
}

type jsonOutput struct {
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Seed   uint64        `json:"seed,omitempty"`
	Theme  string        `json:"theme,omitempty"`
	Words  []jsonWord    `json:"words"`
	Report *cloud.Report `json:"report,omitempty"`
}

type jsonWord struct {
	Word    string  `json:"word"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Size    int     `json:"size"`
	Rotated bool    `json:"rotated,omitempty"`
	Color   string  `json:"color,omitempty"`
}

// RenderJSON exports the layout as a pretty-printed JSON document.
// This is the data interchange format: external tools can re-render
// the exact layout, and the recorded seed allows reproducing it from
// the original text.
func RenderJSON(c cloud.Canvas, placements []cloud.Placement, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	words := make([]jsonWord, 0, len(placements))
	for _, p := range placements {
		words = append(words, jsonWord{
			Word:    p.Word,
			X:       p.Rect.X,
			Y:       p.Rect.Y,
			Width:   p.Rect.W,
			Height:  p.Rect.H,
			Size:    p.Size,
			Rotated: p.Orientation == cloud.Vertical,
			Color:   p.Color,
		})
	}

	out := jsonOutput{
		Width:  c.Width,
		Height: c.Height,
		Seed:   r.seed,
		Theme:  r.theme,
		Words:  words,
		Report: r.report,
	}
	return json.MarshalIndent(out, "", "  ")
}
