package cloud

import (
	"fmt"

	"github.com/matzehuels/wordspin/pkg/text"
)

// Report is a read-only summary of one layout run. It aggregates
// frequency statistics and canvas geometry and never mutates engine
// state.
type Report struct {
	UniqueWords  int     `json:"unique_words"`
	MaxCount     int     `json:"max_count"`
	AverageCount float64 `json:"average_count"`
	FontScale    float64 `json:"font_scale"`
	CanvasWidth  float64 `json:"canvas_width"`
	CanvasHeight float64 `json:"canvas_height"`
	AspectX      int     `json:"aspect_x"`
	AspectY      int     `json:"aspect_y"`
	SizedWords   int     `json:"sized_words"`
	PlacedWords  int     `json:"placed_words"`
}

// NewReport summarizes a run. entries is the retained ranked set,
// sized and placed are the counts surviving the sizing and placement
// stages.
func NewReport(c Canvas, entries []text.Entry, scale float64, sized, placed int) Report {
	ax, ay := reduceAspect(int(c.Width), int(c.Height))
	return Report{
		UniqueWords:  len(entries),
		MaxCount:     text.MaxCount(entries),
		AverageCount: text.AverageCount(entries),
		FontScale:    scale,
		CanvasWidth:  c.Width,
		CanvasHeight: c.Height,
		AspectX:      ax,
		AspectY:      ay,
		SizedWords:   sized,
		PlacedWords:  placed,
	}
}

// AspectString returns the canvas aspect ratio reduced to lowest
// terms, e.g. "4:3" for an 800×600 canvas.
func (r Report) AspectString() string {
	return fmt.Sprintf("%d:%d", r.AspectX, r.AspectY)
}

// reduceAspect divides w and h by their greatest common divisor.
func reduceAspect(w, h int) (int, int) {
	d := gcd(w, h)
	if d == 0 {
		return w, h
	}
	return w / d, h / d
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
