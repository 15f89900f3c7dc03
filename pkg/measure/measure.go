// Package measure provides text bounding-box measurement for layout.
//
// The layout engine only needs extents, not rendered glyphs, so the
// [Measurer] interface is deliberately narrow. Two implementations are
// provided: [TrueType], which measures with real font metrics and also
// feeds the PNG renderer, and [FixedRatio], a font-free estimator for
// SVG-only runs and tests.
package measure

// Measurer reports the bounding box of a word rendered at a pixel font
// size, in canvas units. Implementations must be deterministic for a
// given (word, size) pair.
type Measurer interface {
	Measure(word string, size int) (width, height float64, err error)
}

// FixedRatio estimates extents from character counts, assuming a fixed
// per-character advance and line height relative to the font size. It
// never fails.
type FixedRatio struct {
	// CharWidth is the advance per character as a fraction of the
	// font size.
	CharWidth float64

	// LineHeight is the line height as a fraction of the font size.
	LineHeight float64
}

// NewFixedRatio returns an estimator tuned for common sans-serif
// proportions.
func NewFixedRatio() FixedRatio {
	return FixedRatio{CharWidth: 0.55, LineHeight: 1.15}
}

// Measure implements Measurer.
func (f FixedRatio) Measure(word string, size int) (float64, float64, error) {
	s := float64(size)
	return s * f.CharWidth * float64(len(word)), s * f.LineHeight, nil
}
