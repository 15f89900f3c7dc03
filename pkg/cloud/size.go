package cloud

import (
	"fmt"
	"math"

	"github.com/matzehuels/wordspin/pkg/measure"
	"github.com/matzehuels/wordspin/pkg/text"
)

// MinFontSize is the smallest pixel size a word may be rendered at.
// Words whose computed size falls below this are dropped from the
// layout without error.
const MinFontSize = 8

// FontScale derives the single multiplier that converts frequency
// counts into pixel font sizes. It returns 0 when the retained set is
// empty (or all counts are zero), which downstream stages treat as an
// empty layout.
func FontScale(c Canvas, entries []text.Entry) float64 {
	denom := text.AverageCount(entries) * float64(len(entries))
	if denom == 0 {
		return 0
	}
	return (c.Width + c.Height) / denom
}

// SizeWords converts ranked entries into sized words. For each entry,
// in rank order, the font size is count*scale rounded to the nearest
// integer; entries below MinFontSize are skipped. Extents come from m.
// A measurement error aborts the whole run.
//
// A zero scale yields an empty result, matching the empty-layout
// behavior of FontScale.
func SizeWords(c Canvas, entries []text.Entry, m measure.Measurer, scale float64) ([]SizedWord, error) {
	if scale == 0 {
		return nil, nil
	}

	sized := make([]SizedWord, 0, len(entries))
	for _, e := range entries {
		size := int(math.Round(float64(e.Count) * scale))
		if size < MinFontSize {
			continue
		}
		w, h, err := m.Measure(e.Word, size)
		if err != nil {
			return nil, fmt.Errorf("measure %q at %dpx: %w", e.Word, size, err)
		}
		sized = append(sized, SizedWord{
			Word:   e.Word,
			Count:  e.Count,
			Size:   size,
			Width:  w,
			Height: h,
		})
	}
	return sized, nil
}
