// Package palette builds the filtered, randomized color cycle used to
// paint placed words.
//
// Candidates pass through four steps: an optional monochrome collapse,
// a random permutation capped at a maximum count, filters against the
// background color and washed-out (low-saturation) colors, and a
// randomized brightness-descending sort. The surviving colors are
// consumed cyclically, one per placed word.
package palette

import (
	"errors"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrEmptyPalette is returned when filtering removes every candidate
// color. The run must abort before placement: there is nothing to
// paint words with.
var ErrEmptyPalette = errors.New("palette: no colors left after filtering")

// DefaultMinSaturation is the saturation threshold below which colors
// are considered washed out and dropped. Monochrome palettes use 0,
// since greys carry no saturation at all.
const DefaultMinSaturation = 0.5

// Color is a named palette entry.
type Color struct {
	Name string
	colorful.Color
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string { return strings.ToLower(c.Color.Hex()) }

// Options configures palette construction.
type Options struct {
	// MaxColors caps how many candidates survive the random
	// permutation. Zero means no cap.
	MaxColors int

	// Monochrome collapses every candidate to a grey of equal
	// perceptual brightness and disables the saturation filter.
	Monochrome bool

	// MinSaturation overrides DefaultMinSaturation when positive.
	MinSaturation float64
}

// Cycle is the ordered, cyclically consumed set of usable colors.
type Cycle struct {
	colors []Color
	cursor int
}

// New builds a color cycle from candidates. background is the canvas
// background color's name; candidates whose name textually matches it
// are removed, as are candidates below the saturation threshold. The
// remaining colors are ordered by a brightness-descending sort with
// per-color random jitter weighted by saturation, so bright saturated
// colors tend to come first without the order being deterministic
// across seeds.
//
// Returns ErrEmptyPalette if no candidate survives.
func New(candidates []Color, background string, opts Options, rng *rand.Rand) (*Cycle, error) {
	minSat := DefaultMinSaturation
	if opts.MinSaturation > 0 {
		minSat = opts.MinSaturation
	}
	if opts.Monochrome {
		minSat = 0
	}

	pool := make([]Color, len(candidates))
	copy(pool, candidates)

	if opts.Monochrome {
		for i, c := range pool {
			_, _, v := c.Hsv()
			pool[i] = Color{Name: c.Name, Color: colorful.Hsv(0, 0, v)}
		}
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if opts.MaxColors > 0 && len(pool) > opts.MaxColors {
		pool = pool[:opts.MaxColors]
	}

	bg := strings.ToLower(background)
	kept := pool[:0]
	for _, c := range pool {
		name := strings.ToLower(c.Name)
		if bg != "" && (strings.Contains(name, bg) || strings.Contains(bg, name)) {
			continue
		}
		_, s, _ := c.Hsv()
		if s < minSat {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return nil, ErrEmptyPalette
	}

	// Randomized perceptual ordering: brightness plus jitter in
	// [-v, +v], amplified for saturated colors. The denominator is
	// floored so fully saturated colors stay finite.
	keys := make(map[string]float64, len(kept))
	for _, c := range kept {
		_, s, v := c.Hsv()
		denom := 1 - s
		if denom < 0.05 {
			denom = 0.05
		}
		jitter := (rng.Float64()*2 - 1) * v
		keys[c.Name] = v + jitter/denom
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return keys[kept[i].Name] > keys[kept[j].Name]
	})

	return &Cycle{colors: kept}, nil
}

// Next returns the next color in the cycle, wrapping around at the
// end.
func (c *Cycle) Next() Color {
	col := c.colors[c.cursor%len(c.colors)]
	c.cursor++
	return col
}

// NextHex returns the next color as a hex string. Matches the
// signature the placement engine expects for its color callback.
func (c *Cycle) NextHex() string { return c.Next().Hex() }

// Colors returns the ordered colors in the cycle. The slice is the
// cycle's backing store; callers must not modify it.
func (c *Cycle) Colors() []Color { return c.colors }

// Len returns the number of usable colors.
func (c *Cycle) Len() int { return len(c.colors) }
