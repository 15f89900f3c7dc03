package cloud

import (
	"math"
	"math/rand/v2"
)

// Options tunes the radial placement search. The zero value is not
// useful; start from DefaultOptions.
type Options struct {
	// Granularity controls angular probe density per ring. The
	// angular step at radius r is 360/((r+1)*Granularity/10)
	// degrees, so the linear arc between probes stays roughly
	// constant as rings grow.
	Granularity float64

	// DistanceStep controls ring growth. After a fruitless sweep the
	// radius grows by dim*DistanceStep/10, where dim is the word's
	// height when rendered vertically and its width otherwise.
	DistanceStep float64

	// RotateProb is the probability a word is rendered vertically.
	RotateProb float64

	// DisableRotate forces every word horizontal.
	DisableRotate bool

	// CarryDivisor dampens the sweep-phase counter carried from one
	// word to the next (carried = final count / CarryDivisor). Zero
	// disables carry-over entirely.
	CarryDivisor int

	// Seed initializes the engine's random source. Identical seeds
	// and inputs replay identical layouts.
	Seed uint64
}

// DefaultOptions are the tuning values used by the CLI and server.
var DefaultOptions = Options{
	Granularity:  10,
	DistanceStep: 3,
	RotateProb:   0.35,
	CarryDivisor: 3,
	Seed:         42,
}

// sweepPhases are the eight angular sweep configurations cycled by the
// per-word scan counter: four start angles, each swept forward and
// reversed. Rotating through them keeps consecutive retries and
// consecutive words from probing the same angular region first.
var sweepPhases = [8]struct{ from, to, dir float64 }{
	{0, 360, 1},
	{360, 0, -1},
	{90, 450, 1},
	{450, 90, -1},
	{180, 540, 1},
	{540, 180, -1},
	{270, 630, 1},
	{630, 270, -1},
}

// ColorFunc supplies the fill color for the next committed word,
// typically a palette cycle. It is called once per successful
// placement, in commit order.
type ColorFunc func() string

// Engine owns all placement state: the committed rectangles, the
// random source, and the sweep-phase carry-over between words. An
// engine is single-use and not safe for concurrent use; placement
// order is significant because every collision test runs against the
// full committed set.
type Engine struct {
	canvas Canvas
	opts   Options
	rng    *rand.Rand
	placed []Rect
	carry  int
}

// NewEngine creates a placement engine for the given canvas. Invalid
// tuning values fall back to DefaultOptions field-by-field.
func NewEngine(canvas Canvas, opts Options) *Engine {
	if opts.Granularity <= 0 {
		opts.Granularity = DefaultOptions.Granularity
	}
	if opts.DistanceStep <= 0 {
		opts.DistanceStep = DefaultOptions.DistanceStep
	}
	if opts.RotateProb < 0 || opts.RotateProb > 1 {
		opts.RotateProb = DefaultOptions.RotateProb
	}
	if opts.CarryDivisor < 0 {
		opts.CarryDivisor = DefaultOptions.CarryDivisor
	}
	return &Engine{
		canvas: canvas,
		opts:   opts,
		rng:    rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef)),
	}
}

// Place packs words onto the canvas in the given order (callers pass
// descending size order) and returns the committed placements. Words
// for which no collision-free spot exists within the search radius are
// silently omitted. nextColor may be nil, in which case placements
// carry an empty color.
func (e *Engine) Place(words []SizedWord, nextColor ColorFunc) []Placement {
	placements := make([]Placement, 0, len(words))

	for i, w := range words {
		orientation := Horizontal
		if !e.opts.DisableRotate && e.rng.Float64() < e.opts.RotateProb {
			orientation = Vertical
		}

		boxW, boxH := w.Width, w.Height
		if orientation == Vertical {
			boxW, boxH = boxH, boxW
		}
		if boxW > e.canvas.Width || boxH > e.canvas.Height {
			continue
		}

		rect, scans, ok := e.search(boxW, boxH, w, orientation, i == 0)
		if e.opts.CarryDivisor > 0 {
			e.carry = scans / e.opts.CarryDivisor
		} else {
			e.carry = 0
		}
		if !ok {
			continue
		}

		e.placed = append(e.placed, rect)
		color := ""
		if nextColor != nil {
			color = nextColor()
		}
		placements = append(placements, Placement{
			Word:        w.Word,
			Rect:        rect,
			Orientation: orientation,
			Color:       color,
			Size:        w.Size,
		})
	}
	return placements
}

// search runs the ring sweep for a single word with an oriented
// boxW×boxH bounding box. It returns the accepted rectangle, the final
// scan count (for phase carry-over), and whether a spot was found
// before the radius bound was exhausted.
func (e *Engine) search(boxW, boxH float64, w SizedWord, orientation Orientation, first bool) (Rect, int, bool) {
	cx, cy := e.canvas.CenterX(), e.canvas.CenterY()
	aspect := e.canvas.Aspect()
	jitter := !first && !e.canvas.Square()
	maxRadius := e.canvas.LongerSide() / 2

	scans := e.carry
	for radius := 0.0; radius <= maxRadius; {
		step := 360 / ((radius + 1) * e.opts.Granularity / 10)
		phase := sweepPhases[scans%len(sweepPhases)]

		for angle := phase.from; phase.dir*(phase.to-angle) > 0; angle += phase.dir * step {
			rad := angle * math.Pi / 180
			x := cx + radius*math.Cos(rad)*aspect
			y := cy + radius*math.Sin(rad)
			if jitter {
				x += e.rng.Float64() - 0.5
				y += e.rng.Float64() - 0.5
			}

			cand := Rect{X: x - boxW/2, Y: y - boxH/2, W: boxW, H: boxH}
			if !e.canvas.Contains(cand) {
				continue
			}
			if e.collides(cand) {
				continue
			}
			return cand, scans, true
		}

		dim := w.Width
		if orientation == Vertical {
			dim = w.Height
		}
		growth := dim * e.opts.DistanceStep / 10
		if growth <= 0 {
			growth = 1
		}
		radius += growth
		scans++
	}
	return Rect{}, scans, false
}

// collides tests cand against every committed rectangle. Linear in the
// number of placed words, which stays small enough (hundreds) that a
// spatial index would not pay for itself.
func (e *Engine) collides(cand Rect) bool {
	for _, r := range e.placed {
		if r.Intersects(cand) {
			return true
		}
	}
	return false
}

// Placed returns the number of committed rectangles so far.
func (e *Engine) Placed() int { return len(e.placed) }
