package cloud

// Canvas is the fixed rectangular output surface. All placement
// coordinates are in canvas units (pixels for raster output).
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CenterX returns the horizontal center of the canvas.
func (c Canvas) CenterX() float64 { return c.Width / 2 }

// CenterY returns the vertical center of the canvas.
func (c Canvas) CenterY() float64 { return c.Height / 2 }

// Aspect returns the width/height ratio.
func (c Canvas) Aspect() float64 {
	if c.Height == 0 {
		return 1
	}
	return c.Width / c.Height
}

// LongerSide returns the larger of width and height.
func (c Canvas) LongerSide() float64 {
	if c.Width > c.Height {
		return c.Width
	}
	return c.Height
}

// Square reports whether the canvas has equal sides.
func (c Canvas) Square() bool { return c.Width == c.Height }

// Contains reports whether r lies fully inside the canvas, borders
// included.
func (c Canvas) Contains(r Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= c.Width && r.Y+r.H <= c.Height
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Intersects reports whether r and o overlap with positive area.
// Rectangles that merely share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Orientation is the reading direction of a placed word.
type Orientation string

const (
	// Horizontal renders the word left to right.
	Horizontal Orientation = "horizontal"

	// Vertical renders the word rotated a quarter turn, with the
	// measured width and height swapped.
	Vertical Orientation = "vertical"
)

// SizedWord is a ranked word with its computed font size and measured
// horizontal extents.
type SizedWord struct {
	Word   string  `json:"word"`
	Count  int     `json:"count"`
	Size   int     `json:"size"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Placement is one committed word in the final layout. Placements are
// immutable once emitted; the engine never moves a committed word.
type Placement struct {
	Word        string      `json:"word"`
	Rect        Rect        `json:"rect"`
	Orientation Orientation `json:"orientation"`
	Color       string      `json:"color"`
	Size        int         `json:"size"`
}
