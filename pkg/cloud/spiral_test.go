package cloud

import (
	"reflect"
	"testing"

	"github.com/matzehuels/wordspin/pkg/measure"
	"github.com/matzehuels/wordspin/pkg/text"
)

func testEntries(n int) []text.Entry {
	entries := make([]text.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, text.Entry{
			Word:  string(rune('a'+i%26)) + string(rune('a'+(i/26)%26)) + "word",
			Count: n - i,
		})
	}
	return entries
}

func sizedFixture(t *testing.T, c Canvas, n int) []SizedWord {
	t.Helper()
	entries := testEntries(n)
	scale := FontScale(c, entries)
	sized, err := SizeWords(c, entries, measure.NewFixedRatio(), scale)
	if err != nil {
		t.Fatalf("SizeWords() error: %v", err)
	}
	return sized
}

func TestEngine_NoOverlaps(t *testing.T) {
	c := Canvas{Width: 800, Height: 600}
	sized := sizedFixture(t, c, 40)

	engine := NewEngine(c, DefaultOptions)
	placements := engine.Place(sized, nil)

	if len(placements) == 0 {
		t.Fatal("Place() committed no words")
	}
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			if placements[i].Rect.Intersects(placements[j].Rect) {
				t.Errorf("placements %q and %q overlap: %+v vs %+v",
					placements[i].Word, placements[j].Word,
					placements[i].Rect, placements[j].Rect)
			}
		}
	}
}

func TestEngine_AllWithinCanvas(t *testing.T) {
	c := Canvas{Width: 640, Height: 480}
	sized := sizedFixture(t, c, 30)

	engine := NewEngine(c, DefaultOptions)
	for _, p := range engine.Place(sized, nil) {
		if !c.Contains(p.Rect) {
			t.Errorf("placement %q outside canvas: %+v", p.Word, p.Rect)
		}
	}
}

func TestEngine_PlacedIsSubsetOfSized(t *testing.T) {
	c := Canvas{Width: 400, Height: 300}
	sized := sizedFixture(t, c, 60)

	byWord := make(map[string]SizedWord, len(sized))
	for _, w := range sized {
		byWord[w.Word] = w
	}

	engine := NewEngine(c, DefaultOptions)
	placements := engine.Place(sized, nil)
	if len(placements) > len(sized) {
		t.Fatalf("placed %d words from %d sized", len(placements), len(sized))
	}
	for _, p := range placements {
		w, ok := byWord[p.Word]
		if !ok {
			t.Errorf("placed word %q was never sized", p.Word)
			continue
		}
		if p.Size != w.Size {
			t.Errorf("placement %q size = %d, want %d", p.Word, p.Size, w.Size)
		}
	}
}

func TestEngine_DeterministicReplay(t *testing.T) {
	c := Canvas{Width: 800, Height: 600}
	sized := sizedFixture(t, c, 25)

	opts := DefaultOptions
	opts.Seed = 7

	a := NewEngine(c, opts).Place(sized, nil)
	b := NewEngine(c, opts).Place(sized, nil)

	if !reflect.DeepEqual(a, b) {
		t.Error("identical seeds and inputs produced different layouts")
	}
}

func TestEngine_DifferentSeedsDiffer(t *testing.T) {
	c := Canvas{Width: 800, Height: 600}
	sized := sizedFixture(t, c, 25)

	optsA, optsB := DefaultOptions, DefaultOptions
	optsA.Seed = 1
	optsB.Seed = 2

	a := NewEngine(c, optsA).Place(sized, nil)
	b := NewEngine(c, optsB).Place(sized, nil)

	if reflect.DeepEqual(a, b) {
		t.Error("different seeds produced identical layouts (suspicious)")
	}
}

func TestEngine_OversizedWordNeverPlaced(t *testing.T) {
	c := Canvas{Width: 100, Height: 100}
	huge := SizedWord{Word: "gigantic", Count: 10, Size: 400, Width: 900, Height: 450}

	opts := DefaultOptions
	opts.DisableRotate = true

	placements := NewEngine(c, opts).Place([]SizedWord{huge}, nil)
	if len(placements) != 0 {
		t.Errorf("oversized word was placed: %+v", placements)
	}
}

func TestEngine_FirstWordCentered(t *testing.T) {
	c := Canvas{Width: 500, Height: 500}
	w := SizedWord{Word: "anchor", Count: 5, Size: 40, Width: 120, Height: 46}

	opts := DefaultOptions
	opts.DisableRotate = true

	placements := NewEngine(c, opts).Place([]SizedWord{w}, nil)
	if len(placements) != 1 {
		t.Fatalf("Place() = %d placements, want 1", len(placements))
	}
	r := placements[0].Rect
	if r.CenterX() != 250 || r.CenterY() != 250 {
		t.Errorf("first word centered at (%v, %v), want (250, 250)", r.CenterX(), r.CenterY())
	}
}

func TestEngine_DisableRotateForcesHorizontal(t *testing.T) {
	c := Canvas{Width: 800, Height: 600}
	sized := sizedFixture(t, c, 20)

	opts := DefaultOptions
	opts.DisableRotate = true

	for _, p := range NewEngine(c, opts).Place(sized, nil) {
		if p.Orientation != Horizontal {
			t.Errorf("placement %q rotated despite DisableRotate", p.Word)
		}
	}
}

func TestEngine_ColorsAssignedInCommitOrder(t *testing.T) {
	c := Canvas{Width: 800, Height: 600}
	sized := sizedFixture(t, c, 6)

	colors := []string{"#111111", "#222222", "#333333"}
	i := 0
	next := func() string {
		col := colors[i%len(colors)]
		i++
		return col
	}

	placements := NewEngine(c, DefaultOptions).Place(sized, next)
	for j, p := range placements {
		want := colors[j%len(colors)]
		if p.Color != want {
			t.Errorf("placements[%d].Color = %q, want %q", j, p.Color, want)
		}
	}
}

func TestRect_Intersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 20}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 20, Y: 20, W: 20, H: 20}, true},
		{"contained", Rect{X: 12, Y: 12, W: 5, H: 5}, true},
		{"disjoint", Rect{X: 100, Y: 100, W: 5, H: 5}, false},
		{"edge touching", Rect{X: 30, Y: 10, W: 10, H: 20}, false},
		{"corner touching", Rect{X: 30, Y: 30, W: 10, H: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanvas_Contains(t *testing.T) {
	c := Canvas{Width: 100, Height: 100}
	if !c.Contains(Rect{X: 0, Y: 0, W: 100, H: 100}) {
		t.Error("full-canvas rect should be contained")
	}
	if c.Contains(Rect{X: -1, Y: 0, W: 10, H: 10}) {
		t.Error("rect past the left edge should not be contained")
	}
	if c.Contains(Rect{X: 95, Y: 0, W: 10, H: 10}) {
		t.Error("rect past the right edge should not be contained")
	}
}
