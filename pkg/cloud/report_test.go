package cloud

import (
	"testing"

	"github.com/matzehuels/wordspin/pkg/text"
)

func TestNewReport(t *testing.T) {
	c := Canvas{Width: 800, Height: 600}
	entries := []text.Entry{
		{Word: "alpha", Count: 8},
		{Word: "beta", Count: 4},
	}

	r := NewReport(c, entries, 116.67, 2, 1)

	if r.UniqueWords != 2 {
		t.Errorf("UniqueWords = %d, want 2", r.UniqueWords)
	}
	if r.MaxCount != 8 {
		t.Errorf("MaxCount = %d, want 8", r.MaxCount)
	}
	if r.AverageCount != 6 {
		t.Errorf("AverageCount = %v, want 6", r.AverageCount)
	}
	if r.AspectX != 4 || r.AspectY != 3 {
		t.Errorf("aspect = %d:%d, want 4:3", r.AspectX, r.AspectY)
	}
	if got := r.AspectString(); got != "4:3" {
		t.Errorf("AspectString() = %q, want %q", got, "4:3")
	}
}

func TestReport_EmptyRun(t *testing.T) {
	c := Canvas{Width: 1024, Height: 1024}
	r := NewReport(c, nil, 0, 0, 0)

	if r.UniqueWords != 0 || r.MaxCount != 0 || r.AverageCount != 0 {
		t.Errorf("empty report has nonzero stats: %+v", r)
	}
	if got := r.AspectString(); got != "1:1" {
		t.Errorf("AspectString() = %q, want %q", got, "1:1")
	}
}

func TestGCD(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{800, 600, 200},
		{1920, 1080, 120},
		{7, 13, 1},
		{0, 5, 5},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := gcd(tt.a, tt.b); got != tt.want {
			t.Errorf("gcd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
