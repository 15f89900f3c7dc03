package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/wordspin/pkg/cache"
	"github.com/matzehuels/wordspin/pkg/errors"
)

const sampleText = `the gopher runs and the gopher jumps and the gophers
sleep while cloud layouts spiral outward from the center of the canvas
cloud cloud layout layout gopher spiral spiral spiral words words`

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	return NewRunner(cache.NewNullCache(), nil, nil, nil)
}

func TestExecute_SVGAndJSON(t *testing.T) {
	r := newTestRunner(t)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Text:    sampleText,
		Formats: []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(result.Entries) == 0 {
		t.Fatal("no entries ranked")
	}
	if len(result.Placements) == 0 {
		t.Fatal("no words placed")
	}
	if result.TextHash == "" {
		t.Error("TextHash should be set")
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !bytes.Contains(svg, []byte("<svg")) {
		t.Error("missing or invalid SVG artifact")
	}
	jsonData, ok := result.Artifacts[FormatJSON]
	if !ok || !bytes.Contains(jsonData, []byte(`"words"`)) {
		t.Error("missing or invalid JSON artifact")
	}

	if result.Report.PlacedWords != len(result.Placements) {
		t.Errorf("report placed = %d, want %d", result.Report.PlacedWords, len(result.Placements))
	}
}

func TestExecute_Deterministic(t *testing.T) {
	opts := Options{
		Text:    sampleText,
		Seed:    7,
		Formats: []string{FormatSVG},
	}

	a, err := newTestRunner(t).Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute error: %v", err)
	}
	b, err := newTestRunner(t).Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute error: %v", err)
	}

	if !bytes.Equal(a.Artifacts[FormatSVG], b.Artifacts[FormatSVG]) {
		t.Error("identical inputs should produce identical SVG output")
	}
}

func TestExecute_ArtifactCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	r := NewRunner(fc, nil, nil, nil)
	defer r.Close()

	opts := Options{Text: sampleText, Formats: []string{FormatSVG}}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute error: %v", err)
	}
	if first.CacheInfo.ArtifactHit {
		t.Error("first run should not hit the cache")
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute error: %v", err)
	}
	if !second.CacheInfo.ArtifactHit {
		t.Error("second run should hit the cache")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached artifact should match original")
	}

	// Refresh bypasses the cache.
	opts.Refresh = true
	third, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute error: %v", err)
	}
	if third.CacheInfo.ArtifactHit {
		t.Error("refresh run should not hit the cache")
	}
}

func TestExecute_EmptyTextRejected(t *testing.T) {
	_, err := newTestRunner(t).Execute(context.Background(), Options{})
	if err == nil {
		t.Fatal("expected error for empty text")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestExecute_InvalidFormat(t *testing.T) {
	_, err := newTestRunner(t).Execute(context.Background(), Options{
		Text:    sampleText,
		Formats: []string{"gif"},
	})
	if err == nil {
		t.Fatal("expected error for invalid format")
	}
}

func TestExecute_InvalidTheme(t *testing.T) {
	_, err := newTestRunner(t).Execute(context.Background(), Options{
		Text:  sampleText,
		Theme: "nonexistent",
	})
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidTheme {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidTheme)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Text: "hello world hello"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults error: %v", err)
	}

	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("canvas = %gx%g, want defaults", opts.Width, opts.Height)
	}
	if opts.MaxWords != DefaultMaxWords {
		t.Errorf("MaxWords = %d, want %d", opts.MaxWords, DefaultMaxWords)
	}
	if opts.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", opts.Seed, DefaultSeed)
	}
	if opts.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want %q", opts.Theme, DefaultTheme)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
}

func TestValidateAndSetDefaults_MonoForcesMonochrome(t *testing.T) {
	opts := Options{Text: "hello world hello", Theme: "mono"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults error: %v", err)
	}
	if !opts.Monochrome {
		t.Error("mono theme should force monochrome mode")
	}
}

func TestCount_ExtraStopWords(t *testing.T) {
	r := newTestRunner(t)
	defer r.Close()

	entries, err := r.Count(context.Background(), Options{
		Text:           "alpha alpha beta beta gamma",
		ExtraStopWords: []string{"beta"},
	})
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	for _, e := range entries {
		if e.Word == "beta" {
			t.Error("extra stop word should be filtered")
		}
	}
}

func TestExecute_SeedChangesLayout(t *testing.T) {
	base := Options{Text: sampleText, Formats: []string{FormatSVG}}

	a, err := newTestRunner(t).Execute(context.Background(), base)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	seeded := base
	seeded.Seed = 1234
	b, err := newTestRunner(t).Execute(context.Background(), seeded)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if bytes.Equal(a.Artifacts[FormatSVG], b.Artifacts[FormatSVG]) {
		t.Error("different seeds should change the layout")
	}
}

func TestArtifactKeyOpts_FoldsTuning(t *testing.T) {
	opts := Options{Text: "x", Width: 800, Height: 600, Seed: 42, Theme: "classic"}
	a := opts.ArtifactKeyOpts(FormatSVG)
	opts.Granularity = 20
	b := opts.ArtifactKeyOpts(FormatSVG)

	keyer := cache.NewDefaultKeyer()
	if keyer.ArtifactKey("h", a) == keyer.ArtifactKey("h", b) {
		t.Error("tuning changes should change the cache key")
	}
}

func TestValidFormats(t *testing.T) {
	for _, f := range []string{FormatSVG, FormatPNG, FormatJSON} {
		if !ValidFormats[f] {
			t.Errorf("%s should be valid", f)
		}
	}
	if ValidFormats["pdf"] {
		t.Error("pdf should not be valid")
	}
	if err := ValidateFormats([]string{"svg", "bogus"}); err == nil {
		t.Error("expected error for bogus format")
	}
	if msg := errors.UserMessage(ValidateFormat("bogus")); !strings.Contains(msg, "bogus") {
		t.Errorf("error message should name the format, got %q", msg)
	}
}
