// Package pipeline provides the core word-cloud pipeline for wordspin.
//
// This package implements the complete count → layout → render pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Count: Tokenize the input text and rank words by frequency
//  2. Layout: Size the ranked words and pack them onto the canvas
//  3. Render: Generate output in various formats (SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, nil, logger)
//	opts := pipeline.Options{
//	    Text:    document,
//	    Theme:   "classic",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordspin/pkg/cache"
	"github.com/matzehuels/wordspin/pkg/cloud"
	"github.com/matzehuels/wordspin/pkg/errors"
	"github.com/matzehuels/wordspin/pkg/palette"
	"github.com/matzehuels/wordspin/pkg/text"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultMaxWords is the default cap on ranked words kept for layout.
	DefaultMaxWords = 100
)

// DefaultTheme is the default color theme.
const DefaultTheme = palette.DefaultTheme

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the word-cloud pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Count options
	Text           string   `json:"text"`
	MaxWords       int      `json:"max_words,omitempty"`
	ExtraStopWords []string `json:"stop_words,omitempty"`

	// Layout options
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	Seed         uint64  `json:"seed,omitempty"`
	Theme        string  `json:"theme,omitempty"`
	Monochrome   bool    `json:"monochrome,omitempty"`
	NoRotate     bool    `json:"no_rotate,omitempty"`
	RotateProb   float64 `json:"rotate_prob,omitempty"`
	Granularity  float64 `json:"granularity,omitempty"`
	DistanceStep float64 `json:"distance_step,omitempty"`
	CarryDivisor int     `json:"carry_divisor,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // Bypass the artifact cache

	// Runtime options (not serialized)
	FontPath string      `json:"-"`
	Logger   *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// TextHash is the content hash of the input text.
	TextHash string

	// Entries is the ranked frequency table retained for layout.
	Entries []text.Entry

	// Placements are the committed word positions.
	Placements []cloud.Placement

	// Report summarizes the run (counts, scale, canvas geometry).
	Report cloud.Report

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks whether artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CountTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for the run.
type CacheInfo struct {
	ArtifactHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Text == "" {
		return errors.New(errors.ErrCodeInvalidInput, "text is required")
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if err := errors.ValidateCanvas(o.Width, o.Height); err != nil {
		return err
	}

	if o.MaxWords <= 0 {
		o.MaxWords = DefaultMaxWords
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if _, err := palette.LookupTheme(o.Theme); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme")
	}
	// A grayscale theme only survives the saturation filter in
	// monochrome mode.
	if o.Theme == "mono" {
		o.Monochrome = true
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// EngineOptions converts pipeline options into placement engine tuning.
// Zero tuning fields fall back to the engine defaults.
func (o *Options) EngineOptions() cloud.Options {
	opts := cloud.DefaultOptions
	opts.Seed = o.Seed
	opts.DisableRotate = o.NoRotate
	if o.RotateProb > 0 {
		opts.RotateProb = o.RotateProb
	}
	if o.Granularity > 0 {
		opts.Granularity = o.Granularity
	}
	if o.DistanceStep > 0 {
		opts.DistanceStep = o.DistanceStep
	}
	if o.CarryDivisor > 0 {
		opts.CarryDivisor = o.CarryDivisor
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       format,
		Width:        o.Width,
		Height:       o.Height,
		Seed:         o.Seed,
		MaxWords:     o.MaxWords,
		Theme:        o.Theme,
		Monochrome:   o.Monochrome,
		NoRotate:     o.NoRotate,
		RotateProb:   o.RotateProb,
		Granularity:  o.Granularity,
		DistanceStep: o.DistanceStep,
		CarryDivisor: o.CarryDivisor,
	}
}
