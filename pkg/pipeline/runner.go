package pipeline

import (
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordspin/pkg/cache"
	"github.com/matzehuels/wordspin/pkg/errors"
	"github.com/matzehuels/wordspin/pkg/measure"
	"github.com/matzehuels/wordspin/pkg/observability"
)

// Runner encapsulates pipeline execution with artifact caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, measurer, and logger.
// Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Measurer measure.Measurer
	Logger   *log.Logger
}

// NewRunner creates a runner with the given cache, keyer, and measurer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
// If m is nil, fixed-ratio measurement is used; PNG output loads a
// real font per run regardless.
func NewRunner(c cache.Cache, keyer cache.Keyer, m measure.Measurer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if m == nil {
		m = measure.NewFixedRatio()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Measurer: m,
		Logger:   logger,
	}
}

// Execute runs the complete count → layout → render pipeline with
// artifact caching. Identical text and options replay the cached
// artifacts without recomputing the layout.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		TextHash:  cache.Hash([]byte(opts.Text)),
		Artifacts: make(map[string][]byte),
	}

	// Try the artifact cache first (unless refresh requested).
	if !opts.Refresh {
		if artifacts, ok := r.cachedArtifacts(ctx, result.TextHash, opts); ok {
			observability.Cache().OnCacheHit(ctx, "artifact")
			result.Artifacts = artifacts
			result.CacheInfo.ArtifactHit = true
			r.Logger.Debug("artifact cache hit", "formats", opts.Formats)
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	// PNG rasterization needs real font faces; when a font is loaded
	// anyway, use its metrics for sizing too so the boxes match the
	// drawn glyphs.
	measurer := r.Measurer
	var fnt *measure.TrueType
	if opts.FontPath != "" || slices.Contains(opts.Formats, FormatPNG) {
		var err error
		fnt, err = measure.LoadFont(opts.FontPath)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "load font")
		}
		defer fnt.Close()
		measurer = fnt
	}

	// Stage 1: Count
	countStart := time.Now()
	entries, err := r.Count(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Entries = entries
	result.Stats.CountTime = time.Since(countStart)

	r.Logger.Info("counted words",
		"ranked", len(entries),
		"duration", result.Stats.CountTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	placements, report, err := r.Layout(ctx, entries, opts, measurer)
	if err != nil {
		return nil, err
	}
	result.Placements = placements
	result.Report = report
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("computed layout",
		"placed", len(placements),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, placements, report, opts, fnt)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	// Cache each artifact.
	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(result.TextHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return result, nil
}

// cachedArtifacts returns all requested formats from the cache, or
// ok=false if any format is missing.
func (r *Runner) cachedArtifacts(ctx context.Context, textHash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(textHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			return nil, false
		}
		artifacts[format] = data
	}
	return artifacts, true
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
