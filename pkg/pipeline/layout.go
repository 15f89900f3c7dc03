package pipeline

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/matzehuels/wordspin/pkg/cloud"
	"github.com/matzehuels/wordspin/pkg/errors"
	"github.com/matzehuels/wordspin/pkg/measure"
	"github.com/matzehuels/wordspin/pkg/observability"
	"github.com/matzehuels/wordspin/pkg/palette"
	"github.com/matzehuels/wordspin/pkg/text"
)

// Layout sizes the ranked entries and packs them onto the canvas using
// measurer m for text extents. It returns the committed placements and
// the run report.
func (r *Runner) Layout(ctx context.Context, entries []text.Entry, opts Options, m measure.Measurer) ([]cloud.Placement, cloud.Report, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, cloud.Report{}, err
	}
	if m == nil {
		m = r.Measurer
	}

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(entries))

	canvas := cloud.Canvas{Width: opts.Width, Height: opts.Height}
	scale := cloud.FontScale(canvas, entries)

	sized, err := cloud.SizeWords(canvas, entries, m, scale)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeMeasurement, err, "size words")
		observability.Pipeline().OnLayoutComplete(ctx, 0, time.Since(start), err)
		return nil, cloud.Report{}, err
	}

	cycle, err := r.buildPalette(opts)
	if err != nil {
		observability.Pipeline().OnLayoutComplete(ctx, 0, time.Since(start), err)
		return nil, cloud.Report{}, err
	}

	engine := cloud.NewEngine(canvas, opts.EngineOptions())
	placements := engine.Place(sized, cycle.NextHex)
	report := cloud.NewReport(canvas, entries, scale, len(sized), len(placements))

	observability.Pipeline().OnLayoutComplete(ctx, len(placements), time.Since(start), nil)
	opts.Logger.Debug("computed layout",
		"sized", len(sized),
		"placed", len(placements),
		"scale", scale,
		"duration", time.Since(start))

	return placements, report, nil
}

// buildPalette constructs the color cycle for the selected theme. The
// palette random source is derived from the layout seed so a seed pins
// both geometry and coloring.
func (r *Runner) buildPalette(opts Options) (*palette.Cycle, error) {
	theme, err := palette.LookupTheme(opts.Theme)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme")
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xbeefcafe))
	cycle, err := palette.New(theme.Colors, theme.Background.Name, palette.Options{
		Monochrome: opts.Monochrome,
	}, rng)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEmptyPalette, err, "theme %q", opts.Theme)
	}
	return cycle, nil
}
