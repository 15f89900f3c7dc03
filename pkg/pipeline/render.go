package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/wordspin/pkg/cloud"
	"github.com/matzehuels/wordspin/pkg/errors"
	"github.com/matzehuels/wordspin/pkg/measure"
	"github.com/matzehuels/wordspin/pkg/observability"
	"github.com/matzehuels/wordspin/pkg/palette"
	"github.com/matzehuels/wordspin/pkg/render"
)

// Render generates the requested output formats from a computed layout.
// fnt is required only when PNG output is requested.
func (r *Runner) Render(ctx context.Context, placements []cloud.Placement, report cloud.Report, opts Options, fnt *measure.TrueType) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	theme, err := palette.LookupTheme(opts.Theme)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme")
	}
	background := theme.Background.Hex()
	canvas := cloud.Canvas{Width: opts.Width, Height: opts.Height}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = render.RenderSVG(canvas, placements,
				render.WithSVGBackground(background))
		case FormatPNG:
			data, err := render.RenderPNG(canvas, placements, fnt,
				render.WithPNGBackground(background))
			if err != nil {
				observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render png")
			}
			artifacts[format] = data
		case FormatJSON:
			data, err := render.RenderJSON(canvas, placements,
				render.WithJSONReport(report),
				render.WithJSONSeed(opts.Seed),
				render.WithJSONTheme(opts.Theme))
			if err != nil {
				observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
			}
			artifacts[format] = data
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	opts.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", time.Since(start))

	return artifacts, nil
}
