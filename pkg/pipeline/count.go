package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/wordspin/pkg/observability"
	"github.com/matzehuels/wordspin/pkg/text"
)

// Count tokenizes the input text and returns the ranked frequency
// entries retained for layout, capped at opts.MaxWords.
func (r *Runner) Count(ctx context.Context, opts Options) ([]text.Entry, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnCountStart(ctx, len(opts.Text))

	tokens := text.Tokenize(opts.Text, &text.TokenizeOptions{
		ExtraStopWords: opts.ExtraStopWords,
	})
	table := text.Count(tokens)
	entries := table.Rank(opts.MaxWords)

	observability.Pipeline().OnCountComplete(ctx, len(entries), time.Since(start), nil)
	opts.Logger.Debug("counted words",
		"tokens", len(tokens),
		"unique", table.Len(),
		"ranked", len(entries),
		"duration", time.Since(start))

	return entries, nil
}
