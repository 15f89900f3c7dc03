package text

import (
	"strings"
)

// defaultDelimiters is the set of characters tokens are split on:
// whitespace plus common punctuation. Apostrophes, hyphens, and
// underscores are kept inside tokens so contractions and compound
// words survive splitting.
const defaultDelimiters = " \t\r\n.,;:!?\"()[]{}<>/\\|@#$%^&*+=~`“”‘’—–…"

// TokenizeOptions configures tokenization. The zero value (or nil)
// uses the default delimiter set and the built-in stop-word list.
type TokenizeOptions struct {
	// Delimiters is the set of characters to split on.
	// Empty means the default set.
	Delimiters string

	// StopWords replaces the built-in stop-word list when non-nil.
	// Keys must be lower case.
	StopWords map[string]struct{}

	// ExtraStopWords are merged on top of the active stop-word list.
	ExtraStopWords []string
}

// Tokenize splits text into normalized candidate words. Tokens are
// lower-cased, stripped of leading/trailing apostrophes and underscores,
// and dropped if they are shorter than two characters, contain characters
// outside [a-z0-9'_-], contain no letter at all, or match a stop word
// (optionally with a trailing "s"). Order of the input is preserved.
func Tokenize(text string, opts *TokenizeOptions) []string {
	delims := defaultDelimiters
	stop := defaultStopWords
	if opts != nil {
		if opts.Delimiters != "" {
			delims = opts.Delimiters
		}
		if opts.StopWords != nil {
			stop = opts.StopWords
		}
		if len(opts.ExtraStopWords) > 0 {
			merged := make(map[string]struct{}, len(stop)+len(opts.ExtraStopWords))
			for w := range stop {
				merged[w] = struct{}{}
			}
			for _, w := range opts.ExtraStopWords {
				merged[strings.ToLower(w)] = struct{}{}
			}
			stop = merged
		}
	}

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		w := normalize(f)
		if w == "" {
			continue
		}
		if isStopWord(w, stop) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// normalize lower-cases a raw token, trims leading/trailing apostrophes
// and underscores, and returns "" for tokens that fail the character
// filter or are too short.
func normalize(raw string) string {
	w := strings.ToLower(raw)
	w = strings.Trim(w, "'_")
	if len(w) <= 1 {
		return ""
	}

	hasLetter := false
	for _, r := range w {
		switch {
		case r >= 'a' && r <= 'z':
			hasLetter = true
		case r >= '0' && r <= '9', r == '\'', r == '_', r == '-':
		default:
			return ""
		}
	}
	if !hasLetter {
		return ""
	}
	return w
}

// isStopWord reports whether w matches a stop word directly or after
// removing a trailing "s".
func isStopWord(w string, stop map[string]struct{}) bool {
	if _, ok := stop[w]; ok {
		return true
	}
	if strings.HasSuffix(w, "s") {
		if _, ok := stop[w[:len(w)-1]]; ok {
			return true
		}
	}
	return false
}
