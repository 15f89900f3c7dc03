// Package text turns raw input text into a ranked word-frequency table.
//
// The package has two stages:
//
//  1. Tokenize: split text on delimiters, normalize case, and filter out
//     noise (short tokens, non-word characters, stop words).
//  2. Count: aggregate tokens into a frequency table, collapsing
//     singular/plural pairs into a single entry, then rank and truncate.
//
// # Example
//
//	tokens := text.Tokenize("the quick brown fox jumps over the lazy dog", nil)
//	table := text.Count(tokens)
//	top := table.Rank(100)
//	for _, e := range top {
//	    fmt.Println(e.Word, e.Count)
//	}
//
// Tokenization is intentionally simple: it targets Latin-script prose and
// treats anything outside [a-z0-9'_-] as noise. Stop words are matched
// case-insensitively, with an optional trailing "s" so that "things"
// matches the stop word "thing".
package text
