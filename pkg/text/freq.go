package text

import (
	"sort"
	"strings"
)

// Entry is a single ranked word with its aggregated count.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Table aggregates token counts and collapses singular/plural variants
// into a single key. The canonical key is resolved as tokens arrive: an
// existing singular absorbs later plurals, and an arriving singular
// absorbs a previously seen plural. After Rank the table is effectively
// frozen; further Add calls are not supported.
type Table struct {
	counts map[string]int
	order  []string // insertion order, used as the rank tie-break
	seen   map[string]int
}

// Count builds a table from a token stream. It is shorthand for
// NewTable followed by Add for each token.
func Count(tokens []string) *Table {
	t := NewTable()
	for _, tok := range tokens {
		t.Add(tok)
	}
	return t
}

// NewTable creates an empty frequency table.
func NewTable() *Table {
	return &Table{
		counts: make(map[string]int),
		seen:   make(map[string]int),
	}
}

// Add records one occurrence of a token. Merge rules, in order:
//
//  1. If the table has the token's singular form (trailing "s"
//     removed, identity for non-plural tokens), that key is counted.
//  2. Else, if the table has the token's plural form (token + "s"),
//     the plural entry is renamed to the token and then counted.
//  3. Else, the token itself becomes a new key.
//
// Rule 2 keeps the plural's position in the insertion order, so rank
// tie-breaks still reflect where the pair was first seen.
func (t *Table) Add(token string) {
	if token == "" {
		return
	}

	singular := stripTrailingS(token)
	if _, ok := t.counts[singular]; ok {
		t.counts[singular]++
		return
	}

	plural := token + "s"
	if n, ok := t.counts[plural]; ok {
		delete(t.counts, plural)
		t.counts[token] = n + 1
		idx := t.seen[plural]
		delete(t.seen, plural)
		t.order[idx] = token
		t.seen[token] = idx
		return
	}

	if _, ok := t.counts[token]; !ok {
		t.seen[token] = len(t.order)
		t.order = append(t.order, token)
	}
	t.counts[token]++
}

// Rank returns entries sorted by descending count, ties broken by
// first-seen order. If maxWords > 0 the result is truncated to the
// top maxWords entries. The sort is stable, so equal counts keep
// their insertion order.
func (t *Table) Rank(maxWords int) []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, w := range t.order {
		if n, ok := t.counts[w]; ok {
			entries = append(entries, Entry{Word: w, Count: n})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if maxWords > 0 && len(entries) > maxWords {
		entries = entries[:maxWords]
	}
	return entries
}

// Len returns the number of distinct keys currently in the table.
func (t *Table) Len() int { return len(t.counts) }

// MaxCount returns the largest count among entries.
// Zero for an empty set.
func MaxCount(entries []Entry) int {
	m := 0
	for _, e := range entries {
		if e.Count > m {
			m = e.Count
		}
	}
	return m
}

// AverageCount returns the mean count over entries.
// Zero for an empty set.
func AverageCount(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.Count
	}
	return float64(sum) / float64(len(entries))
}

// stripTrailingS removes a single trailing "s" from words longer than
// two characters. Shorter words ("as", "is") are returned unchanged so
// they cannot alias unrelated single-letter keys.
func stripTrailingS(w string) string {
	if len(w) > 2 && strings.HasSuffix(w, "s") {
		return w[:len(w)-1]
	}
	return w
}
