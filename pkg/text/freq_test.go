package text

import (
	"fmt"
	"testing"
)

func TestTable_MergesPluralIntoExistingSingular(t *testing.T) {
	table := Count([]string{"cat", "cat", "cats"})

	entries := table.Rank(0)
	if len(entries) != 1 {
		t.Fatalf("Rank() returned %d entries, want 1", len(entries))
	}
	if entries[0].Word != "cat" || entries[0].Count != 3 {
		t.Errorf("entry = %+v, want {cat 3}", entries[0])
	}
}

func TestTable_SingularAbsorbsEarlierPlural(t *testing.T) {
	table := Count([]string{"cats", "cat", "cats"})

	entries := table.Rank(0)
	if len(entries) != 1 {
		t.Fatalf("Rank() returned %d entries, want 1", len(entries))
	}
	if entries[0].Word != "cat" || entries[0].Count != 3 {
		t.Errorf("entry = %+v, want {cat 3}", entries[0])
	}
}

func TestTable_ShortWordsNotStripped(t *testing.T) {
	// Two-character words are never stripped, so "os" must not merge
	// into a previously seen "o".
	table := Count([]string{"o", "os"})

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (no strip for 2-char words)", table.Len())
	}
}

func TestTable_RankOrderAndTruncation(t *testing.T) {
	table := NewTable()
	// 50 distinct words, word-i occurring i times.
	for i := 1; i <= 50; i++ {
		w := fmt.Sprintf("word%02d", i)
		for j := 0; j < i; j++ {
			table.Add(w)
		}
	}

	entries := table.Rank(10)
	if len(entries) != 10 {
		t.Fatalf("Rank(10) returned %d entries, want 10", len(entries))
	}
	for i, e := range entries {
		wantCount := 50 - i
		if e.Count != wantCount {
			t.Errorf("entries[%d].Count = %d, want %d", i, e.Count, wantCount)
		}
	}
}

func TestTable_TieBreakIsFirstSeen(t *testing.T) {
	table := Count([]string{"beta", "alpha", "beta", "alpha", "gamma"})

	entries := table.Rank(0)
	want := []string{"beta", "alpha", "gamma"}
	for i, w := range want {
		if entries[i].Word != w {
			t.Errorf("entries[%d].Word = %q, want %q", i, entries[i].Word, w)
		}
	}
}

func TestTable_MergedPairKeepsOriginalPosition(t *testing.T) {
	// "dogs" is seen before "bird"; when "dog" later renames the entry,
	// the pair must keep its original slot in the tie-break order.
	table := Count([]string{"dogs", "bird", "dog", "birds"})

	entries := table.Rank(0)
	want := []Entry{{Word: "dog", Count: 2}, {Word: "bird", Count: 2}}
	if len(entries) != 2 {
		t.Fatalf("Rank() returned %d entries, want 2", len(entries))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestMaxAndAverageCount(t *testing.T) {
	entries := []Entry{{"a2", 4}, {"b2", 2}, {"c2", 3}}
	if got := MaxCount(entries); got != 4 {
		t.Errorf("MaxCount() = %d, want 4", got)
	}
	if got := AverageCount(entries); got != 3 {
		t.Errorf("AverageCount() = %v, want 3", got)
	}
}

func TestMaxAndAverageCount_Empty(t *testing.T) {
	if got := MaxCount(nil); got != 0 {
		t.Errorf("MaxCount(nil) = %d, want 0", got)
	}
	if got := AverageCount(nil); got != 0 {
		t.Errorf("AverageCount(nil) = %v, want 0", got)
	}
}
