package analysis

import "sort"

// Entry is one (token, count) row of a ranked frequency table.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Table maps tokens to occurrence counts. It also records the position at
// which each token first appeared, so that equal counts rank the same way
// on every run regardless of map iteration order.
type Table struct {
	counts map[string]int
	first  map[string]int
}

// Aggregate counts token occurrences.
func Aggregate(tokens []string) *Table {
	t := &Table{
		counts: make(map[string]int),
		first:  make(map[string]int),
	}
	for i, token := range tokens {
		if _, seen := t.counts[token]; !seen {
			t.first[token] = i
		}
		t.counts[token]++
	}
	return t
}

// Count returns the occurrence count for a token (0 if absent).
func (t *Table) Count(word string) int {
	return t.counts[word]
}

// Len returns the number of distinct tokens.
func (t *Table) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts, which equals the length of the
// token sequence the table was aggregated from.
func (t *Table) Total() int {
	total := 0
	for _, count := range t.counts {
		total += count
	}
	return total
}

// TopN returns at most n entries sorted by count descending. Ties are
// broken by first-occurrence position, earliest first. n <= 0 yields an
// empty result.
func (t *Table) TopN(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	ranked := t.Entries()
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Entries returns the full table in ranked order.
func (t *Table) Entries() []Entry {
	ranked := make([]Entry, 0, len(t.counts))
	for word, count := range t.counts {
		ranked = append(ranked, Entry{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return t.first[ranked[i].Word] < t.first[ranked[j].Word]
	})
	return ranked
}
