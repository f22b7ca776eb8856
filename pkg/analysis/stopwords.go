package analysis

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/blevesearch/vellum"
)

//go:embed stopwords.txt
var embeddedStopwords string

// StopwordSet is a set of words excluded from frequency counting.
// Lookups go through an FST built in memory at load time. The set is
// immutable after construction, so it can be shared across concurrent
// analysis runs without locking.
type StopwordSet struct {
	fst   *vellum.FST
	words map[string]struct{}
}

// DefaultStopwords builds the stopword set shipped with the package,
// covering common Chinese and English function words.
func DefaultStopwords() (*StopwordSet, error) {
	return NewStopwordSet(parseStopwordLines(strings.NewReader(embeddedStopwords)))
}

// LoadStopwords loads a stopword set from a file, one word per line.
// Lines are trimmed; blank lines and lines starting with # are skipped.
// A missing or unreadable file yields a ConfigError.
func LoadStopwords(path string) (*StopwordSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	defer file.Close()

	set, err := NewStopwordSet(parseStopwordLines(file))
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return set, nil
}

// NewStopwordSet builds a stopword set from a word list.
// Matching is exact and case-sensitive.
func NewStopwordSet(words []string) (*StopwordSet, error) {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}

	fst, err := buildFST(set)
	if err != nil {
		return nil, err
	}

	return &StopwordSet{fst: fst, words: set}, nil
}

// buildFST builds an in-memory FST from the word set. Unlike an on-disk
// dictionary there is no file side effect: the FST lives and dies with
// the set.
func buildFST(words map[string]struct{}) (*vellum.FST, error) {
	sortedWords := make([]string, 0, len(words))
	for word := range words {
		sortedWords = append(sortedWords, word)
	}
	sort.Strings(sortedWords)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, err
	}

	for _, word := range sortedWords {
		if err := builder.Insert([]byte(word), 0); err != nil {
			builder.Close()
			return nil, err
		}
	}

	if err := builder.Close(); err != nil {
		return nil, err
	}

	return vellum.Load(buf.Bytes())
}

// Contains checks if a word is in the set (exact match, case-sensitive).
func (s *StopwordSet) Contains(word string) bool {
	_, exists, _ := s.fst.Get([]byte(word))
	return exists
}

// Filter drops tokens that are empty after trimming or present in the
// set. It preserves order and does not deduplicate.
func (s *StopwordSet) Filter(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			continue
		}
		if s.Contains(token) {
			continue
		}
		filtered = append(filtered, token)
	}
	return filtered
}

// Len returns the number of words in the set.
func (s *StopwordSet) Len() int {
	return len(s.words)
}

// Words returns the word list in sorted order.
func (s *StopwordSet) Words() []string {
	sortedWords := make([]string, 0, len(s.words))
	for word := range s.words {
		sortedWords = append(sortedWords, word)
	}
	sort.Strings(sortedWords)
	return sortedWords
}

// SaveStopwords writes a word list to a file, one word per line, sorted.
func SaveStopwords(path string, words []string) error {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, word := range sorted {
		if _, err := writer.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// parseStopwordLines reads words from r, one per line.
func parseStopwordLines(r io.Reader) []string {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	return words
}
