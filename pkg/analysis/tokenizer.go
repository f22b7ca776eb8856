package analysis

import (
	"fmt"
	"strings"

	"github.com/go-ego/gse"
	lru "github.com/hashicorp/golang-lru/v2"
)

// TokenCacheSize is the maximum number of entries in the tokenization cache.
// Keys are whole normalized page texts, so the cache is kept small.
const TokenCacheSize = 256

// Tokenizer segments normalized text into word tokens. Han runs go through
// the gse dictionary+HMM segmenter, Latin runs are already maximal words
// after normalization.
type Tokenizer struct {
	seg   gse.Segmenter
	cache *lru.Cache[string, []string]
}

// NewTokenizer creates a tokenizer with the embedded Chinese dictionary
// and result caching enabled.
func NewTokenizer() (*Tokenizer, error) {
	return newTokenizer(true)
}

// NewTokenizerNoCache creates a tokenizer with caching disabled.
// Use this when memory is constrained or inputs are rarely repeated.
func NewTokenizerNoCache() (*Tokenizer, error) {
	return newTokenizer(false)
}

func newTokenizer(withCache bool) (*Tokenizer, error) {
	t := &Tokenizer{}
	if err := t.seg.LoadDictEmbed("zh"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSegmenterUnavailable, err)
	}
	if withCache {
		cache, _ := lru.New[string, []string](TokenCacheSize)
		t.cache = cache
	}
	return t, nil
}

// Tokenize segments text into tokens in source order. Duplicates and
// single-character tokens are kept; filtering is a separate stage.
// The segmenter is deterministic, so identical input yields identical
// output across calls and the result is safe to memoize.
func (t *Tokenizer) Tokenize(text string) []string {
	if t.cache == nil {
		return t.tokenizeUncached(text)
	}

	if result, ok := t.cache.Get(text); ok {
		return result
	}

	result := t.tokenizeUncached(text)
	t.cache.Add(text, result)

	return result
}

func (t *Tokenizer) tokenizeUncached(text string) []string {
	var tokens []string

	for _, run := range SplitRuns(text) {
		switch run.Script {
		case ScriptLatin:
			tokens = append(tokens, run.Text)
		case ScriptHan:
			for _, word := range t.seg.Cut(run.Text, true) {
				if strings.TrimSpace(word) == "" {
					continue
				}
				tokens = append(tokens, word)
			}
		}
	}

	return tokens
}

// CacheSize returns the number of cached token sequences (0 if disabled).
func (t *Tokenizer) CacheSize() int {
	if t.cache == nil {
		return 0
	}
	return t.cache.Len()
}

// ClearCache clears the tokenization cache.
func (t *Tokenizer) ClearCache() {
	if t.cache != nil {
		t.cache.Purge()
	}
}

// CacheEnabled returns true if caching is enabled.
func (t *Tokenizer) CacheEnabled() bool {
	return t.cache != nil
}
