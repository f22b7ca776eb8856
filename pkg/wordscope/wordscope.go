// Package wordscope wires the text-to-frequency pipeline together:
// fetch, normalize, segment, filter, count, and reshape for charting.
package wordscope

import (
	"errors"

	"github.com/linyuze/wordscope/pkg/analysis"
	"github.com/linyuze/wordscope/pkg/chart"
	"github.com/linyuze/wordscope/pkg/logging"
)

// Fetcher retrieves the raw text of a page.
type Fetcher interface {
	Fetch(url string) (string, error)
}

// Analyzer runs the full analysis pipeline. It is stateless between runs
// apart from the shared read-only stopword set and the tokenizer's
// memoization cache, so one Analyzer can serve concurrent runs.
type Analyzer struct {
	fetcher    Fetcher
	normalizer *analysis.Normalizer
	tokenizer  *analysis.Tokenizer
	stopwords  *analysis.StopwordSet
	topN       int
	logger     *logging.Logger
}

// Result is the outcome of one analysis run. Series is nil when the
// requested chart kind is not supported; Table and Top are still valid.
type Result struct {
	Table  *analysis.Table
	Top    []analysis.Entry
	Series *chart.Series
}

// New creates an Analyzer. Fails if the segmentation dictionary cannot
// be loaded. A nil logger discards log output.
func New(fetcher Fetcher, stopwords *analysis.StopwordSet, topN int, logger *logging.Logger) (*Analyzer, error) {
	tokenizer, err := analysis.NewTokenizer()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if topN <= 0 {
		topN = 20
	}
	return &Analyzer{
		fetcher:    fetcher,
		normalizer: analysis.NewNormalizer(),
		tokenizer:  tokenizer,
		stopwords:  stopwords,
		topN:       topN,
		logger:     logger,
	}, nil
}

// Run fetches url, analyzes its text, and builds the series for kind.
// It is deterministic given identical raw text and stopword set. An
// unsupported kind is non-fatal: the result still carries the frequency
// table and the ranked top list.
func (a *Analyzer) Run(url string, kind chart.Kind) (*Result, error) {
	raw, err := a.fetcher.Fetch(url)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("fetched %s: %d bytes of body text", url, len(raw))

	result := a.AnalyzeText(raw)

	entries := result.Top
	if kind == chart.KindCloud {
		// The cloud layout weights the whole vocabulary, not just top-N.
		entries = result.Table.Entries()
	}

	series, err := chart.ToSeries(kind, entries)
	if err != nil {
		var unsupported *chart.UnsupportedKindError
		if errors.As(err, &unsupported) {
			a.logger.Error("skipping chart for %s: %v", url, err)
			return result, nil
		}
		return nil, err
	}
	result.Series = series

	return result, nil
}

// AnalyzeText runs the text-to-frequency stages on raw text.
func (a *Analyzer) AnalyzeText(raw string) *Result {
	normalized := a.normalizer.Normalize(raw)
	tokens := a.tokenizer.Tokenize(normalized)
	filtered := a.stopwords.Filter(tokens)
	table := analysis.Aggregate(filtered)

	a.logger.Debug("tokens: %d total, %d after stopwords, %d distinct",
		len(tokens), len(filtered), table.Len())

	return &Result{
		Table: table,
		Top:   table.TopN(a.topN),
	}
}
