package chart

import (
	"fmt"

	"github.com/linyuze/wordscope/pkg/analysis"
)

// Kind identifies a chart type.
type Kind string

const (
	KindBar     Kind = "bar"
	KindBarH    Kind = "hbar"
	KindPie     Kind = "pie"
	KindLine    Kind = "line"
	KindScatter Kind = "scatter"
	KindRadar   Kind = "radar"
	KindArea    Kind = "area"
	KindCloud   Kind = "cloud"
)

// Kinds lists every supported chart kind.
func Kinds() []Kind {
	return []Kind{
		KindBar, KindBarH, KindPie, KindLine,
		KindScatter, KindRadar, KindArea, KindCloud,
	}
}

// ParseKind validates a chart kind string.
func ParseKind(s string) (Kind, error) {
	kind := Kind(s)
	for _, known := range Kinds() {
		if kind == known {
			return kind, nil
		}
	}
	return "", &UnsupportedKindError{Kind: kind}
}

// UnsupportedKindError reports an unknown chart kind. It is non-fatal:
// the frequency table is still produced, only series production is
// skipped.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported chart kind %q", string(e.Kind))
}

// Indicator is one radar axis with its scale maximum.
type Indicator struct {
	Name string `json:"name"`
	Max  int    `json:"max"`
}

// Series is the chart-ready projection of ranked frequency entries:
// parallel label/value sequences, plus the radar indicator schema and the
// axis-swap flag for the horizontal bar variant.
type Series struct {
	Kind       Kind        `json:"kind"`
	Labels     []string    `json:"labels"`
	Values     []int       `json:"values"`
	SwapAxes   bool        `json:"swap_axes,omitempty"`
	Indicators []Indicator `json:"indicators,omitempty"`
}

// ToSeries reshapes ranked entries into the input structure a chart kind
// needs. Callers pass top-N entries for every kind except cloud, which
// takes the full table. An unknown kind yields an UnsupportedKindError;
// the caller should skip rendering and keep the frequency table.
func ToSeries(kind Kind, entries []analysis.Entry) (*Series, error) {
	labels := make([]string, len(entries))
	values := make([]int, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Word
		values[i] = entry.Count
	}

	series := &Series{Kind: kind, Labels: labels, Values: values}

	switch kind {
	case KindBar, KindPie, KindLine, KindScatter, KindArea, KindCloud:
		return series, nil
	case KindBarH:
		// Same data order as the vertical variant; the renderer swaps
		// the axes, it does not reorder.
		series.SwapAxes = true
		return series, nil
	case KindRadar:
		// All axes share one scale: the global maximum count among the
		// selected entries.
		maxCount := 0
		for _, value := range values {
			if value > maxCount {
				maxCount = value
			}
		}
		indicators := make([]Indicator, len(labels))
		for i, label := range labels {
			indicators[i] = Indicator{Name: label, Max: maxCount}
		}
		series.Indicators = indicators
		return series, nil
	default:
		return nil, &UnsupportedKindError{Kind: kind}
	}
}
