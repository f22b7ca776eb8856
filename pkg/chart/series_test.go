package chart

import (
	"errors"
	"reflect"
	"testing"

	"github.com/linyuze/wordscope/pkg/analysis"
)

func rankedEntries() []analysis.Entry {
	return []analysis.Entry{
		{Word: "cat", Count: 5},
		{Word: "sat", Count: 3},
		{Word: "mat", Count: 1},
	}
}

func TestToSeries_AxisKinds(t *testing.T) {
	for _, kind := range []Kind{KindBar, KindLine, KindScatter, KindArea, KindPie, KindCloud} {
		series, err := ToSeries(kind, rankedEntries())
		if err != nil {
			t.Fatalf("ToSeries(%s): %v", kind, err)
		}

		if len(series.Labels) != len(series.Values) {
			t.Errorf("%s: labels/values length mismatch: %d != %d",
				kind, len(series.Labels), len(series.Values))
		}
		if !reflect.DeepEqual(series.Labels, []string{"cat", "sat", "mat"}) {
			t.Errorf("%s: labels = %v, want ranked order", kind, series.Labels)
		}
		if !reflect.DeepEqual(series.Values, []int{5, 3, 1}) {
			t.Errorf("%s: values = %v, want aligned counts", kind, series.Values)
		}
		if series.SwapAxes {
			t.Errorf("%s: SwapAxes set on non-horizontal kind", kind)
		}
	}
}

func TestToSeries_HorizontalBar(t *testing.T) {
	series, err := ToSeries(KindBarH, rankedEntries())
	if err != nil {
		t.Fatalf("ToSeries: %v", err)
	}

	if !series.SwapAxes {
		t.Error("SwapAxes = false, want true")
	}
	// The flag signals an axis swap only; data order is unchanged.
	if !reflect.DeepEqual(series.Labels, []string{"cat", "sat", "mat"}) {
		t.Errorf("labels reordered: %v", series.Labels)
	}
}

func TestToSeries_Radar(t *testing.T) {
	series, err := ToSeries(KindRadar, rankedEntries())
	if err != nil {
		t.Fatalf("ToSeries: %v", err)
	}

	if len(series.Indicators) != 3 {
		t.Fatalf("got %d indicators, want 3", len(series.Indicators))
	}
	for i, indicator := range series.Indicators {
		if indicator.Max != 5 {
			t.Errorf("indicator %d max = %d, want global max 5", i, indicator.Max)
		}
		if indicator.Name != series.Labels[i] {
			t.Errorf("indicator %d name = %q, not aligned with label %q",
				i, indicator.Name, series.Labels[i])
		}
	}
}

func TestToSeries_UnknownKind(t *testing.T) {
	series, err := ToSeries(Kind("unknown"), rankedEntries())
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if series != nil {
		t.Errorf("series = %v, want nil", series)
	}

	var unsupported *UnsupportedKindError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedKindError, got %T", err)
	}
	if unsupported.Kind != "unknown" {
		t.Errorf("error kind = %q, want %q", unsupported.Kind, "unknown")
	}
}

func TestToSeries_Empty(t *testing.T) {
	series, err := ToSeries(KindBar, nil)
	if err != nil {
		t.Fatalf("ToSeries: %v", err)
	}
	if len(series.Labels) != 0 || len(series.Values) != 0 {
		t.Errorf("expected empty series, got %v", series)
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(string(kind))
		if err != nil {
			t.Errorf("ParseKind(%q): %v", kind, err)
		}
		if parsed != kind {
			t.Errorf("ParseKind(%q) = %q", kind, parsed)
		}
	}

	if _, err := ParseKind("histogram"); err == nil {
		t.Error("expected error for unknown kind string")
	}
}
