package chart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/linyuze/wordscope/pkg/analysis"
)

func TestRender_AllKinds(t *testing.T) {
	entries := []analysis.Entry{
		{Word: "词语", Count: 4},
		{Word: "hello", Count: 2},
	}

	for _, kind := range Kinds() {
		series, err := ToSeries(kind, entries)
		if err != nil {
			t.Fatalf("ToSeries(%s): %v", kind, err)
		}

		var buf bytes.Buffer
		if err := Render(&buf, series, "测试"); err != nil {
			t.Fatalf("Render(%s): %v", kind, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Render(%s) wrote nothing", kind)
		}
		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("Render(%s) output is missing the series labels", kind)
		}
	}
}

func TestRender_UnknownKind(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, &Series{Kind: Kind("unknown")}, "t")
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}

	var unsupported *UnsupportedKindError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedKindError, got %T", err)
	}
}
