package analysis

import (
	"reflect"
	"testing"
)

func newTestTokenizer(t *testing.T) *Tokenizer {
	t.Helper()
	tok, err := NewTokenizer()
	if err != nil {
		t.Fatalf("Failed to create tokenizer: %v", err)
	}
	return tok
}

func TestTokenizer_LatinOnly(t *testing.T) {
	tok := newTestTokenizer(t)

	result := tok.Tokenize("the cat sat on the mat")
	expected := []string{"the", "cat", "sat", "on", "the", "mat"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Tokenize = %v, want %v", result, expected)
	}
}

func TestTokenizer_Empty(t *testing.T) {
	tok := newTestTokenizer(t)

	if result := tok.Tokenize(""); len(result) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", result)
	}
}

func TestTokenizer_HanSegmentation(t *testing.T) {
	tok := newTestTokenizer(t)

	result := tok.Tokenize("今天天气不错")

	if len(result) == 0 {
		t.Fatal("expected tokens from Han text, got none")
	}
	// Segmentation must cover the input exactly, in order.
	var rebuilt string
	for _, token := range result {
		rebuilt += token
	}
	if rebuilt != "今天天气不错" {
		t.Errorf("tokens %v do not cover the input, rebuilt %q", result, rebuilt)
	}
}

func TestTokenizer_MixedScripts(t *testing.T) {
	tok := newTestTokenizer(t)

	result := tok.Tokenize("今天天气不错 hello world")

	seen := make(map[string]bool)
	for _, token := range result {
		seen[token] = true
	}
	for _, want := range []string{"hello", "world"} {
		if !seen[want] {
			t.Errorf("Tokenize missing %q, got %v", want, result)
		}
	}
	// Latin tokens must come after the Han tokens, in source order.
	if len(result) < 3 || result[len(result)-2] != "hello" || result[len(result)-1] != "world" {
		t.Errorf("tokens out of source order: %v", result)
	}
}

func TestTokenizer_NoCrossBoundaryTokens(t *testing.T) {
	tok := newTestTokenizer(t)

	// A Latin word glued to Han text must still split at the script
	// boundary.
	result := tok.Tokenize("abc中文")

	if len(result) == 0 || result[0] != "abc" {
		t.Errorf("expected leading token %q, got %v", "abc", result)
	}
	for _, token := range result {
		hasHan, hasLatin := false, false
		for _, r := range token {
			if isHan(r) {
				hasHan = true
			} else {
				hasLatin = true
			}
		}
		if hasHan && hasLatin {
			t.Errorf("token %q crosses a script boundary", token)
		}
	}
}

func TestTokenizer_Deterministic(t *testing.T) {
	tok := newTestTokenizer(t)

	input := "北京的秋天 falling leaves 很美"
	first := tok.Tokenize(input)
	tok.ClearCache()
	second := tok.Tokenize(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("tokenization not deterministic: %v != %v", first, second)
	}
}

func TestTokenizer_Cache(t *testing.T) {
	tok := newTestTokenizer(t)

	if !tok.CacheEnabled() {
		t.Fatal("expected cache to be enabled")
	}

	tok.Tokenize("hello world")
	if tok.CacheSize() != 1 {
		t.Errorf("CacheSize = %d, want 1", tok.CacheSize())
	}

	tok.ClearCache()
	if tok.CacheSize() != 0 {
		t.Errorf("CacheSize after clear = %d, want 0", tok.CacheSize())
	}
}

func TestTokenizer_NoCache(t *testing.T) {
	tok, err := NewTokenizerNoCache()
	if err != nil {
		t.Fatalf("Failed to create tokenizer: %v", err)
	}

	if tok.CacheEnabled() {
		t.Error("expected cache to be disabled")
	}

	result := tok.Tokenize("hello world")
	expected := []string{"hello", "world"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Tokenize = %v, want %v", result, expected)
	}
}
