package analysis

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer applies a configurable pipeline of normalization steps.
type Normalizer struct {
	steps []NormalizerFunc
}

// NewNormalizer creates a normalizer with the default pipeline.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		// Markup is stripped before folding: fullwidth ＜…＞ is page
		// prose, not a tag, and must not become one via NFKC.
		steps: []NormalizerFunc{
			StripMarkup,
			NFKCFold,
			RestrictCharset,
			CollapseWhitespace,
		},
	}
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

var (
	markupPattern     = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NFKCFold applies Unicode NFKC normalization.
// Folds fullwidth Latin forms (Ａ → A) so they survive RestrictCharset.
func NFKCFold(s string) string {
	return norm.NFKC.String(s)
}

// StripMarkup removes anything that looks like an HTML tag.
// This is a dumb bracket-stripping pass, not an HTML parser: it makes no
// attempt to balance or validate tags.
func StripMarkup(s string) string {
	return markupPattern.ReplaceAllString(s, "")
}

// RestrictCharset replaces every rune that is not a CJK ideograph
// (U+4E00..U+9FFF) or an ASCII letter with a single space.
func RestrictCharset(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if isSupportedRune(r) {
			result.WriteRune(r)
		} else {
			result.WriteByte(' ')
		}
	}
	return result.String()
}

// CollapseWhitespace collapses whitespace runs to one space and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// isSupportedRune reports whether r belongs to the supported alphabets.
func isSupportedRune(r rune) bool {
	if r >= 0x4E00 && r <= 0x9FFF {
		return true
	}
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isHan reports whether r is a CJK ideograph in the supported range.
func isHan(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}
