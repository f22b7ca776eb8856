package analysis

// Script identifies the writing system of a run of text.
type Script int

const (
	ScriptLatin Script = iota
	ScriptHan
	ScriptSeparator
)

// Run is a maximal substring whose runes share one script class.
type Run struct {
	Text   string
	Script Script
	Start  int
	End    int
}

// SplitRuns splits text into maximal same-script runs.
// Han ideographs, ASCII letters, and everything else (separators) each
// form their own run class, so a Latin word glued to a Han phrase is
// still split at the script boundary.
func SplitRuns(text string) []Run {
	var runs []Run
	runes := []rune(text)

	if len(runes) == 0 {
		return runs
	}

	start := 0
	currentScript := scriptOf(runes[0])

	for i := 1; i <= len(runes); i++ {
		var nextScript Script
		if i < len(runes) {
			nextScript = scriptOf(runes[i])
		} else {
			nextScript = Script(-1) // Force flush
		}

		if nextScript != currentScript {
			runs = append(runs, Run{
				Text:   string(runes[start:i]),
				Script: currentScript,
				Start:  start,
				End:    i,
			})
			start = i
			currentScript = nextScript
		}
	}

	return runs
}

// scriptOf classifies a rune into a script class.
func scriptOf(r rune) Script {
	switch {
	case isHan(r):
		return ScriptHan
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return ScriptLatin
	default:
		return ScriptSeparator
	}
}
