// Response cleaning and completeness heuristics

package chatgpt

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// chromeTokens are UI fragments that leak into scraped replies: button
// labels and the streaming-cursor glyph. Longer variants come first so the
// shorter "Regenerate" does not leave "response" behind.
var chromeTokens = []string{
	"Regenerate response",
	"Continue generating",
	"Regenerate",
	"▍",
}

var blankRuns = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)

// CleanResponse strips chrome tokens from raw extracted text, collapses the
// blank-line runs the removals leave behind, and trims surrounding
// whitespace. Idempotent.
func CleanResponse(raw string) string {
	// A removal can splice a token together ("Regen▍erate" loses the glyph
	// and becomes "Regenerate"), so sweep until a full pass changes nothing.
	s := raw
	for {
		before := s
		for _, tok := range chromeTokens {
			s = strings.ReplaceAll(s, tok, "")
		}
		if s == before {
			break
		}
	}
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Completeness signal names reported by LikelyComplete.
const (
	SignalLength       = "length"
	SignalTerminalPunc = "terminal-punctuation"
	SignalParagraph    = "paragraph-break"
	SignalSentence     = "sentence-shape"
)

var terminalPunctuation = map[rune]bool{
	'.': true, '!': true, '?': true, ':': true,
	')': true, '}': true, ']': true,
}

var sentenceShape = regexp.MustCompile(`^(?s)[A-Z].*[.!?]$`)

// LikelyComplete reports whether cleaned text looks like a finished reply,
// along with the name of the signal that fired. It is a heuristic used only
// to emit a warning; a negative verdict never blocks returning the result,
// and false positives or negatives are acceptable.
//
// minLen is the rune count above which text is considered complete on length
// alone.
func LikelyComplete(cleaned string, minLen int) (bool, string) {
	if cleaned == "" {
		return false, ""
	}

	if utf8.RuneCountInString(cleaned) > minLen {
		return true, SignalLength
	}

	// Sentence shape is checked before the bare punctuation test so that the
	// more specific signal wins attribution; the boolean verdict is the same
	// either way.
	if sentenceShape.MatchString(cleaned) {
		return true, SignalSentence
	}

	runes := []rune(cleaned)
	if terminalPunctuation[runes[len(runes)-1]] {
		return true, SignalTerminalPunc
	}

	if strings.Contains(cleaned, "\n\n") {
		return true, SignalParagraph
	}

	return false, ""
}
