package extraction

import (
	"regexp"
	"strings"
)

var (
	newlineRe    = regexp.MustCompile(`\n+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	// "and then" must come before "then" so the full connective is consumed.
	connectiveRe = regexp.MustCompile(`(?i)\b(?:and then|then|also)\b`)
)

// Segment splits raw transcript text into normalized, independently
// classifiable phrases. Paragraph breaks behave like sentence breaks. A
// transcript with no terminal punctuation is one sentence; empty or
// whitespace-only input yields no segments.
//
// With aggressive set, each sentence is further split on the connectives
// "and then", "then", and "also", trading precision for recall.
func Segment(text string, aggressive bool) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	normalized := newlineRe.ReplaceAllString(text, ". ")

	sentences := make([]string, 0, 4)
	for _, piece := range splitSentences(normalized) {
		if s := normalizeSegment(piece); s != "" {
			sentences = append(sentences, s)
		}
	}

	if !aggressive {
		return sentences
	}

	segments := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		for _, part := range connectiveRe.Split(sentence, -1) {
			if s := normalizeSegment(part); s != "" {
				segments = append(segments, s)
			}
		}
	}
	return segments
}

// splitSentences cuts text after every sentence-terminal punctuation mark
// that is followed by whitespace, keeping the punctuation attached to the
// preceding sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i+1 < len(text); i++ {
		if isTerminal(text[i]) && isSpace(text[i+1]) {
			sentences = append(sentences, text[start:i+1])
			start = i + 1
		}
	}
	return append(sentences, text[start:])
}

func isTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// normalizeSegment collapses internal whitespace runs and trims the ends.
func normalizeSegment(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
