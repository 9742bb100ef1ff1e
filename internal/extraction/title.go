package extraction

import "strings"

// TaskTitle derives a display title for a task segment. When a task phrase
// appears in the segment, the title is the remainder after the
// earliest-occurring one ("remind me to call mom" → "call mom"); otherwise
// the whole normalized segment.
func TaskTitle(segment string) string {
	s := normalizeSegment(segment)
	lowered := strings.ToLower(s)

	best := -1
	bestLen := 0
	for _, phrase := range taskPhrases {
		idx := strings.Index(lowered, phrase)
		if idx < 0 {
			continue
		}
		if best == -1 || idx < best {
			best = idx
			bestLen = len(phrase)
		}
	}

	if best >= 0 {
		tail := strings.TrimSpace(s[best+bestLen:])
		if tail != "" {
			return tail
		}
	}

	return s
}

// NoteTitle derives a display title for a note segment, truncating long
// segments at 40 characters with an ellipsis.
func NoteTitle(segment string) string {
	s := normalizeSegment(segment)
	runes := []rune(s)
	if len(runes) <= noteTitleMaxLen {
		return s
	}
	return strings.TrimSpace(string(runes[:noteTitleMaxLen])) + "…"
}
