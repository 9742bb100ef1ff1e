package extraction

import "strings"

// ClassifyIntent decides whether a segment is a task-like or note-like
// statement. Rules are checked in fixed priority order and the first match
// wins: note phrases, then task phrases, then task verbs. Anything else
// defaults to a low-confidence note, since a missed task is safer than a
// spurious one.
func ClassifyIntent(segment string) Intent {
	t := strings.ToLower(segment)

	for _, phrase := range notePhrases {
		if strings.Contains(t, phrase) {
			return Intent{Kind: IntentNote, Confidence: confidenceNotePhrase}
		}
	}

	for _, phrase := range taskPhrases {
		if strings.Contains(t, phrase) {
			return Intent{Kind: IntentTask, Confidence: confidenceTaskPhrase}
		}
	}

	for _, verb := range taskVerbs {
		if strings.HasPrefix(t, verb+" ") || strings.Contains(t, " "+verb+" ") {
			return Intent{Kind: IntentTask, Confidence: confidenceTaskVerb}
		}
	}

	return Intent{Kind: IntentNote, Confidence: confidenceNoteDefault}
}
