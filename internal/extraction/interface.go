package extraction

import "time"

// Engine turns raw transcript text into scored task and note drafts.
type Engine interface {
	// Extract segments the transcript, classifies each segment, and
	// assembles drafts. It is a pure function of (text, now, opts) apart
	// from the generated draft identifiers, never fails, and treats any
	// string input as best-effort text.
	Extract(text string, now time.Time, opts Options) Result
}

// IDGenerator produces fresh draft identifiers. Injectable so tests can
// assert on deterministic sequences.
type IDGenerator interface {
	NewID() string
}
