package extraction

import "voiceinbox/internal/model"

// IntentKind says whether a segment reads as a task or a note.
type IntentKind string

const (
	IntentTask IntentKind = "task"
	IntentNote IntentKind = "note"
)

// Intent is the classification outcome for one segment.
type Intent struct {
	Kind       IntentKind
	Confidence float64 // 0..1
}

// Options configures one extraction call.
type Options struct {
	// Aggressive enables intra-sentence splitting on coordinating
	// connectives, yielding more, finer-grained drafts.
	Aggressive bool
	// DefaultTaskListID is assigned to every task draft until a reviewer
	// reassigns it.
	DefaultTaskListID string
	// DefaultNoteFolderID is assigned to every note draft until a reviewer
	// reassigns it.
	DefaultNoteFolderID string
}

// Result holds the drafts extracted from one transcript. Ordering follows
// the order segments were produced from the transcript, not confidence.
type Result struct {
	Tasks []model.TaskDraft `json:"tasks"`
	Notes []model.NoteDraft `json:"notes"`
}
