package extraction

import (
	"time"

	"voiceinbox/internal/model"
	"voiceinbox/pkg/datemath"
)

type rulesEngine struct {
	ids   IDGenerator
	dates *datemath.Resolver
}

// New creates the rule-based extraction engine.
func New(ids IDGenerator, dates *datemath.Resolver) Engine {
	return &rulesEngine{
		ids:   ids,
		dates: dates,
	}
}

// Extract runs the pipeline: segment → classify → tag → date-resolve →
// format → assemble. Each segment yields exactly one draft, task or note,
// in transcript order. Due dates are resolved for tasks only, against the
// passed reference time.
func (e *rulesEngine) Extract(text string, now time.Time, opts Options) Result {
	segments := Segment(text, opts.Aggressive)

	result := Result{
		Tasks: make([]model.TaskDraft, 0, len(segments)),
		Notes: make([]model.NoteDraft, 0, len(segments)),
	}

	for _, segment := range segments {
		intent := ClassifyIntent(segment)
		tags := InferTags(segment)

		if intent.Kind == IntentTask {
			draft := model.TaskDraft{
				ID:         e.ids.NewID(),
				Confidence: intent.Confidence,
				Title:      TaskTitle(segment),
				ListID:     opts.DefaultTaskListID,
				Tags:       tags,
			}
			if due, ok := e.dates.ResolveDueDate(segment, now); ok {
				draft.DueDate = due.ISODate
			}
			result.Tasks = append(result.Tasks, draft)
			continue
		}

		result.Notes = append(result.Notes, model.NoteDraft{
			ID:         e.ids.NewID(),
			Confidence: intent.Confidence,
			Title:      NoteTitle(segment),
			Body:       segment,
			FolderID:   opts.DefaultNoteFolderID,
			Tags:       tags,
		})
	}

	return result
}
