package extraction_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"voiceinbox/internal/extraction"
	"voiceinbox/internal/model"
	"voiceinbox/pkg/datemath"
)

// seqIDGenerator hands out deterministic identifiers for test assertions.
type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("draft-%d", g.n)
}

func newTestEngine() extraction.Engine {
	resolver, _ := datemath.NewResolver("UTC")
	return extraction.New(&seqIDGenerator{}, resolver)
}

var testOpts = extraction.Options{
	DefaultTaskListID:   "list-1",
	DefaultNoteFolderID: "folder-1",
}

func TestExtractTaskAndNote(t *testing.T) {
	engine := newTestEngine()
	// Wednesday, May 1, 2024
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	result := engine.Extract(
		"Remind me to call the dentist tomorrow. Also note that the invoice was paid.",
		now, testOpts)

	if len(result.Tasks) != 1 || len(result.Notes) != 1 {
		t.Fatalf("expected 1 task and 1 note, got %d/%d", len(result.Tasks), len(result.Notes))
	}

	task := result.Tasks[0]
	if task.Title != "call the dentist tomorrow." {
		t.Errorf("task title = %q", task.Title)
	}
	if task.Confidence != 0.85 {
		t.Errorf("task confidence = %v, want 0.85", task.Confidence)
	}
	if task.DueDate != "2024-05-02" {
		t.Errorf("task due date = %q, want 2024-05-02", task.DueDate)
	}
	if task.ListID != "list-1" {
		t.Errorf("task list = %q", task.ListID)
	}
	if !reflect.DeepEqual(task.Tags, []string{"health"}) {
		t.Errorf("task tags = %v, want [health]", task.Tags)
	}

	note := result.Notes[0]
	if note.Title != "Also note that the invoice was paid." {
		t.Errorf("note title = %q", note.Title)
	}
	if note.Body != "Also note that the invoice was paid." {
		t.Errorf("note body = %q", note.Body)
	}
	if note.Confidence != 0.85 {
		t.Errorf("note confidence = %v, want 0.85", note.Confidence)
	}
	if note.FolderID != "folder-1" {
		t.Errorf("note folder = %q", note.FolderID)
	}
	if !reflect.DeepEqual(note.Tags, []string{"finance"}) {
		t.Errorf("note tags = %v, want [finance]", note.Tags)
	}
}

func TestExtractAggressive(t *testing.T) {
	engine := newTestEngine()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	opts := testOpts
	opts.Aggressive = true
	result := engine.Extract("I need to buy milk and then call mom", now, opts)

	if len(result.Tasks) != 2 || len(result.Notes) != 0 {
		t.Fatalf("expected 2 tasks and 0 notes, got %d/%d", len(result.Tasks), len(result.Notes))
	}

	first := result.Tasks[0]
	if first.Title != "buy milk" {
		t.Errorf("first title = %q", first.Title)
	}
	if first.Confidence != 0.85 {
		t.Errorf("first confidence = %v, want 0.85", first.Confidence)
	}
	if !reflect.DeepEqual(first.Tags, []string{"shopping"}) {
		t.Errorf("first tags = %v, want [shopping]", first.Tags)
	}

	second := result.Tasks[1]
	if second.Title != "call mom" {
		t.Errorf("second title = %q", second.Title)
	}
	if second.Confidence != 0.7 {
		t.Errorf("second confidence = %v, want 0.7", second.Confidence)
	}
	if second.Tags != nil {
		t.Errorf("second tags = %v, want absent", second.Tags)
	}
}

func TestExtractUnmatchedSegmentDefaultsToNote(t *testing.T) {
	engine := newTestEngine()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	result := engine.Extract("the sky was very clear this morning", now, testOpts)

	if len(result.Tasks) != 0 || len(result.Notes) != 1 {
		t.Fatalf("expected 0 tasks and 1 note, got %d/%d", len(result.Tasks), len(result.Notes))
	}
	if result.Notes[0].Confidence != 0.55 {
		t.Errorf("confidence = %v, want 0.55", result.Notes[0].Confidence)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	engine := newTestEngine()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for _, text := range []string{"", "   \n\t  "} {
		result := engine.Extract(text, now, testOpts)
		if len(result.Tasks) != 0 || len(result.Notes) != 0 {
			t.Errorf("expected empty result for %q, got %d/%d",
				text, len(result.Tasks), len(result.Notes))
		}
	}
}

func TestExtractEverySegmentYieldsOneDraft(t *testing.T) {
	engine := newTestEngine()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	texts := []string{
		"Remind me to call the dentist tomorrow. Also note that the invoice was paid.",
		"buy milk. pay the bill. idea for a blog post. random musing",
		"one long sentence with no punctuation at all going on and on",
	}

	for _, text := range texts {
		for _, aggressive := range []bool{false, true} {
			opts := testOpts
			opts.Aggressive = aggressive

			segments := extraction.Segment(text, aggressive)
			result := engine.Extract(text, now, opts)

			if got := len(result.Tasks) + len(result.Notes); got != len(segments) {
				t.Errorf("drafts(%d) != segments(%d) for %q aggressive=%v",
					got, len(segments), text, aggressive)
			}
		}
	}
}

func TestExtractConfidenceBounds(t *testing.T) {
	engine := newTestEngine()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	result := engine.Extract(
		"Remind me to pay the tax bill next friday. FYI the gym is closed. whatever else",
		now, extraction.Options{Aggressive: true, DefaultTaskListID: "l", DefaultNoteFolderID: "f"})

	check := func(confidence float64) {
		if confidence < 0 || confidence > 1 {
			t.Errorf("confidence %v out of [0,1]", confidence)
		}
	}
	for _, task := range result.Tasks {
		check(task.Confidence)
	}
	for _, note := range result.Notes {
		check(note.Confidence)
	}
}

func TestExtractIdempotentExceptIDs(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	text := "Remind me to call the dentist tomorrow. Also note that the invoice was paid."

	first := extraction.New(&seqIDGenerator{}, resolver).Extract(text, now, testOpts)
	second := extraction.New(&seqIDGenerator{}, resolver).Extract(text, now, testOpts)

	stripTaskIDs := func(tasks []model.TaskDraft) []model.TaskDraft {
		out := make([]model.TaskDraft, len(tasks))
		for i, task := range tasks {
			task.ID = ""
			out[i] = task
		}
		return out
	}
	stripNoteIDs := func(notes []model.NoteDraft) []model.NoteDraft {
		out := make([]model.NoteDraft, len(notes))
		for i, note := range notes {
			note.ID = ""
			out[i] = note
		}
		return out
	}

	if !reflect.DeepEqual(stripTaskIDs(first.Tasks), stripTaskIDs(second.Tasks)) {
		t.Errorf("task drafts differ across identical calls")
	}
	if !reflect.DeepEqual(stripNoteIDs(first.Notes), stripNoteIDs(second.Notes)) {
		t.Errorf("note drafts differ across identical calls")
	}
}
