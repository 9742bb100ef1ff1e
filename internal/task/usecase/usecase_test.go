package usecase_test

import (
	"context"
	"errors"
	"testing"

	"voiceinbox/internal/task"
	"voiceinbox/internal/task/repository/memory"
	"voiceinbox/internal/task/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newUseCase() task.UseCase {
	return usecase.New(&mockLogger{}, memory.New(), "Inbox")
}

func TestEnsureDefaultList(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	first, err := uc.EnsureDefaultList(ctx)
	if err != nil {
		t.Fatalf("EnsureDefaultList: %v", err)
	}
	if first.Name != "Inbox" {
		t.Errorf("default list name = %q, want %q", first.Name, "Inbox")
	}
	if first.ID == "" {
		t.Error("default list has empty ID")
	}

	// Calling again must not create a second list.
	second, err := uc.EnsureDefaultList(ctx)
	if err != nil {
		t.Fatalf("EnsureDefaultList (second call): %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second call returned list %s, want %s", second.ID, first.ID)
	}

	lists, err := uc.ListLists(ctx)
	if err != nil {
		t.Fatalf("ListLists: %v", err)
	}
	if len(lists) != 1 {
		t.Errorf("got %d lists, want 1", len(lists))
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	if _, err := uc.Create(ctx, task.CreateInput{Title: "   "}); !errors.Is(err, task.ErrEmptyTitle) {
		t.Errorf("Create with blank title: err = %v, want ErrEmptyTitle", err)
	}

	if _, err := uc.Create(ctx, task.CreateInput{Title: "pay rent", ListID: "missing"}); !errors.Is(err, task.ErrListNotFound) {
		t.Errorf("Create with unknown list: err = %v, want ErrListNotFound", err)
	}
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	list, err := uc.EnsureDefaultList(ctx)
	if err != nil {
		t.Fatalf("EnsureDefaultList: %v", err)
	}

	created, err := uc.Create(ctx, task.CreateInput{
		Title:              "call the dentist",
		DueDate:            "2024-05-02",
		ListID:             list.ID,
		Tags:               []string{"health"},
		SourceTranscriptID: "transcript-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("created task has empty ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("created task is missing timestamps")
	}

	tasks, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	got := tasks[0]
	if got.Title != "call the dentist" || got.DueDate != "2024-05-02" || got.SourceTranscriptID != "transcript-1" {
		t.Errorf("persisted task = %+v", got)
	}
}

func TestSetCompleted(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	created, err := uc.Create(ctx, task.CreateInput{Title: "buy milk"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done, err := uc.SetCompleted(ctx, created.ID, true)
	if err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	if !done.Completed {
		t.Error("task not marked completed")
	}
	if !done.UpdatedAt.After(created.UpdatedAt) && !done.UpdatedAt.Equal(created.UpdatedAt) {
		t.Error("UpdatedAt went backwards")
	}

	undone, err := uc.SetCompleted(ctx, created.ID, false)
	if err != nil {
		t.Fatalf("SetCompleted(false): %v", err)
	}
	if undone.Completed {
		t.Error("task still marked completed")
	}

	if _, err := uc.SetCompleted(ctx, "missing", true); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("SetCompleted on unknown task: err = %v, want ErrTaskNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	created, err := uc.Create(ctx, task.CreateInput{Title: "buy milk"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	tasks, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("got %d tasks after delete, want 0", len(tasks))
	}

	if err := uc.Delete(ctx, created.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Delete on unknown task: err = %v, want ErrTaskNotFound", err)
	}
}
