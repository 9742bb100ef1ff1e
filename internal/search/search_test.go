package search_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"voiceinbox/internal/note"
	noteMemory "voiceinbox/internal/note/repository/memory"
	noteUsecase "voiceinbox/internal/note/usecase"
	"voiceinbox/internal/search"
	"voiceinbox/internal/task"
	taskMemory "voiceinbox/internal/task/repository/memory"
	taskUsecase "voiceinbox/internal/task/usecase"
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

type searchResp struct {
	ErrorCode int           `json:"error_code"`
	Message   string        `json:"message"`
	Data      search.Output `json:"data"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	ctx := context.Background()

	taskUC := taskUsecase.New(l, taskMemory.New(), "Inbox")
	noteUC := noteUsecase.New(l, noteMemory.New(), "Inbox")

	seedTasks := []task.CreateInput{
		{Title: "call the dentist", Notes: "ask about the invoice"},
		{Title: "buy milk"},
		{Title: "renew car insurance"},
	}
	for _, in := range seedTasks {
		if _, err := taskUC.Create(ctx, in); err != nil {
			t.Fatalf("seed task %q: %v", in.Title, err)
		}
	}

	seedNotes := []note.CreateInput{
		{Title: "wifi password is hunter2", Body: "for the guest network"},
		{Title: "meeting notes", Body: "dentist recommended a cleaning"},
	}
	for _, in := range seedNotes {
		if _, err := noteUC.Create(ctx, in); err != nil {
			t.Fatalf("seed note %q: %v", in.Title, err)
		}
	}

	router := gin.New()
	router.GET("/api/v1/search", search.New(l, taskUC, noteUC).HandleSearch)
	return router
}

func doSearch(t *testing.T, router *gin.Engine, target string) (int, searchResp) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)

	var body searchResp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, w.Body.String())
	}
	return w.Code, body
}

func TestHandleSearch(t *testing.T) {
	router := newRouter(t)

	code, body := doSearch(t, router, "/api/v1/search?q=dentist")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body.Data.Count < 2 {
		t.Fatalf("got %d results for %q, want at least 2 (task and note)", body.Data.Count, "dentist")
	}

	// Results come back best match first; on equal scores tasks keep
	// their position ahead of notes.
	first := body.Data.Results[0]
	if first.Kind != search.KindTask || first.Title != "call the dentist" {
		t.Errorf("top result = %+v, want the dentist task", first)
	}
	for i := 1; i < len(body.Data.Results); i++ {
		if body.Data.Results[i].Score > body.Data.Results[i-1].Score {
			t.Errorf("results not sorted by score: %v", body.Data.Results)
		}
	}
}

func TestHandleSearchLimit(t *testing.T) {
	router := newRouter(t)

	code, body := doSearch(t, router, "/api/v1/search?q=the&limit=1")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body.Data.Count > 1 {
		t.Errorf("got %d results with limit=1", body.Data.Count)
	}
}

func TestHandleSearchNoQuery(t *testing.T) {
	router := newRouter(t)

	code, body := doSearch(t, router, "/api/v1/search")
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if body.ErrorCode == 0 {
		t.Error("expected a non-zero error code")
	}
}

func TestHandleSearchNoMatches(t *testing.T) {
	router := newRouter(t)

	code, body := doSearch(t, router, "/api/v1/search?q=zzzzzz")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body.Data.Count != 0 {
		t.Errorf("got %d results for nonsense query, want 0", body.Data.Count)
	}
}
