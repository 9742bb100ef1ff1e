package search

// ResultKind says what entity a search result points at.
type ResultKind string

const (
	KindTask ResultKind = "task"
	KindNote ResultKind = "note"
)

// Result is one scored search hit across tasks and notes.
type Result struct {
	Kind  ResultKind `json:"kind"`
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Score float64    `json:"score"` // 0..1
}

// Output is the combined search result set, best matches first.
type Output struct {
	Results []Result `json:"results"`
	Count   int      `json:"count"`
}

// DefaultLimit caps result sets when the caller does not ask for a limit.
const DefaultLimit = 50
