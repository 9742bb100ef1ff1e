package memory

import (
	"context"
	"sort"
	"sync"

	"voiceinbox/internal/model"
)

type transcriptStore struct {
	mu          sync.RWMutex
	transcripts []model.Transcript
}

// NewTranscriptStore creates an empty in-memory transcript store.
func NewTranscriptStore() *transcriptStore {
	return &transcriptStore{}
}

func (s *transcriptStore) Create(ctx context.Context, t model.Transcript) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcripts = append(s.transcripts, t)
	return nil
}

// List returns transcripts newest first.
func (s *transcriptStore) List(ctx context.Context) ([]model.Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Transcript, len(s.transcripts))
	copy(out, s.transcripts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
