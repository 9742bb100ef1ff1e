// Package memory holds review state in process: an expiring store for
// sessions (abandoned reviews disappear on their own) and a plain slice
// for transcript history.
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voiceinbox/internal/model"
)

type sessionStore struct {
	sessions *expirable.LRU[string, model.ReviewSession]
}

// NewSessionStore creates a session store evicting entries after ttl,
// holding at most capacity open sessions.
func NewSessionStore(capacity int, ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: expirable.NewLRU[string, model.ReviewSession](capacity, nil, ttl),
	}
}

func (s *sessionStore) Save(ctx context.Context, session model.ReviewSession) error {
	s.sessions.Add(session.ID, session)
	return nil
}

func (s *sessionStore) Get(ctx context.Context, id string) (model.ReviewSession, bool) {
	return s.sessions.Get(id)
}

func (s *sessionStore) Delete(ctx context.Context, id string) error {
	s.sessions.Remove(id)
	return nil
}
