package memory

import (
	"context"
	"time"

	"lead-generator-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps dashboard sessions in process memory. Sessions
// expire after ttl of inactivity; every Save refreshes the expiry.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl, cleanupInterval time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (r *SessionRepository) Save(_ context.Context, session *entity.Session) error {
	stored := *session
	stored.Selection = session.Selection.Clone()
	r.cache.Set(session.Id.String(), &stored, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Get(_ context.Context, id uuid.UUID) (*entity.Session, bool, error) {
	x, found := r.cache.Get(id.String())
	if !found {
		return nil, false, nil
	}
	stored := x.(*entity.Session)
	out := *stored
	out.Selection = stored.Selection.Clone()
	return &out, true, nil
}

func (r *SessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}
