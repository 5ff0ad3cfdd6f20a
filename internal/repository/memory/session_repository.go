package memory

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"smart-trolley-be/pkg/store"
)

type ISessionRepository interface {
	Save(session *store.Session)
	Get(id uuid.UUID) (*store.Session, bool)
	Delete(id uuid.UUID)
}

// sessionRepository keeps live shopper sessions in process memory.
// Sessions idle for an hour are evicted; a trolley that comes back
// after that simply starts a fresh session.
type sessionRepository struct {
	cache *gocache.Cache
}

func NewSessionRepository() ISessionRepository {
	return &sessionRepository{
		cache: gocache.New(1*time.Hour, 10*time.Minute),
	}
}

func (r *sessionRepository) Save(session *store.Session) {
	r.cache.Set(session.Id.String(), session, gocache.DefaultExpiration)
}

func (r *sessionRepository) Get(id uuid.UUID) (*store.Session, bool) {
	raw, found := r.cache.Get(id.String())
	if !found {
		return nil, false
	}
	session, ok := raw.(*store.Session)
	if !ok {
		return nil, false
	}
	// Sliding expiry: touching a session keeps it alive.
	r.cache.Set(id.String(), session, gocache.DefaultExpiration)
	return session, true
}

func (r *sessionRepository) Delete(id uuid.UUID) {
	r.cache.Delete(id.String())
}
