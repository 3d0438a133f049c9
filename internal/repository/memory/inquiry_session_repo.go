package memory

import (
	"context"
	"sync"
	"time"

	"go-landing-backend/internal/domain"
	"go-landing-backend/pkg/logger"
)

// sessionEntry tracks a live session and when it was last used
type sessionEntry struct {
	session  *domain.InquirySession
	lastSeen time.Time
}

type inquirySessionRepo struct {
	mu          sync.Mutex
	sessions    map[string]*sessionEntry
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
}

// InquirySessionRepository is the in-memory store plus its eviction hook
type InquirySessionRepository interface {
	domain.InquirySessionRepository
	// EvictExpired closes and removes sessions idle for longer than the TTL
	EvictExpired() int
	// StartCleanup evicts expired sessions every interval until ctx is done
	StartCleanup(ctx context.Context, interval time.Duration)
}

// NewInquirySessionRepository creates an in-memory session store.
// Sessions idle for longer than ttl are evicted and their engines closed.
// At most maxSessions live at once; zero or less means unbounded.
func NewInquirySessionRepository(ttl time.Duration, maxSessions int) InquirySessionRepository {
	return newInquirySessionRepo(ttl, maxSessions, time.Now)
}

func newInquirySessionRepo(ttl time.Duration, maxSessions int, now func() time.Time) *inquirySessionRepo {
	return &inquirySessionRepo{
		sessions:    make(map[string]*sessionEntry),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         now,
	}
}

// Save stores session. When the store is full, expired sessions are evicted
// first; if it is still full, ErrSessionLimit is returned.
func (r *inquirySessionRepo) Save(ctx context.Context, session *domain.InquirySession) error {
	r.mu.Lock()
	now := r.now()

	var evicted []*domain.InquirySession
	if _, exists := r.sessions[session.ID]; !exists && r.full() {
		evicted = r.evictLocked(now)
		if r.full() {
			r.mu.Unlock()
			closeAll(evicted)
			return domain.ErrSessionLimit
		}
	}

	r.sessions[session.ID] = &sessionEntry{session: session, lastSeen: now}
	r.mu.Unlock()

	closeAll(evicted)
	return nil
}

func (r *inquirySessionRepo) full() bool {
	return r.maxSessions > 0 && len(r.sessions) >= r.maxSessions
}

func (r *inquirySessionRepo) Get(ctx context.Context, id string) (*domain.InquirySession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	now := r.now()
	if r.expired(entry, now) {
		delete(r.sessions, id)
		entry.session.Engine.Close()
		return nil, domain.ErrSessionNotFound
	}
	entry.lastSeen = now
	return entry.session, nil
}

func (r *inquirySessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	entry, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}
	entry.session.Engine.Close()
	return nil
}

func (r *inquirySessionRepo) expired(entry *sessionEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(entry.lastSeen) > r.ttl
}

func (r *inquirySessionRepo) EvictExpired() int {
	r.mu.Lock()
	evicted := r.evictLocked(r.now())
	r.mu.Unlock()

	closeAll(evicted)
	return len(evicted)
}

// evictLocked removes expired entries. Caller holds mu and closes the result.
func (r *inquirySessionRepo) evictLocked(now time.Time) []*domain.InquirySession {
	var evicted []*domain.InquirySession
	for id, entry := range r.sessions {
		if r.expired(entry, now) {
			evicted = append(evicted, entry.session)
			delete(r.sessions, id)
		}
	}
	return evicted
}

func closeAll(sessions []*domain.InquirySession) {
	for _, s := range sessions {
		s.Engine.Close()
	}
}

func (r *inquirySessionRepo) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.EvictExpired(); n > 0 {
					logger.Log.Debug("evicted idle inquiry sessions", "count", n)
				}
			}
		}
	}()
}
