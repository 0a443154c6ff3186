package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"itodo/internal/todo/repository"
	pkgLog "itodo/pkg/log"
)

type session struct {
	mu    sync.Mutex
	store repository.ListStore
	refs  int // guarded by implRepository.createMu
}

type implRepository struct {
	sessions *expirable.LRU[string, *session]
	// inUse holds sessions with a Do in flight, so an LRU eviction during fn
	// never detaches the store a later request would see.
	inUse map[string]*session
	// createMu guards get-or-create and inUse; per-session work holds session.mu only.
	createMu sync.Mutex
	l        pkgLog.Logger
}

// Config bounds the in-memory session registry.
type Config struct {
	MaxSessions int
	TTL         time.Duration
}

// New creates an in-memory SessionRepository. Sessions idle for longer than
// cfg.TTL, or evicted when cfg.MaxSessions is exceeded, lose their list.
func New(cfg Config, l pkgLog.Logger) repository.SessionRepository {
	r := &implRepository{l: l, inUse: make(map[string]*session)}
	r.sessions = expirable.NewLRU[string, *session](cfg.MaxSessions, r.onEvict, cfg.TTL)
	return r
}

func (r *implRepository) onEvict(sessionID string, _ *session) {
	r.l.Debugf(context.Background(), "memory.SessionRepository: session %s dropped", sessionID)
}

func (r *implRepository) acquire(sessionID string) *session {
	r.createMu.Lock()
	defer r.createMu.Unlock()

	s, ok := r.sessions.Get(sessionID)
	if !ok {
		s, ok = r.inUse[sessionID]
	}
	if !ok {
		s = &session{store: NewListStore()}
	}
	s.refs++
	r.inUse[sessionID] = s
	// Re-adding refreshes the idle TTL.
	r.sessions.Add(sessionID, s)
	return s
}

// release puts a session evicted while in use back into the registry; it was
// the most recently used one.
func (r *implRepository) release(sessionID string, s *session) {
	r.createMu.Lock()
	defer r.createMu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(r.inUse, sessionID)
	}
	if _, ok := r.sessions.Peek(sessionID); !ok {
		r.sessions.Add(sessionID, s)
	}
}

func (r *implRepository) Do(ctx context.Context, opt repository.DoOptions, fn func(store repository.ListStore) error) error {
	s := r.acquire(opt.SessionID)
	defer r.release(opt.SessionID, s)

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.store)
}

func (r *implRepository) Len() int {
	return r.sessions.Len()
}
