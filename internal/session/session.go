// Package session owns the process-wide credential: the bearer token proving
// the authenticated session plus the identity it belongs to. It is the only
// component allowed to mutate the credential, and it reacts to invalidation
// uniformly no matter which request detected it.
package session

import (
	"log/slog"
	"sync"

	"github.com/gpessoni/pokedex/internal/domain"
)

// Session is the credential store plus the session guard. Command goroutines
// read the token and may trigger invalidation concurrently, so it is
// mutex-guarded.
type Session struct {
	mu     sync.Mutex
	cred   *domain.Credential
	store  *Store // durable copy; may be nil (memory-only)
	logger *slog.Logger

	onInvalidate func()
}

// New creates a logged-out session. store may be nil.
func New(store *Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{store: store, logger: logger}
}

// OnInvalidate registers the hook run when an active session is torn down.
// It fires at most once per established credential, even when several
// concurrent requests report an expired session at the same time.
func (s *Session) OnInvalidate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onInvalidate = fn
}

// Establish stores a freshly issued credential and makes it durable.
// Persistence failure is non-fatal: the in-memory credential stays
// authoritative for the rest of the run.
func (s *Session) Establish(cred domain.Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := cred
	s.cred = &c
	if s.store != nil {
		if err := s.store.Save(cred); err != nil {
			s.logger.Warn("failed to persist credential", "error", err)
		}
	}
	s.logger.Info("session established", "user", cred.User.Email)
}

// Restore loads a previously persisted credential, the page-reload analog.
// Returns false when nothing usable is stored.
func (s *Session) Restore() bool {
	if s.store == nil {
		return false
	}
	cred, ok := s.store.Load()
	if !ok || cred.Token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = &cred
	s.logger.Info("session restored", "user", cred.User.Email)
	return true
}

// Invalidate tears the session down: memory and durable copy are cleared and
// the invalidation hook fires. Idempotent; calling it while already logged
// out does nothing, so concurrent 401s collapse into a single logout.
func (s *Session) Invalidate() {
	s.mu.Lock()
	if s.cred == nil {
		s.mu.Unlock()
		return
	}
	s.cred = nil
	if s.store != nil {
		if err := s.store.Clear(); err != nil {
			s.logger.Warn("failed to clear persisted credential", "error", err)
		}
	}
	fn := s.onInvalidate
	s.mu.Unlock()

	s.logger.Info("session invalidated")
	if fn != nil {
		fn()
	}
}

// Token returns the active bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return ""
	}
	return s.cred.Token
}

// User returns the authenticated identity snapshot.
func (s *Session) User() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return domain.User{}, false
	}
	return s.cred.User, true
}

// Authenticated reports whether a credential is active.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred != nil
}
