package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/docnav/internal/domain"
	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/metrics"
	"github.com/kailas-cloud/docnav/internal/usecase/controller"
)

// Session is one page's search modal: its key hub and the controller mounted on it.
type Session struct {
	mu       sync.Mutex
	id       string
	hub      *controller.Hub
	ctrl     *controller.Controller
	nav      *lastNavigation
	lastSeen time.Time
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// View gives callers of Registry.Do access to one session under its lock.
type View struct {
	Controller *controller.Controller
	Hub        *controller.Hub
	// NavigatedTo is the path of the last selection, empty if none.
	NavigatedTo string
}

type lastNavigation struct {
	path string
}

func (n *lastNavigation) Navigate(path string) { n.path = path }

// Config tunes the registry.
type Config struct {
	MaxSessions int
	IdleTTL     time.Duration
	Shortcut    controller.Shortcut
}

// Registry owns the live sessions. It is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	cfg      Config
	now      func() time.Time
}

// New creates an empty registry.
func New(cfg Config) *Registry {
	if cfg.Shortcut.Key == "" {
		cfg.Shortcut = controller.DefaultShortcut
	}
	return &Registry{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		now:      time.Now,
	}
}

// Create mounts a new controller for code. Idle sessions are evicted first;
// ErrTooManySessions is returned when the registry is still full.
func (r *Registry) Create(code locale.Code) (*Session, error) {
	if !code.IsValid() {
		return nil, domain.ErrUnsupportedLocale
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictIdleLocked()
	if r.cfg.MaxSessions > 0 && len(r.sessions) >= r.cfg.MaxSessions {
		return nil, domain.ErrTooManySessions
	}

	nav := &lastNavigation{}
	s := &Session{
		id:  uuid.New().String(),
		hub: controller.NewHub(),
		nav: nav,
		ctrl: controller.New(code, nav,
			controller.WithShortcut(r.cfg.Shortcut),
			controller.WithOpenHook(func(viaShortcut bool) {
				if viaShortcut {
					metrics.SearchShortcutOpensTotal.Inc()
				}
			}),
		),
		lastSeen: r.now(),
	}
	if err := s.ctrl.Mount(s.hub); err != nil {
		return nil, err
	}

	r.sessions[s.id] = s
	metrics.SearchSessionsActive.Inc()
	return s, nil
}

// Do runs fn on session id under the session lock.
func (r *Registry) Do(id string, fn func(v *View) error) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		s.lastSeen = r.now()
	}
	r.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nav.path = ""
	v := &View{Controller: s.ctrl, Hub: s.hub}
	err := fn(v)
	v.NavigatedTo = s.nav.path
	if v.NavigatedTo != "" {
		metrics.SearchSelectionsTotal.WithLabelValues(s.ctrl.Locale().String()).Inc()
	}
	return err
}

// Delete unmounts and discards session id.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}

	s.release()
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close unmounts every session.
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range all {
		s.release()
	}
}

func (r *Registry) evictIdleLocked() {
	if r.cfg.IdleTTL <= 0 {
		return
	}
	cutoff := r.now().Add(-r.cfg.IdleTTL)
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			s.release()
		}
	}
}

func (s *Session) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.Unmount()
	s.ctrl.Close()
	metrics.SearchSessionsActive.Dec()
}
