package docnav

import (
	"time"

	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/usecase/controller"
	"github.com/kailas-cloud/docnav/internal/usecase/session"
)

type sessionUseCase interface {
	Create(code locale.Code) (*session.Session, error)
	Do(id string, fn func(v *session.View) error) error
	Delete(id string) error
	Len() int
	Close()
}

// SessionService drives search modal sessions. Each session owns a controller
// mounted on its own keyboard hub.
type SessionService struct {
	svc sessionUseCase
	obs *observer
}

// Create starts a closed search session for lang ("" means the default locale).
func (s *SessionService) Create(lang string) (snap SessionSnapshot, err error) {
	start := time.Now()
	defer func() { s.obs.observe("session.create", start, err) }()

	code, err := parseLocale(lang)
	if err != nil {
		return SessionSnapshot{}, err
	}
	sess, err := s.svc.Create(code)
	if err != nil {
		return SessionSnapshot{}, err
	}
	return s.do(sess.ID(), func(*session.View) error { return nil })
}

// Get returns the current state of session id.
func (s *SessionService) Get(id string) (SessionSnapshot, error) {
	return s.do(id, func(*session.View) error { return nil })
}

// Open shows the search modal.
func (s *SessionService) Open(id string) (SessionSnapshot, error) {
	return s.do(id, func(v *session.View) error {
		v.Controller.Open()
		return nil
	})
}

// Close hides the search modal and clears its query.
func (s *SessionService) Close(id string) (SessionSnapshot, error) {
	return s.do(id, func(v *session.View) error {
		v.Controller.Close()
		return nil
	})
}

// SetQuery replaces the query of an open modal. Returns ErrSearchClosed otherwise.
func (s *SessionService) SetQuery(id, query string) (SessionSnapshot, error) {
	return s.do(id, func(v *session.View) error {
		return v.Controller.SetQuery(query)
	})
}

// Select picks the i-th result. The returned snapshot carries NavigateTo.
func (s *SessionService) Select(id string, i int) (snap SessionSnapshot, err error) {
	start := time.Now()
	defer func() { s.obs.observe("session.select", start, err) }()

	return s.do(id, func(v *session.View) error {
		_, err := v.Controller.Select(i)
		return err
	})
}

// Key dispatches a key press to the session's keyboard hub.
// handled is true when a listener consumed the event.
func (s *SessionService) Key(id string, ev KeyEvent) (handled bool, snap SessionSnapshot, err error) {
	snap, err = s.do(id, func(v *session.View) error {
		handled = v.Hub.Dispatch(controller.KeyEvent{
			Key:   ev.Key,
			Meta:  ev.Meta,
			Ctrl:  ev.Ctrl,
			Alt:   ev.Alt,
			Shift: ev.Shift,
		})
		return nil
	})
	return handled, snap, err
}

// Delete ends session id.
func (s *SessionService) Delete(id string) error {
	return s.svc.Delete(id)
}

// Len returns the number of live sessions.
func (s *SessionService) Len() int {
	return s.svc.Len()
}

func (s *SessionService) do(id string, fn func(v *session.View) error) (SessionSnapshot, error) {
	var (
		view *session.View
		snap SessionSnapshot
	)
	err := s.svc.Do(id, func(v *session.View) error {
		view = v
		if err := fn(v); err != nil {
			return err
		}
		snap = snapshotFromView(id, v)
		return nil
	})
	if err != nil {
		return SessionSnapshot{}, err
	}
	// NavigatedTo is filled in once fn returns.
	snap.NavigateTo = view.NavigatedTo
	return snap, nil
}

// snapshotFromView must run under the session lock.
func snapshotFromView(id string, v *session.View) SessionSnapshot {
	snap := v.Controller.Snapshot()
	return SessionSnapshot{
		ID:      id,
		Locale:  v.Controller.Locale().String(),
		State:   SessionState(snap.State),
		Query:   snap.Query,
		Status:  snap.Status,
		Results: documentsFromDomain(snap.Results),
	}
}
