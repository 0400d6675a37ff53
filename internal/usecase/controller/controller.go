package controller

import (
	"fmt"

	"github.com/kailas-cloud/docnav/internal/domain"
	"github.com/kailas-cloud/docnav/internal/domain/catalog"
	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/usecase/search"
)

// State is the search modal state.
type State string

// Controller states.
const (
	Closed        State = "closed"
	OpenEmpty     State = "open_empty"
	OpenResults   State = "open_results"
	OpenNoResults State = "open_no_results"
)

// IsOpen reports whether the modal is visible.
func (s State) IsOpen() bool { return s != Closed }

// Navigator performs client-side navigation to a locale-qualified path.
type Navigator interface {
	Navigate(path string)
}

// Snapshot is a read-only view of the controller for rendering.
type Snapshot struct {
	State   State
	Query   string
	Results []catalog.Descriptor
	// Status is the localized hint shown instead of results (empty in OpenResults and Closed).
	Status string
}

// Controller drives one search modal. It is not safe for concurrent use;
// the owning page serializes calls.
type Controller struct {
	code     locale.Code
	docs     []catalog.Descriptor
	nav      Navigator
	shortcut Shortcut
	onOpen   func(viaShortcut bool)

	open    bool
	query   string
	results []catalog.Descriptor

	sub *Subscription
}

// Option configures a Controller.
type Option func(*Controller)

// WithShortcut overrides the opening shortcut.
func WithShortcut(s Shortcut) Option {
	return func(c *Controller) { c.shortcut = s }
}

// WithOpenHook is called each time the modal transitions from closed to open.
func WithOpenHook(fn func(viaShortcut bool)) Option {
	return func(c *Controller) { c.onOpen = fn }
}

// New creates a closed controller over the catalog of code.
func New(code locale.Code, nav Navigator, opts ...Option) *Controller {
	c := &Controller{
		code:     code,
		docs:     catalog.For(code),
		nav:      nav,
		shortcut: DefaultShortcut,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Locale returns the controller's locale.
func (c *Controller) Locale() locale.Code { return c.code }

// State derives the current state from visibility, query length and result count.
func (c *Controller) State() State {
	switch {
	case !c.open:
		return Closed
	case len([]rune(c.query)) < search.MinQueryLength:
		return OpenEmpty
	case len(c.results) == 0:
		return OpenNoResults
	default:
		return OpenResults
	}
}

// Open shows the modal. No-op when already open.
func (c *Controller) Open() {
	c.openFrom(false)
}

func (c *Controller) openFrom(viaShortcut bool) {
	if c.open {
		return
	}
	c.open = true
	c.recompute()
	if c.onOpen != nil {
		c.onOpen(viaShortcut)
	}
}

// Close hides the modal and discards the query and results. No-op when closed.
func (c *Controller) Close() {
	if !c.open {
		return
	}
	c.open = false
	c.query = ""
	c.results = nil
}

// SetQuery replaces the query and recomputes the results synchronously.
func (c *Controller) SetQuery(q string) error {
	if !c.open {
		return domain.ErrSearchClosed
	}
	c.query = q
	c.recompute()
	return nil
}

// Select navigates to the i-th result and closes the modal.
// Returns the navigated path.
func (c *Controller) Select(i int) (string, error) {
	if !c.open {
		return "", domain.ErrSearchClosed
	}
	if i < 0 || i >= len(c.results) {
		return "", fmt.Errorf("%w: index %d of %d", domain.ErrResultNotFound, i, len(c.results))
	}
	path := c.results[i].Path()
	c.Close()
	c.nav.Navigate(path)
	return path, nil
}

// Snapshot returns the current view.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{State: c.State(), Query: c.query}
	if len(c.results) > 0 {
		s.Results = make([]catalog.Descriptor, len(c.results))
		copy(s.Results, c.results)
	}
	dict := locale.Lookup(c.code)
	switch s.State {
	case OpenEmpty:
		s.Status = dict.TooShortHint
	case OpenNoResults:
		s.Status = dict.NoResults(c.query)
	}
	return s
}

// Mount registers the shortcut listener on hub for the controller's lifetime.
func (c *Controller) Mount(hub *Hub) error {
	if c.sub != nil {
		return domain.ErrAlreadyMounted
	}
	c.sub = hub.Subscribe(c.handleKey)
	return nil
}

// Unmount releases the shortcut listener. No-op when not mounted.
func (c *Controller) Unmount() {
	if c.sub == nil {
		return
	}
	c.sub.Release()
	c.sub = nil
}

// Mounted reports whether the shortcut listener is registered.
func (c *Controller) Mounted() bool { return c.sub != nil }

func (c *Controller) handleKey(ev KeyEvent) bool {
	if !c.shortcut.Matches(ev) {
		return false
	}
	c.openFrom(true)
	return true
}

func (c *Controller) recompute() {
	c.results = search.Match(c.query, c.docs)
}
