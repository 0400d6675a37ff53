package controller

import (
	"strings"
	"sync"
)

// KeyEvent is a key press delivered by the page.
type KeyEvent struct {
	Key   string `json:"key"`
	Meta  bool   `json:"meta"`
	Ctrl  bool   `json:"ctrl"`
	Alt   bool   `json:"alt"`
	Shift bool   `json:"shift"`
}

// Listener handles a key event and reports whether it consumed it.
type Listener func(KeyEvent) bool

// Hub is the page-wide key event source. Listeners are held by Subscription
// handles and must be released by their owner.
type Hub struct {
	mu        sync.Mutex
	next      uint64
	listeners map[uint64]Listener
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{listeners: make(map[uint64]Listener)}
}

// Subscribe registers l until the returned Subscription is released.
func (h *Hub) Subscribe(l Listener) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	id := h.next
	h.listeners[id] = l
	return &Subscription{hub: h, id: id}
}

// Dispatch delivers ev to every listener. Reports whether any listener consumed it,
// in which case the page should suppress the browser's default action.
func (h *Hub) Dispatch(ev KeyEvent) bool {
	h.mu.Lock()
	ls := make([]Listener, 0, len(h.listeners))
	for _, l := range h.listeners {
		ls = append(ls, l)
	}
	h.mu.Unlock()

	handled := false
	for _, l := range ls {
		if l(ev) {
			handled = true
		}
	}
	return handled
}

// Len returns the number of registered listeners.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.listeners, id)
}

// Subscription is the handle of a registered listener.
type Subscription struct {
	once sync.Once
	hub  *Hub
	id   uint64
}

// Release removes the listener. Safe to call more than once.
func (s *Subscription) Release() {
	s.once.Do(func() { s.hub.remove(s.id) })
}

// Shortcut is a modifier+letter combination. Either Meta (command) or Ctrl satisfies the modifier.
type Shortcut struct {
	Key string
}

// DefaultShortcut is Cmd+K / Ctrl+K.
var DefaultShortcut = Shortcut{Key: "k"}

// Matches reports whether ev triggers the shortcut.
func (s Shortcut) Matches(ev KeyEvent) bool {
	return (ev.Meta || ev.Ctrl) && strings.EqualFold(ev.Key, s.Key)
}
