package docnav

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
)

func TestSessions_Lifecycle(t *testing.T) {
	c := testClient()
	defer c.Close()
	sessions := c.Sessions()

	s, err := sessions.Create("pt")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID == "" || s.State != StateClosed || s.Locale != "pt" {
		t.Fatalf("Create = %+v", s)
	}

	handled, snap, err := sessions.Key(s.ID, KeyEvent{Key: "k", Ctrl: true})
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if !handled || snap.State != StateOpenEmpty {
		t.Fatalf("Key: handled=%v state=%q", handled, snap.State)
	}

	snap, err = sessions.SetQuery(s.ID, "docker")
	if err != nil {
		t.Fatalf("SetQuery: %v", err)
	}
	if snap.State != StateOpenResults || len(snap.Results) != 2 {
		t.Fatalf("SetQuery = %+v", snap)
	}

	snap, err = sessions.Select(s.ID, 1)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if snap.NavigateTo != "/pt/docs/deployment" || snap.State != StateClosed {
		t.Errorf("Select = %+v", snap)
	}

	got, err := sessions.Get(s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.NavigateTo != "" {
		t.Errorf("NavigateTo leaked into the next call: %q", got.NavigateTo)
	}

	if err := sessions.Delete(s.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := sessions.Get(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get after Delete = %v, want ErrSessionNotFound", err)
	}
}

func TestSessions_ClosedModal(t *testing.T) {
	sessions := testClient().Sessions()
	s, err := sessions.Create("en")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := sessions.SetQuery(s.ID, "api"); !errors.Is(err, ErrSearchClosed) {
		t.Errorf("SetQuery on closed = %v, want ErrSearchClosed", err)
	}
	if _, err := sessions.Select(s.ID, 0); !errors.Is(err, ErrSearchClosed) {
		t.Errorf("Select on closed = %v, want ErrSearchClosed", err)
	}

	if _, err := sessions.Open(s.ID); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := sessions.Select(s.ID, 0); !errors.Is(err, ErrResultNotFound) {
		t.Errorf("Select with no results = %v, want ErrResultNotFound", err)
	}

	snap, err := sessions.SetQuery(s.ID, "zzzz")
	if err != nil {
		t.Fatalf("SetQuery: %v", err)
	}
	if snap.State != StateOpenNoResults || snap.Status == "" {
		t.Errorf("SetQuery = %+v", snap)
	}

	snap, err = sessions.Close(s.ID)
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if snap.State != StateClosed || snap.Query != "" {
		t.Errorf("Close = %+v", snap)
	}
}

func TestSessions_KeyNotShortcut(t *testing.T) {
	sessions := testClient().Sessions()
	s, err := sessions.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	handled, snap, err := sessions.Key(s.ID, KeyEvent{Key: "k"})
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if handled || snap.State != StateClosed {
		t.Errorf("plain k: handled=%v state=%q", handled, snap.State)
	}
}

func TestSessions_Limit(t *testing.T) {
	cfg := defaultConfig()
	WithMaxSessions(1).apply(cfg)
	c := wireClient(nil, cfg, nil)
	defer c.Close()

	if _, err := c.Sessions().Create("pt"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := c.Sessions().Create("pt"); !errors.Is(err, ErrTooManySessions) {
		t.Errorf("second Create = %v, want ErrTooManySessions", err)
	}
	if c.Sessions().Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Sessions().Len())
	}
}

func TestSessions_UnsupportedLocale(t *testing.T) {
	if _, err := testClient().Sessions().Create("fr"); !errors.Is(err, ErrUnsupportedLocale) {
		t.Errorf("Create(fr) = %v, want ErrUnsupportedLocale", err)
	}
}

func documentPaths(docs []Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Path
	}
	return out
}

func TestSessions_ConcurrentQueriesStayConsistent(t *testing.T) {
	c := testClient()
	defer c.Close()
	sessions := c.Sessions()

	s, err := sessions.Create("en")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := sessions.Open(s.ID); err != nil {
		t.Fatalf("Open: %v", err)
	}

	queries := []string{"api", "docker", "zzzz"}
	want := make(map[string][]string, len(queries))
	for _, q := range queries {
		res, err := c.Search(context.Background(), "en", q)
		if err != nil {
			t.Fatalf("Search(%q): %v", q, err)
		}
		want[q] = documentPaths(res.Documents)
	}
	consistent := func(snap SessionSnapshot) bool {
		expected, ok := want[snap.Query]
		return ok && slices.Equal(documentPaths(snap.Results), expected)
	}

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				q := queries[(g+i)%len(queries)]
				snap, err := sessions.SetQuery(s.ID, q)
				if err != nil {
					t.Errorf("SetQuery: %v", err)
					return
				}
				if snap.Query != q || !consistent(snap) {
					t.Errorf("SetQuery(%q) = query %q results %v", q, snap.Query, documentPaths(snap.Results))
					return
				}

				got, err := sessions.Get(s.ID)
				if err != nil {
					t.Errorf("Get: %v", err)
					return
				}
				if !consistent(got) {
					t.Errorf("Get = query %q results %v", got.Query, documentPaths(got.Results))
					return
				}
			}
		}()
	}
	wg.Wait()
}
