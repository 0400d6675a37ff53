package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/docnav/internal/metrics"
	"github.com/kailas-cloud/docnav/internal/usecase/router"
)

func TestLocaleMiddleware_RedirectStatusAndCounter(t *testing.T) {
	handler := LocaleMiddleware(router.New(), http.StatusFound)(okHandler())
	before := testutil.ToFloat64(metrics.LocaleRedirectsTotal)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("POST", "/contact?from=footer", http.NoBody))

	if rr.Code != http.StatusFound {
		t.Fatalf("status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/pt/contact?from=footer" {
		t.Errorf("Location = %q", loc)
	}
	if got := testutil.ToFloat64(metrics.LocaleRedirectsTotal) - before; got != 1 {
		t.Errorf("redirect counter delta = %v, want 1", got)
	}
}

func TestLocaleMiddleware_KeepsEscapedPath(t *testing.T) {
	handler := LocaleMiddleware(router.New(), http.StatusTemporaryRedirect)(okHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/guia%20r%C3%A1pido", http.NoBody))

	if loc := rr.Header().Get("Location"); loc != "/pt/guia%20r%C3%A1pido" {
		t.Errorf("Location = %q", loc)
	}
}

func TestLocaleMiddleware_PassThrough(t *testing.T) {
	handler := LocaleMiddleware(router.New("health"), http.StatusTemporaryRedirect)(okHandler())

	tests := []struct {
		path     string
		language string
	}{
		{"/pt", "pt"},
		{"/en/docs/api-reference", "en"},
		{"/health", ""},
		{"/api/v1/search", ""},
		{"/logo.svg", ""},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", tc.path, http.NoBody))
		if rr.Code != http.StatusOK {
			t.Errorf("%s: got %d, want 200", tc.path, rr.Code)
		}
		if got := rr.Header().Get("Content-Language"); got != tc.language {
			t.Errorf("%s: Content-Language = %q, want %q", tc.path, got, tc.language)
		}
	}
}
