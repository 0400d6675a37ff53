package chi

import (
	"net/http"

	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/docnav/internal/logger"
	"github.com/kailas-cloud/docnav/internal/metrics"
	"github.com/kailas-cloud/docnav/internal/usecase/router"
)

// LocaleMiddleware redirects every non-excluded request without a locale prefix
// to the default locale, keeping path and query. Prefixed requests get Content-Language.
func LocaleMiddleware(rt *router.Router, status int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.EscapedPath()
			if rt.Excluded(path) {
				next.ServeHTTP(w, r)
				return
			}

			d := rt.Route(path, r.URL.RawQuery)
			if d.IsRedirect() {
				metrics.LocaleRedirectsTotal.Inc()
				logpkg.FromContext(r.Context()).Debug("locale redirect",
					zap.String("from", path),
					zap.String("to", d.Target()),
				)
				w.Header().Set("Location", d.Target())
				w.WriteHeader(status)
				return
			}

			if code, ok := router.LocaleOf(path); ok {
				w.Header().Set("Content-Language", code.Tag().String())
			}
			next.ServeHTTP(w, r)
		})
	}
}
