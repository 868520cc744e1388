package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Query parameters some clients attach purely to defeat caches. They carry
// no meaning server-side and are only echoed back in diagnostic headers.
var cacheBusterParams = []string{"t", "r", "force", "cb"}

// NoCache stamps every response with directives that defeat browser, proxy
// and CDN caching. The listing it protects must be re-fetched from the store
// on every request, so any reuse of a previous response is wrong.
func NoCache() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			token := uuid.NewString()

			query := r.URL.Query()
			echoed := make([]string, 0, len(cacheBusterParams))
			for _, p := range cacheBusterParams {
				echoed = append(echoed, query.Get(p))
			}

			headers := w.Header()
			headers.Set("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0, s-maxage=0, stale-while-revalidate=0")
			headers.Set("Pragma", "no-cache")
			headers.Set("Expires", "0")
			headers.Set("Surrogate-Control", "no-store")
			headers.Set("CDN-Cache-Control", "no-cache")

			// Freshness markers derived from current time and randomness, so
			// even caches that ignore the directives above see a new entity.
			headers.Set("Last-Modified", now.UTC().Format(http.TimeFormat))
			headers.Set("ETag", fmt.Sprintf(`"%d-%s-%s-%s"`, now.UnixMilli(), token, echoed[0], echoed[1]))
			headers.Set("X-Response-Time", fmt.Sprintf("%d", now.UnixMilli()))
			headers.Set("X-Cache-Buster", fmt.Sprintf("%d-%s-%s", now.UnixMilli(), token, echoed[3]))
			headers.Set("X-Force-Refresh", "true")
			headers.Set("X-Query-Params", fmt.Sprintf("%s-%s-%s", echoed[0], echoed[1], echoed[2]))

			next.ServeHTTP(w, r)
		})
	}
}
