package api

import (
	"net/http"

	"github.com/ONSdigital/log.go/v2/log"
)

// Limiter bounds the number of requests a wrapped handler serves at once.
// Mutation routes run behind it so a burst of sync requests cannot pile
// catalog traffic on top of itself. n < 1 disables the limit.
func Limiter(n int) func(http.Handler) http.Handler {
	inflight := make(chan struct{}, n)
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if n < 1 {
				h.ServeHTTP(w, r)
				return
			}

			select {
			case inflight <- struct{}{}:
			default:
				// All slots taken; the request queues behind the running ones.
				log.Info(r.Context(), "concurrent request limit reached, waiting for a slot",
					log.Data{"limit": n, "path": r.URL.Path})
				inflight <- struct{}{}
			}
			defer func() { <-inflight }()

			h.ServeHTTP(w, r)
		})
	}
}
