package middleware

import (
	"net/http"
	"time"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/log"
)

// RequestLogger writes one access line per request. Server errors log at
// ERROR, client errors at WARN and everything else at INFO.
func RequestLogger(logger log.LoggerService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newStatusWriter(w)

			next.ServeHTTP(wrapped, r)

			write := logger.Info
			switch {
			case wrapped.status >= http.StatusInternalServerError:
				write = logger.Error
			case wrapped.status >= http.StatusBadRequest:
				write = logger.Warn
			}

			write("%s %s %d %s %dB remote=%s request_id=%s",
				r.Method,
				r.URL.Path,
				wrapped.status,
				time.Since(start).Round(time.Microsecond),
				wrapped.written,
				r.RemoteAddr,
				GetRequestID(r.Context()),
			)
		})
	}
}
