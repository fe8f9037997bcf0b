// Package requestid provides middleware that assigns a correlation ID to every
// request. Incoming X-Request-ID headers are honored so IDs survive proxy hops;
// otherwise a fresh UUID is generated.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"hairnote/pkg/requestcontext"
)

// Header is the HTTP header used to propagate the correlation ID.
const Header = "X-Request-ID"

// Middleware stores the request ID in the context and echoes it on the
// response so clients can quote it when reporting problems.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
