package middleware

import (
	"context"
	"log"
	"net/http"
	"time"
	"versioned-task-api/internal/access"
	"versioned-task-api/internal/http/handlers"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

type Middleware func(http.Handler) http.Handler

// Chain applies mws so that the first one is the outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	return h
}

// RequestIDFrom returns the id set by RequestID, or "" outside of it.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// RequestID keeps a caller supplied X-Request-ID or generates a new one and
// echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func Logging(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Printf("request_id=%s method=%s path=%s status=%d duration=%s",
				RequestIDFrom(r.Context()), r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}

func Recover(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					if v == http.ErrAbortHandler {
						panic(v)
					}
					logger.Printf("request_id=%s panic: %v", RequestIDFrom(r.Context()), v)
					handlers.WriteError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAPIKey rejects requests whose credential the gate does not accept.
// The presented key is never logged.
func RequireAPIKey(gate *access.Gate, logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Authorize(access.Credential(r)) {
				logger.Printf("request_id=%s unauthorized method=%s path=%s remote=%s",
					RequestIDFrom(r.Context()), r.Method, r.URL.Path, r.RemoteAddr)
				handlers.WriteError(w, http.StatusUnauthorized, access.ErrUnauthorized.Error())

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
