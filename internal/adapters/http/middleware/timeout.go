package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/task-saga-service/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler's context carries the
// deadline, so item store calls and saga steps observe it. The handler's
// response is buffered; if d elapses first, the buffer is discarded, a 504
// problem response is sent, and later writes by the handler fail with
// http.ErrHandlerTimeout.
//
// A unit of work that is compensating when the deadline passes keeps running
// on a detached context; the client only stops waiting for it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.copyTo(w)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				dto.WriteErrorResponse(w, r, context.DeadlineExceeded)
			}
		})
	}
}

// timeoutWriter buffers a handler's response until Timeout decides whether
// to send it.
type timeoutWriter struct {
	mu       sync.Mutex
	header   http.Header
	buf      []byte
	code     int
	timedOut bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.code != 0 {
		return
	}
	tw.code = code
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if tw.code == 0 {
		tw.code = http.StatusOK
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

// copyTo sends the buffered response. Caller holds tw.mu.
func (tw *timeoutWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), tw.header)
	if tw.code != 0 {
		w.WriteHeader(tw.code)
	}
	if len(tw.buf) > 0 {
		_, _ = w.Write(tw.buf)
	}
}
