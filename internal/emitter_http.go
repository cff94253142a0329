package internal

import (
	"errors"
	"net/http"
	"sync"

	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/cookie"
)

// HTTPEmitter sends a Response through an http.ResponseWriter.
// Headers and cookies are buffered on the writer until WriteBody commits
// the status line.
type HTTPEmitter struct {
	w         http.ResponseWriter
	status    int
	size      int64
	committed bool
	mu        sync.Mutex
}

// NewHTTPEmitter creates a new HTTPEmitter.
func NewHTTPEmitter(w http.ResponseWriter) *HTTPEmitter {
	return &HTTPEmitter{
		w:      w,
		status: http.StatusOK,
	}
}

// SetStatus records the status code. It is written with the body.
func (e *HTTPEmitter) SetStatus(code int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.committed {
		return
	}
	e.status = code
}

// SetHeader replaces the header value on the underlying writer.
func (e *HTTPEmitter) SetHeader(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.committed {
		return
	}
	e.w.Header().Set(name, value)
}

// SetCookie appends a Set-Cookie header. Invalid cookies are dropped by net/http.
func (e *HTTPEmitter) SetCookie(c cookie.Cookie) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.committed {
		return
	}
	http.SetCookie(e.w, c.HTTP())
}

// WriteBody commits the status and writes body. Statuses that forbid a
// body (1xx, 204, 304) get only the header block, without Content-Type.
func (e *HTTPEmitter) WriteBody(body []byte) error {
	e.mu.Lock()
	if e.committed {
		e.mu.Unlock()
		return ErrAlreadySent
	}
	e.committed = true
	status := e.status
	e.mu.Unlock()

	if !bodyAllowed(status) {
		e.w.Header().Del("Content-Type")
		e.w.WriteHeader(status)
		return nil
	}

	e.w.WriteHeader(status)
	if len(body) == 0 {
		return nil
	}

	n, err := e.w.Write(body)
	e.mu.Lock()
	e.size += int64(n)
	e.mu.Unlock()
	return err
}

// Finish flushes buffered output to the client when the writer supports it.
func (e *HTTPEmitter) Finish() error {
	err := http.NewResponseController(e.w).Flush()
	if errors.Is(err, http.ErrNotSupported) {
		return nil
	}
	return err
}

// Status returns the status code recorded for the response.
func (e *HTTPEmitter) Status() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Size returns the number of body bytes written.
func (e *HTTPEmitter) Size() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.size
}

// Committed reports whether the status line has been written.
func (e *HTTPEmitter) Committed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.committed
}

// Unwrap returns the underlying ResponseWriter.
// This allows http.ResponseController to reach the original writer.
func (e *HTTPEmitter) Unwrap() http.ResponseWriter {
	return e.w
}

func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status < 200:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}
