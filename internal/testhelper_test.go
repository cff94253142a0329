package internal_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/cookie"
)

// recordingEmitter captures every emitter call in order.
type recordingEmitter struct {
	calls     []string
	body      []byte
	writeErr  error
	finishErr error
}

func (e *recordingEmitter) SetStatus(code int) {
	e.calls = append(e.calls, fmt.Sprintf("status %d", code))
}

func (e *recordingEmitter) SetHeader(name, value string) {
	e.calls = append(e.calls, "header "+name+": "+value)
}

func (e *recordingEmitter) SetCookie(c cookie.Cookie) {
	e.calls = append(e.calls, "cookie "+c.Name)
}

func (e *recordingEmitter) WriteBody(body []byte) error {
	e.calls = append(e.calls, "body")
	e.body = append(e.body, body...)
	return e.writeErr
}

func (e *recordingEmitter) Finish() error {
	e.calls = append(e.calls, "finish")
	return e.finishErr
}

// countingReader counts Read calls on the wrapped reader.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

// failingReader fails every read.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}
