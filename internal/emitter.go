package internal

import "github.com/UNGVSN/symfony-educational-project-sub002/pkg/cookie"

// Emitter is the transport a Response is sent through.
// Response.Send calls SetStatus, SetHeader for each header, SetCookie for
// each cookie, WriteBody once, then Finish.
type Emitter interface {
	SetStatus(code int)
	SetHeader(name, value string)
	SetCookie(c cookie.Cookie)
	WriteBody(body []byte) error
	Finish() error
}
