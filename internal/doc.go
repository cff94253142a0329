// Package internal provides the core types and implementation of the HTTP
// message layer.
//
// This package is internal and should not be used directly. Import
// "github.com/UNGVSN/symfony-educational-project-sub002" instead, which
// re-exports the public API.
//
// # Core Types
//
//   - Snapshot: The transport's view of one request (query, body, attributes,
//     cookies, files, server variables and a lazily read body stream)
//   - Request: Typed access to a Snapshot through six params.Bag containers,
//     plus URL, method, negotiation and client IP helpers
//   - Response: Validated status, ordered single-value headers, cookie
//     directives, content and cache helpers
//   - Emitter: The five primitives Response.Send drives, in order
//   - Handler: http.Handler that ties the above to net/http and chi
//   - HandlerFunc, Middleware, ErrorHandler: Signatures for business logic
//
// # Request Lifecycle
//
// The Handler builds a Snapshot from the *http.Request, wraps it in a Request,
// copies chi route parameters into the attributes, runs the middleware chain
// and the HandlerFunc, and sends the resulting Response exactly once:
//
//	h := internal.NewHandler(func(r *internal.Request) (*internal.Response, error) {
//	    name := r.Query().GetAlpha("name", "world")
//	    return internal.NewResponse("hello "+name, http.StatusOK, nil)
//	})
//
//	router := chi.NewRouter()
//	router.Method(http.MethodGet, "/hello", h)
//
// Requests can also be built without net/http, which keeps tests free of
// transport plumbing:
//
//	req := internal.NewRequest(internal.Snapshot{
//	    Body:   map[string]any{"_method": "delete"},
//	    Server: map[string]any{"REQUEST_METHOD": "POST"},
//	})
//	req.Method() // "DELETE"
//
// # Emission Order
//
// Response.Send calls the Emitter in a fixed order: SetStatus, SetHeader for
// each header in insertion order, SetCookie for each cookie, WriteBody, then
// Finish. Response.String renders the same order as text.
//
// # Error Handling
//
// Invalid status codes are rejected with ErrInvalidStatusCode. Malformed
// client input never fails a request: coercions fall back to defaults and an
// unparsable JSON body reads as nil. Errors returned from a HandlerFunc go to
// the ErrorHandler; HTTPError values keep their code and message, anything
// else becomes a 500.
package internal
