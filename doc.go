// Package foundation provides an HTTP message layer: a parameter container,
// a read-mostly incoming request and a mutable outgoing response that is
// sent exactly once.
//
// Business logic is written against [Request] and [Response] only. The
// net/http glue ([Handler], [SnapshotFromHTTP], [HTTPEmitter]) converts at
// the edges, so the same code runs under any router and in unit tests
// without a server.
//
// # Quick Start
//
// Wrap a [HandlerFunc] with [NewHandler] and mount it on any router:
//
//	func show(r *foundation.Request) (*foundation.Response, error) {
//	    id := foundation.Param[int](r, "id")
//	    if id == 0 {
//	        return nil, foundation.ErrNotFound("")
//	    }
//	    return foundation.NewJSONResponse(map[string]int{"id": id}, http.StatusOK)
//	}
//
//	r := chi.NewRouter()
//	r.Method(http.MethodGet, "/users/{id}", foundation.NewHandler(show))
//
// chi URL parameters are copied into the attributes bag, together with the
// route pattern (_route) and the full parameter map (_route_params).
//
// # Requests
//
// A [Request] is built from a [Snapshot] of six sources: query, body,
// attributes, cookies, files and server variables. Server variables follow
// CGI naming: request headers appear as HTTP_* keys, plus REQUEST_METHOD,
// REQUEST_URI, SERVER_NAME, SERVER_PORT, REMOTE_ADDR and HTTPS.
//
//	req := foundation.NewRequest(foundation.Snapshot{
//	    Query:  map[string]any{"page": "2"},
//	    Server: map[string]any{"REQUEST_METHOD": "GET", "HTTP_HOST": "example.com"},
//	})
//	req.Query().GetInt("page", 1) // 2
//	req.Host()                    // "example.com"
//
// Get looks a key up in attributes, then query, then body. Method honours
// the _method body field and the X-HTTP-Method-Override header.
// ClientIP walks proxy headers and returns the first public address.
//
// # Responses
//
// [NewResponse] validates the status code and adds a default Content-Type.
// Headers hold one value per name in insertion order. Cookies are kept
// apart from headers and emitted after them.
//
//	resp, _ := foundation.NewResponse("hello", http.StatusOK, nil)
//	resp.SetCacheHeaders(3600)
//	resp.SetCookie(cookies.Cookie("theme", "dark", time.Time{}))
//	err := resp.Send(foundation.NewHTTPEmitter(w))
//
// A second Send returns [ErrAlreadySent].
//
// # Errors
//
// Returning an error from a [HandlerFunc] hands it to the [ErrorHandler].
// The default one answers [HTTPError] with its code and message, errors that
// implement StatusCode() int with that code, and everything else with 500.
//
// # Configuration
//
// [LoadConfig] layers built-in defaults, an optional YAML file and
// FOUNDATION_* environment variables. [OptionsFromConfig] and
// [ServerOptionsFromConfig] turn the result into options:
//
//	cfg, err := foundation.LoadConfig(config.WithFile("foundation.yaml"))
//	h := foundation.NewHandler(show, foundation.OptionsFromConfig(cfg)...)
//	err = foundation.Serve(ctx, h, foundation.ServerOptionsFromConfig(cfg)...)
//
// # Middleware
//
// The middlewares package provides Recover, Timeout, CORS and Locale.
package foundation
