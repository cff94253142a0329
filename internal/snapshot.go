package internal

import "io"

// Snapshot is the transport's view of one incoming request.
// The maps are copied into the Request's bags; Content is read lazily, at most once.
type Snapshot struct {
	Query      map[string]any
	Body       map[string]any
	Attributes map[string]any
	Cookies    map[string]any
	Files      map[string]any
	Server     map[string]any
	Content    io.Reader
}
