package internal

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// SetCacheHeaders marks the response publicly cacheable for seconds.
// Non-positive values fall back to SetNoCacheHeaders.
func (r *Response) SetCacheHeaders(seconds int) {
	if seconds <= 0 {
		r.SetNoCacheHeaders()
		return
	}
	r.SetHeader("Cache-Control", "max-age="+strconv.Itoa(seconds)+", public")
	r.SetHeader("Expires", r.now().Add(time.Duration(seconds)*time.Second).UTC().Format(http.TimeFormat))
	r.RemoveHeader("Pragma")
}

// SetNoCacheHeaders forbids caching by browsers and intermediaries.
func (r *Response) SetNoCacheHeaders() {
	r.SetHeader("Cache-Control", "no-cache, no-store, must-revalidate")
	r.SetHeader("Pragma", "no-cache")
	r.SetHeader("Expires", "0")
}

// SetETag sets a strong or weak entity tag. Quotes are added when missing.
func (r *Response) SetETag(etag string, weak bool) {
	if etag == "" {
		r.RemoveHeader("ETag")
		return
	}
	if !strings.HasPrefix(etag, `"`) {
		etag = `"` + etag + `"`
	}
	if weak {
		etag = "W/" + etag
	}
	r.SetHeader("ETag", etag)
}

// SetLastModified sets Last-Modified. A zero time removes the header.
func (r *Response) SetLastModified(t time.Time) {
	if t.IsZero() {
		r.RemoveHeader("Last-Modified")
		return
	}
	r.SetHeader("Last-Modified", t.UTC().Format(http.TimeFormat))
}

// IsNotModified compares the request validators against ETag and
// Last-Modified. On a match the response becomes a bodiless 304.
// Only GET and HEAD requests qualify.
func (r *Response) IsNotModified(req *Request) bool {
	if !req.IsMethodCacheable() {
		return false
	}

	matched := false
	if inm := req.Header("If-None-Match"); inm != "" {
		etag := strings.TrimPrefix(r.Header("ETag"), "W/")
		if etag == "" {
			return false
		}
		for _, candidate := range strings.Split(inm, ",") {
			candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
			if candidate == "*" || candidate == etag {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	} else if ims := req.Header("If-Modified-Since"); ims != "" {
		since, err := http.ParseTime(ims)
		if err != nil {
			return false
		}
		lm, err := http.ParseTime(r.Header("Last-Modified"))
		if err != nil {
			return false
		}
		matched = !lm.After(since)
	}

	if !matched {
		return false
	}

	_ = r.SetStatusCode(http.StatusNotModified)
	r.content = nil
	for _, name := range []string{"Allow", "Content-Encoding", "Content-Language", "Content-Length", "Content-MD5", "Content-Type", "Last-Modified"} {
		r.RemoveHeader(name)
	}
	return true
}
