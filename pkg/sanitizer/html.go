package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func policy() *bluemonday.Policy {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// StripTags removes every HTML element from s, including the contents of
// script and style blocks. The result is plain text with HTML special
// characters escaped, safe to echo back into a page.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return policy().Sanitize(s)
}
