package params

import (
	"strings"

	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/sanitizer"
)

// Filter keeps only the bytes of s accepted by keep.
func Filter(s string, keep func(byte) bool) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if keep(s[i]) {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// GetText returns GetString with all HTML markup stripped.
func (b *Bag) GetText(key, def string) string {
	return sanitizer.StripTags(b.GetString(key, def))
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
