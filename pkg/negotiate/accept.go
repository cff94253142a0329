package negotiate

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxHeaderLength prevents DoS attacks through oversized Accept-* headers.
const maxHeaderLength = 4096

// Item is a single entry of an Accept-* header.
type Item struct {
	Params  map[string]string
	Value   string
	Quality float64
	index   int
}

// Parse splits an Accept-style header into items ordered by descending
// quality. Items with equal quality keep their header order. Entries with
// q=0 are dropped.
//
// Example header: "text/html, application/json;q=0.9, */*;q=0.1"
func Parse(header string) []Item {
	if len(header) > maxHeaderLength {
		header = header[:maxHeaderLength]
	}

	var items []Item

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		value, rest, _ := strings.Cut(part, ";")
		item := Item{
			Value:   strings.TrimSpace(value),
			Quality: 1.0,
			index:   len(items),
		}
		if item.Value == "" {
			continue
		}

		for param := range strings.SplitSeq(rest, ";") {
			k, v, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok {
				continue
			}
			k = strings.ToLower(strings.TrimSpace(k))
			v = strings.Trim(strings.TrimSpace(v), `"`)
			if k == "q" {
				if q, err := strconv.ParseFloat(v, 64); err == nil && q >= 0 && q <= 1 {
					item.Quality = q
				}
				continue
			}
			if item.Params == nil {
				item.Params = make(map[string]string)
			}
			item.Params[k] = v
		}

		if item.Quality > 0 {
			items = append(items, item)
		}
	}

	slices.SortStableFunc(items, func(a, b Item) int {
		if c := cmp.Compare(b.Quality, a.Quality); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})

	return items
}

// Values returns the item values of header in preference order.
func Values(header string) []string {
	items := Parse(header)
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Value)
	}
	return out
}
