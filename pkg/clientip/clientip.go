package clientip

import (
	"net/netip"
	"strings"
)

// DefaultCandidates are the server variables checked (in order) for the client address.
// Proxy headers come first, most specific to least; REMOTE_ADDR is the last resort.
var DefaultCandidates = []string{
	"HTTP_CLIENT_IP",
	"HTTP_X_FORWARDED_FOR",
	"HTTP_X_FORWARDED",
	"HTTP_X_CLUSTER_CLIENT_IP",
	"HTTP_FORWARDED_FOR",
	"HTTP_FORWARDED",
	"REMOTE_ADDR",
}

// Lookup returns the raw value of a server variable.
type Lookup func(name string) (string, bool)

// Resolve walks candidates in order and returns the first value that is a
// public, non-reserved IP address. For multi-value headers only the first
// comma-separated entry is considered.
//
// Proxy headers are trusted unconditionally, so the result is spoofable by
// any client that can set them.
func Resolve(lookup Lookup, candidates []string) (string, bool) {
	for _, name := range candidates {
		raw, ok := lookup(name)
		if !ok || raw == "" {
			continue
		}
		first, _, _ := strings.Cut(raw, ",")
		addr, ok := parse(strings.TrimSpace(first))
		if !ok || !IsPublic(addr) {
			continue
		}
		return addr.String(), true
	}
	return "", false
}

// parse accepts a bare address, an address with port, and RFC 7239
// "for=" tokens such as `for="[2001:db8::1]:4711"`.
func parse(v string) (netip.Addr, bool) {
	if key, val, found := strings.Cut(v, "="); found && strings.EqualFold(strings.TrimSpace(key), "for") {
		v, _, _ = strings.Cut(val, ";")
		v = strings.Trim(strings.TrimSpace(v), `"`)
	}
	if addr, err := netip.ParseAddr(v); err == nil {
		return addr.Unmap(), true
	}
	if ap, err := netip.ParseAddrPort(v); err == nil {
		return ap.Addr().Unmap(), true
	}
	if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") {
		if addr, err := netip.ParseAddr(v[1 : len(v)-1]); err == nil {
			return addr.Unmap(), true
		}
	}
	return netip.Addr{}, false
}

// IsPublic reports whether addr lies outside private and reserved ranges.
func IsPublic(addr netip.Addr) bool {
	if !addr.IsValid() || addr.Zone() != "" {
		return false
	}
	if addr.IsPrivate() || addr.IsLoopback() || addr.IsUnspecified() ||
		addr.IsLinkLocalUnicast() || addr.IsLinkLocalMulticast() {
		return false
	}
	for _, p := range reserved {
		if p.Contains(addr) {
			return false
		}
	}
	return true
}

// IsPublicString parses s and reports whether it is a public address.
func IsPublicString(s string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return IsPublic(addr.Unmap())
}

var reserved = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("127.0.0.0/8"),
	netip.MustParsePrefix("169.254.0.0/16"),
	netip.MustParsePrefix("240.0.0.0/4"),
	netip.MustParsePrefix("::/128"),
	netip.MustParsePrefix("::1/128"),
	netip.MustParsePrefix("::ffff:0:0/96"),
	netip.MustParsePrefix("fe80::/10"),
}
