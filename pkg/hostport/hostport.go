// Package hostport splits Host header style values into host and port parts.
package hostport

import (
	"strconv"
	"strings"
)

// Host returns the normalized host without any port suffix.
// Strips port, keeps IPv6 brackets, and converts to lowercase.
//
// Examples:
//
//	"example.com:8080" -> "example.com"
//	"[::1]:8080" -> "[::1]"
//	"Example.COM" -> "example.com"
func Host(hostport string) string {
	host, _, _ := Split(hostport)
	return host
}

// Port returns the numeric port suffix of hostport, if present and valid.
func Port(hostport string) (int, bool) {
	_, port, ok := Split(hostport)
	return port, ok
}

// Split separates hostport into a lowercase host and an optional port.
// A missing or non-numeric port reports ok=false.
func Split(hostport string) (host string, port int, ok bool) {
	hostport = strings.TrimSpace(hostport)

	idx := strings.LastIndex(hostport, ":")
	// Bare IPv6 literal without brackets has more than one colon and no port.
	if idx == -1 || strings.Contains(hostport[idx:], "]") || strings.Count(hostport, ":") > 1 && !strings.HasPrefix(hostport, "[") {
		return strings.ToLower(hostport), 0, false
	}

	host = strings.ToLower(hostport[:idx])
	p, err := strconv.Atoi(hostport[idx+1:])
	if err != nil || p < 0 || p > 65535 {
		return host, 0, false
	}
	return host, p, true
}

// IsDefaultPort reports whether port is the implicit port for scheme.
func IsDefaultPort(scheme string, port int) bool {
	switch strings.ToLower(scheme) {
	case "http":
		return port == 80
	case "https":
		return port == 443
	}
	return false
}
