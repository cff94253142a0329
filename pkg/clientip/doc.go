// Package clientip resolves the originating client address from server
// variables populated by proxies and the transport.
//
// [Resolve] walks an ordered candidate list ([DefaultCandidates] unless
// overridden), takes the first entry of comma-separated values, and returns
// the first address accepted by [IsPublic]:
//
//	ip, ok := clientip.Resolve(func(name string) (string, bool) {
//		v, ok := server[name]
//		return v, ok
//	}, clientip.DefaultCandidates)
//
// Private (10/8, 172.16/12, 192.168/16, fc00::/7) and reserved (0/8,
// 127/8, 169.254/16, 240/4, ::1, fe80::/10, mapped) addresses are rejected.
//
// There is no trusted-proxy allowlist: any client can forge proxy headers.
// Callers that need a trust decision must make it before relying on the result.
package clientip
