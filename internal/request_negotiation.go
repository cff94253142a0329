package internal

import (
	"strings"

	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/negotiate"
)

// formats maps short format names to their mime types. The first entry is canonical.
var formats = map[string][]string{
	"html":   {"text/html", "application/xhtml+xml"},
	"txt":    {"text/plain"},
	"js":     {"application/javascript", "application/x-javascript", "text/javascript"},
	"css":    {"text/css"},
	"json":   {"application/json", "application/x-json"},
	"jsonld": {"application/ld+json"},
	"xml":    {"text/xml", "application/xml", "application/x-xml"},
	"rdf":    {"application/rdf+xml"},
	"atom":   {"application/atom+xml"},
	"rss":    {"application/rss+xml"},
	"form":   {"application/x-www-form-urlencoded", "multipart/form-data"},
}

// Format returns the short format name for a mime type ("json" for
// "application/json; charset=utf-8"), or "" if unknown.
func Format(mimeType string) string {
	mt, _, _ := strings.Cut(mimeType, ";")
	mt = strings.ToLower(strings.TrimSpace(mt))
	for name, types := range formats {
		for _, t := range types {
			if t == mt {
				return name
			}
		}
	}
	return ""
}

// MimeType returns the canonical mime type for a format, or "" if unknown.
func MimeType(format string) string {
	if types, ok := formats[strings.ToLower(format)]; ok {
		return types[0]
	}
	return ""
}

// AcceptableContentTypes returns the Accept header media types by preference.
func (r *Request) AcceptableContentTypes() []string {
	return negotiate.Values(r.Header("Accept"))
}

// Charsets returns the Accept-Charset values by preference.
func (r *Request) Charsets() []string {
	return negotiate.Values(r.Header("Accept-Charset"))
}

// Encodings returns the Accept-Encoding values by preference.
func (r *Request) Encodings() []string {
	return negotiate.Values(r.Header("Accept-Encoding"))
}

// Languages returns the Accept-Language tags by preference.
func (r *Request) Languages() []string {
	return negotiate.Languages(r.Header("Accept-Language"))
}

// PreferredLanguage returns the best match among available for the
// Accept-Language header, falling back to the first available language.
func (r *Request) PreferredLanguage(available ...string) string {
	return negotiate.PreferredLanguage(r.Header("Accept-Language"), available...)
}

// RequestFormat returns the _format attribute, or def when unset.
func (r *Request) RequestFormat(def string) string {
	if f := r.attributes.GetString(AttrFormat, ""); f != "" {
		return f
	}
	return def
}

// SetRequestFormat stores format as the _format attribute.
func (r *Request) SetRequestFormat(format string) {
	r.attributes.Set(AttrFormat, format)
}

// ContentTypeFormat returns the format of the request body, or "".
func (r *Request) ContentTypeFormat() string {
	ct, ok := r.ContentType()
	if !ok {
		return ""
	}
	return Format(ct)
}

// PreferredFormat returns the request format if set, otherwise the format of
// the most preferred known Accept type, otherwise def.
func (r *Request) PreferredFormat(def string) string {
	if f := r.RequestFormat(""); f != "" {
		return f
	}
	for _, ct := range r.AcceptableContentTypes() {
		if f := Format(ct); f != "" {
			return f
		}
	}
	return def
}
