package negotiate

import (
	"strings"

	"golang.org/x/text/language"
)

// Languages returns the language tags of an Accept-Language header in
// preference order, normalized to BCP 47 form ("en-US", "fr").
// Unparseable or wildcard entries are skipped.
func Languages(header string) []string {
	if len(header) > maxHeaderLength {
		header = header[:maxHeaderLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		// Fall back to the lenient parser so one bad entry does not discard the header.
		var out []string
		for _, v := range Values(header) {
			if v == "*" {
				continue
			}
			if tag, err := language.Parse(v); err == nil {
				out = append(out, tag.String())
			}
		}
		return out
	}

	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == language.Und {
			continue
		}
		out = append(out, tag.String())
	}
	return out
}

// PreferredLanguage returns the entry of available that best matches the
// Accept-Language header. Returns the first available language when nothing
// matches or the header is empty, and "" when available is empty.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func PreferredLanguage(header string, available ...string) string {
	if len(available) == 0 {
		return ""
	}

	requested := Languages(header)
	if len(requested) == 0 {
		return available[0]
	}

	supported := make([]language.Tag, 0, len(available))
	for _, a := range available {
		tag, err := language.Parse(strings.ReplaceAll(a, "_", "-"))
		if err != nil {
			tag = language.Und
		}
		supported = append(supported, tag)
	}

	desired := make([]language.Tag, 0, len(requested))
	for _, r := range requested {
		desired = append(desired, language.Make(r))
	}

	_, idx, conf := language.NewMatcher(supported).Match(desired...)
	if conf == language.No {
		return available[0]
	}
	return available[idx]
}
