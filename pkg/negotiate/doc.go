// Package negotiate parses HTTP content-negotiation headers.
//
// [Parse] handles any Accept-style header (Accept, Accept-Charset,
// Accept-Encoding) and orders entries by quality value:
//
//	items := negotiate.Parse("text/html;level=1, application/json;q=0.5")
//	// items[0].Value == "text/html", items[0].Params["level"] == "1"
//
// [Languages] and [PreferredLanguage] use golang.org/x/text/language for
// BCP 47 parsing and matching:
//
//	lang := negotiate.PreferredLanguage("fr-CH, fr;q=0.9, en;q=0.8", "en", "fr")
//	// lang == "fr"
package negotiate
