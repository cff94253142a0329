package middlewares

import (
	"slices"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
)

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Extractor    internal.Extractor
	Available    []string
	extractorSet bool
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleExtractor sets a custom locale extractor chain.
// The extracted value must be one of the available locales to be used.
func WithLocaleExtractor(ext internal.Extractor) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// DefaultLocaleKey is the attribute, query and cookie name checked for an
// explicit locale choice.
const DefaultLocaleKey = internal.AttrLocale

// Locale returns middleware that resolves the request locale and stores it
// with Request.SetLocale. An explicit choice (route attribute, query
// parameter or cookie named "_locale") wins when it is available; otherwise
// Accept-Language is matched against available. With no match the first
// available locale is used.
//
// Example:
//
//	foundation.WithMiddleware(middlewares.Locale([]string{"en", "pl", "de"}))
func Locale(available []string, opts ...LocaleOption) internal.Middleware {
	cfg := &LocaleConfig{Available: available}
	for _, opt := range opts {
		opt(cfg)
	}

	// Default extractor: attribute → query → cookie
	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(
			internal.FromAttributes(),
			internal.FromQuery(),
			internal.FromCookie(),
		)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(r *internal.Request) (*internal.Response, error) {
			if len(cfg.Available) == 0 {
				return next(r)
			}

			locale := ""
			if v, ok := cfg.Extractor.ExtractString(r, DefaultLocaleKey); ok && slices.Contains(cfg.Available, v) {
				locale = v
			}
			if locale == "" {
				locale = r.PreferredLanguage(cfg.Available...)
			}

			r.SetLocale(locale)

			resp, err := next(r)
			if resp != nil && !resp.HasHeader("Content-Language") {
				resp.SetHeader("Content-Language", locale)
			}
			return resp, err
		}
	}
}
