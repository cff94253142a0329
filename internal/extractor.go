package internal

import "github.com/UNGVSN/symfony-educational-project-sub002/pkg/params"

// ExtractorSource looks up key in one part of the request.
// Returns the value and true if the key is present, even when the value is empty.
type ExtractorSource = func(r *Request, key string) (any, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract iterates sources in order and returns the first present value.
// Returns (nil, false) if all sources miss.
func (e Extractor) Extract(r *Request, key string) (any, bool) {
	for _, src := range e.sources {
		if v, ok := src(r, key); ok {
			return v, true
		}
	}
	return nil, false
}

// ExtractString is Extract followed by string coercion.
// Values that are not string-representable count as a miss for that source.
func (e Extractor) ExtractString(r *Request, key string) (string, bool) {
	for _, src := range e.sources {
		v, ok := src(r, key)
		if !ok {
			continue
		}
		if s, ok := params.ToString(v); ok {
			return s, true
		}
	}
	return "", false
}

// FromAttributes returns a source that reads from the attributes bag.
func FromAttributes() ExtractorSource {
	return func(r *Request, key string) (any, bool) {
		return lookupBag(r.attributes.Has(key), r.attributes.Get(key, nil))
	}
}

// FromQuery returns a source that reads from the query string.
func FromQuery() ExtractorSource {
	return func(r *Request, key string) (any, bool) {
		return lookupBag(r.query.Has(key), r.query.Get(key, nil))
	}
}

// FromBody returns a source that reads from the form body.
func FromBody() ExtractorSource {
	return func(r *Request, key string) (any, bool) {
		return lookupBag(r.body.Has(key), r.body.Get(key, nil))
	}
}

// FromCookie returns a source that reads from the request cookies.
func FromCookie() ExtractorSource {
	return func(r *Request, key string) (any, bool) {
		return lookupBag(r.cookies.Has(key), r.cookies.Get(key, nil))
	}
}

// FromHeader returns a source that treats key as a header name.
func FromHeader() ExtractorSource {
	return func(r *Request, key string) (any, bool) {
		if !r.HasHeader(key) {
			return nil, false
		}
		return r.Header(key), true
	}
}

// FromJSON returns a source that reads top-level fields of a JSON body.
// Read failures count as a miss.
func FromJSON() ExtractorSource {
	return func(r *Request, key string) (any, bool) {
		if !r.IsJSON() {
			return nil, false
		}
		decoded, err := r.JSONContent()
		if err != nil || decoded == nil {
			return nil, false
		}
		v, ok := decoded[key]
		return v, ok
	}
}

func lookupBag(ok bool, v any) (any, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}
