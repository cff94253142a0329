package params

import (
	"maps"
	"slices"
)

// Bag is a typed accessor over an untyped string-keyed mapping.
// Request data is untrusted, so no accessor returns an error: type mismatches
// fall back to the caller-supplied default.
type Bag struct {
	values map[string]any
}

// New creates a Bag holding a copy of the given values.
func New(values map[string]any) *Bag {
	b := &Bag{values: make(map[string]any, len(values))}
	maps.Copy(b.values, values)
	return b
}

// All returns a copy of every stored value.
func (b *Bag) All() map[string]any {
	return maps.Clone(b.values)
}

// Keys returns the stored keys in lexical order.
func (b *Bag) Keys() []string {
	return slices.Sorted(maps.Keys(b.values))
}

// Get returns the stored value, or def if key was never set.
// A key explicitly set to nil returns nil.
func (b *Bag) Get(key string, def any) any {
	if v, ok := b.values[key]; ok {
		return v
	}
	return def
}

// Set stores value under key, replacing any previous value.
func (b *Bag) Set(key string, value any) {
	b.values[key] = value
}

// Has reports whether key was explicitly set.
func (b *Bag) Has(key string) bool {
	_, ok := b.values[key]
	return ok
}

// Remove deletes key. Removing a missing key is a no-op.
func (b *Bag) Remove(key string) {
	delete(b.values, key)
}

// Count returns the number of stored keys.
func (b *Bag) Count() int {
	return len(b.values)
}

// Replace discards all values and stores a copy of values instead.
func (b *Bag) Replace(values map[string]any) {
	b.values = make(map[string]any, len(values))
	maps.Copy(b.values, values)
}

// Add merges values into the bag, overwriting existing keys.
func (b *Bag) Add(values map[string]any) {
	maps.Copy(b.values, values)
}

// GetInt returns the value coerced to an int.
// Non-numeric values yield def.
func (b *Bag) GetInt(key string, def int) int {
	v, ok := b.values[key]
	if !ok {
		return def
	}
	n, ok := ToInt(v)
	if !ok {
		return def
	}
	return n
}

// GetFloat returns the value coerced to a float64.
// Non-numeric values yield def.
func (b *Bag) GetFloat(key string, def float64) float64 {
	v, ok := b.values[key]
	if !ok {
		return def
	}
	f, ok := ToFloat(v)
	if !ok {
		return def
	}
	return f
}

// GetBool returns the truthiness of the stored value, or def if key is missing.
func (b *Bag) GetBool(key string, def bool) bool {
	v, ok := b.values[key]
	if !ok {
		return def
	}
	return ToBool(v)
}

// GetString returns the value as a string.
// Only scalar or string-representable values convert; anything else yields def.
func (b *Bag) GetString(key, def string) string {
	v, ok := b.values[key]
	if !ok {
		return def
	}
	s, ok := ToString(v)
	if !ok {
		return def
	}
	return s
}

// GetAlpha returns GetString with every non-letter removed.
func (b *Bag) GetAlpha(key, def string) string {
	return Filter(b.GetString(key, def), isAlpha)
}

// GetAlnum returns GetString with every non-letter, non-digit removed.
func (b *Bag) GetAlnum(key, def string) string {
	return Filter(b.GetString(key, def), isAlnum)
}

// GetDigits returns GetString with every non-digit removed.
func (b *Bag) GetDigits(key, def string) string {
	return Filter(b.GetString(key, def), isDigit)
}

// Value returns the stored value asserted to T.
// Missing keys and values of another type yield def.
func Value[T any](b *Bag, key string, def T) T {
	if v, ok := b.values[key].(T); ok {
		return v
	}
	return def
}
