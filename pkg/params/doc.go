// Package params provides Bag, a typed accessor over an untyped string-keyed
// mapping such as query parameters, form fields, cookies or server variables.
//
// # Basic Usage
//
//	b := params.New(map[string]any{"page": "2", "debug": "on"})
//
//	page := b.GetInt("page", 1)      // 2
//	debug := b.GetBool("debug", false) // true
//	sort := b.GetAlpha("sort", "asc")  // "asc" (missing key)
//
// # Coercion Rules
//
// Accessors never fail. When a stored value cannot be represented as the
// requested type, the default is returned:
//   - [Bag.GetInt]: numbers, bools and numeric strings; "abc" yields the default
//   - [Bag.GetBool]: truthiness; "", "0", "false", "off" and "no" are false
//   - [Bag.GetString]: scalars and fmt.Stringer values; slices and maps yield the default
//   - [Bag.GetAlpha], [Bag.GetAlnum], [Bag.GetDigits]: GetString filtered to a character class
//   - [Bag.GetText]: GetString with HTML stripped
//
// [Value] performs a plain type assertion for callers that know the stored type:
//
//	files := params.Value[[]string](b, "tags", nil)
//
// # Presence
//
// [Bag.Has] is true iff the key was set, even when the stored value is nil.
package params
