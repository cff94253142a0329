package internal

import (
	"reflect"
	"strconv"
	"strings"
)

// Scalar lists the types the typed parameter helpers convert to.
type Scalar interface {
	~string | ~int | ~int64 | ~float64 | ~bool
}

// Param returns a route attribute converted to T.
// Returns the zero value if the attribute is missing or cannot be parsed.
func Param[T Scalar](r *Request, name string) T {
	raw, _ := NewExtractor(FromAttributes()).ExtractString(r, name)
	v, _ := convertParam[T](raw)
	return v
}

// Query returns a query parameter converted to T.
// Returns the zero value if the parameter is missing or cannot be parsed.
func Query[T Scalar](r *Request, name string) T {
	raw, _ := NewExtractor(FromQuery()).ExtractString(r, name)
	v, _ := convertParam[T](raw)
	return v
}

// QueryDefault retrieves a typed query parameter with a default value.
// Returns defaultValue if the parameter is empty or cannot be parsed.
func QueryDefault[T Scalar](r *Request, name string, defaultValue T) T {
	raw, ok := NewExtractor(FromQuery()).ExtractString(r, name)
	if !ok || raw == "" {
		return defaultValue
	}
	v, ok := convertParam[T](raw)
	if !ok {
		return defaultValue
	}
	return v
}

// convertParam converts a raw string to the target type T.
// Named types with a Scalar underlying type convert through their kind.
// Returns the converted value and true on success, or the zero value and false on failure.
func convertParam[T Scalar](raw string) (T, bool) {
	var out T
	raw = strings.TrimSpace(raw)
	rv := reflect.ValueOf(&out).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(raw)
	case reflect.Int, reflect.Int64:
		v, err := strconv.ParseInt(raw, 10, rv.Type().Bits())
		if err != nil {
			return *new(T), false
		}
		rv.SetInt(v)
	case reflect.Float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return *new(T), false
		}
		rv.SetFloat(v)
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return *new(T), false
		}
		rv.SetBool(v)
	default:
		return *new(T), false
	}
	return out, true
}
