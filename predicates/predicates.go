// Package predicates offers a small set of ready-made ValuePredicate
// implementations for common field shapes. The directive graph itself is
// deliberately predicate-agnostic — this package is just one convenient
// source of them, not a required dependency of fieldgraph.
package predicates

import (
	"fmt"
	"net/mail"
	"reflect"
	"strings"
)

// rejection is the error type every predicate in this package returns,
// carrying a stable machine-readable code alongside the message.
type rejection struct {
	code    string
	message string
}

func (r rejection) Error() string { return r.message }

// Code returns the predicate's stable failure code (e.g. "non_empty_string",
// "positive_number"), useful for callers that want to branch on failure kind
// without parsing the message.
func (r rejection) Code() string { return r.code }

func reject(code, format string, args ...any) error {
	return rejection{code: code, message: fmt.Sprintf(format, args...)}
}

// NonEmptyString rejects the empty string. Non-string values are rejected
// outright; fieldgraph never coerces a value before handing it to a
// predicate.
func NonEmptyString(value any) error {
	s, ok := value.(string)
	if !ok {
		return reject("non_empty_string", "must be a string, got %T", value)
	}
	if strings.TrimSpace(s) == "" {
		return reject("non_empty_string", "must be a non-empty string")
	}
	return nil
}

// PositiveNumber accepts any numeric kind strictly greater than zero.
func PositiveNumber(value any) error {
	n, ok := asFloat(value)
	if !ok {
		return reject("positive_number", "must be a number, got %T", value)
	}
	if n <= 0 {
		return reject("positive_number", "must be greater than zero")
	}
	return nil
}

// NonNegativeNumber accepts any numeric kind greater than or equal to zero.
func NonNegativeNumber(value any) error {
	n, ok := asFloat(value)
	if !ok {
		return reject("non_negative_number", "must be a number, got %T", value)
	}
	if n < 0 {
		return reject("non_negative_number", "must not be negative")
	}
	return nil
}

// Email accepts a string that parses as an RFC 5322 address.
func Email(value any) error {
	s, ok := value.(string)
	if !ok {
		return reject("email", "must be a string, got %T", value)
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return reject("email", "must be a valid email address")
	}
	return nil
}

// MinLength returns a predicate rejecting strings (and slices) shorter
// than n.
func MinLength(n int) func(value any) error {
	return func(value any) error {
		length, ok := lengthOf(value)
		if !ok {
			return reject("min_length", "must be a string or slice, got %T", value)
		}
		if length < n {
			return reject("min_length", "must have length >= %d, got %d", n, length)
		}
		return nil
	}
}

// MaxLength returns a predicate rejecting strings (and slices) longer
// than n.
func MaxLength(n int) func(value any) error {
	return func(value any) error {
		length, ok := lengthOf(value)
		if !ok {
			return reject("max_length", "must be a string or slice, got %T", value)
		}
		if length > n {
			return reject("max_length", "must have length <= %d, got %d", n, length)
		}
		return nil
	}
}

// OneOf returns a predicate accepting only one of the given string values.
func OneOf(allowed ...string) func(value any) error {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return reject("one_of", "must be a string, got %T", value)
		}
		if !set[s] {
			return reject("one_of", "must be one of %v, got %q", allowed, s)
		}
		return nil
	}
}

func asFloat(value any) (float64, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func lengthOf(value any) (int, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return v.Len(), true
	default:
		return 0, false
	}
}
