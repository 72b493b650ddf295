package validator

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"unicode/utf8"
)

// IsPositive returns a validator requiring a numeric value strictly greater
// than zero. Non-numeric values fail; they are not an evaluation error.
func IsPositive() Validator {
	return &rangeValidator{description: "value must be greater than 0", low: 0, lowOpen: true, high: math.Inf(1)}
}

// Range returns a validator requiring low <= value <= high. Both bounds are
// inclusive.
func Range(low, high float64) Validator {
	return &rangeValidator{
		description: fmt.Sprintf("value must be between %v and %v (inclusive)", low, high),
		low:         low,
		high:        high,
	}
}

// Min returns a validator requiring value >= low.
func Min(low float64) Validator {
	return &rangeValidator{
		description: fmt.Sprintf("value must be at least %v", low),
		low:         low,
		high:        math.Inf(1),
	}
}

// Max returns a validator requiring value <= high.
func Max(high float64) Validator {
	return &rangeValidator{
		description: fmt.Sprintf("value must be at most %v", high),
		low:         math.Inf(-1),
		high:        high,
	}
}

type rangeValidator struct {
	description string
	low, high   float64
	lowOpen     bool
}

func (v *rangeValidator) Check(value any) (bool, error) {
	f, ok := asNumber(value)
	if !ok {
		return false, nil
	}
	if v.lowOpen {
		return f > v.low && f <= v.high, nil
	}
	return f >= v.low && f <= v.high, nil
}

func (v *rangeValidator) Describe() string {
	return v.description
}

// Choice returns a validator requiring the value to be a member of the
// allowed set, compared by exact equality.
func Choice(allowed ...any) Validator {
	return &choiceValidator{allowed: allowed}
}

type choiceValidator struct {
	allowed []any
}

func (v *choiceValidator) Check(value any) (bool, error) {
	for _, a := range v.allowed {
		if reflect.DeepEqual(value, a) {
			return true, nil
		}
	}
	return false, nil
}

func (v *choiceValidator) Describe() string {
	return fmt.Sprintf("value must be one of %v", v.allowed)
}

// Length returns a validator bounding the size of strings and sequence
// values, inclusive on both ends. A negative bound means unbounded on that
// side. Values without a size fail.
func Length(minLength, maxLength int) Validator {
	return &lengthValidator{min: minLength, max: maxLength}
}

// MinLength returns a validator requiring size >= n.
func MinLength(n int) Validator {
	return Length(n, -1)
}

// MaxLength returns a validator requiring size <= n.
func MaxLength(n int) Validator {
	return Length(-1, n)
}

type lengthValidator struct {
	min, max int
}

func (v *lengthValidator) Check(value any) (bool, error) {
	n, ok := sizeOf(value)
	if !ok {
		return false, nil
	}
	if v.min >= 0 && n < v.min {
		return false, nil
	}
	if v.max >= 0 && n > v.max {
		return false, nil
	}
	return true, nil
}

func (v *lengthValidator) Describe() string {
	switch {
	case v.min >= 0 && v.max >= 0:
		return fmt.Sprintf("length must be between %d and %d (inclusive)", v.min, v.max)
	case v.min >= 0:
		return fmt.Sprintf("length must be at least %d", v.min)
	case v.max >= 0:
		return fmt.Sprintf("length must be at most %d", v.max)
	}
	return "length is unbounded"
}

// IsNonEmptyString returns a validator requiring a string value of non-zero
// length. No trimming is applied: whitespace-only strings pass. Callers
// needing trim-aware emptiness should supply a stricter Func validator.
func IsNonEmptyString() Validator {
	return Func("value must be a non-empty string", func(value any) bool {
		s, ok := value.(string)
		return ok && len(s) > 0
	})
}

// Match returns a validator requiring a string value matching the regular
// expression. The pattern must compile; like regexp.MustCompile, a bad
// pattern is a programming error and panics at construction.
func Match(pattern string) Validator {
	return &matchValidator{re: regexp.MustCompile(pattern)}
}

type matchValidator struct {
	re *regexp.Regexp
}

func (v *matchValidator) Check(value any) (bool, error) {
	s, ok := value.(string)
	if !ok {
		return false, nil
	}
	return v.re.MatchString(s), nil
}

func (v *matchValidator) Describe() string {
	return fmt.Sprintf("value must match pattern %q", v.re.String())
}

// asNumber widens any numeric value to float64.
func asNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// sizeOf returns the length of a sized value: rune count for strings,
// element count for slices, arrays, and maps.
func sizeOf(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}
