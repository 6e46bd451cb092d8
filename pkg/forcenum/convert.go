package forcenum

import (
	"encoding/json"
	"math"
	"reflect"
)

// Kind classifies an input value for conversion.
type Kind int

const (
	// KindOther covers nil and every value that is not numeric, boolean or text.
	KindOther Kind = iota
	// KindNumeric covers integer and floating point values.
	KindNumeric
	// KindBoolean covers boolean values.
	KindBoolean
	// KindText covers strings and json.Number.
	KindText
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindBoolean:
		return "boolean"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// KindOf reports how Convert will treat v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindOther
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return KindNumeric
	case bool:
		return KindBoolean
	case string, json.Number:
		return KindText
	}

	// Named types such as `type Price float64`.
	switch reflect.ValueOf(v).Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindNumeric
	case reflect.Bool:
		return KindBoolean
	case reflect.String:
		return KindText
	default:
		return KindOther
	}
}

// Convert very aggressively converts v to a number.
// Returns NaN when no finite numeric interpretation exists; it never panics.
//
// Numbers are returned unchanged if finite, booleans become 1 or 0, text is
// normalized (see the package documentation) and any other kind of value,
// including nil, maps and slices, is NaN.
//
// Example:
//
//	forcenum.Convert("(1,250.50)")  // -1250.5
//	forcenum.Convert(true)          // 1
//	forcenum.Convert([]int{4})      // NaN
func Convert(v any, opts ...Option) float64 {
	switch KindOf(v) {
	case KindNumeric:
		return finiteOrNaN(numericValue(v))
	case KindBoolean:
		if reflect.ValueOf(v).Bool() {
			return 1
		}
		return 0
	case KindText:
		o := buildOptions(opts)
		return finiteOrNaN(parseString(textValue(v), o.decimalSymbol))
	default:
		return math.NaN()
	}
}

// TryConvert is like Convert but reports success instead of returning NaN.
func TryConvert(v any, opts ...Option) (float64, bool) {
	n := Convert(v, opts...)
	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// ConvertOrNil is like Convert but returns nil where Convert returns NaN.
//
// Example:
//
//	if n := forcenum.ConvertOrNil(cell); n != nil {
//	    total += *n
//	}
func ConvertOrNil(v any, opts ...Option) *float64 {
	n := Convert(v, opts...)
	if math.IsNaN(n) {
		return nil
	}
	return &n
}

func finiteOrNaN(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

// numericValue widens any value of numeric kind to float64.
func numericValue(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.CanFloat():
		return rv.Float()
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	}
	return math.NaN()
}

// textValue extracts the string from any value of text kind.
func textValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return string(s)
	}
	return reflect.ValueOf(v).String()
}
