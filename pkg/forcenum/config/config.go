package config

import (
	"fmt"
	"math"
	"slices"

	"github.com/randalmurphal/forcenum/pkg/forcenum"
)

// DecimalSymbolKey is the key read by DecimalSymbol and ConvertOptions.
const DecimalSymbolKey = "decimal_symbol"

// Config wraps a map[string]any for forgiving value extraction.
// Numeric accessors coerce through forcenum, so "$1.2k" reads as 1200.
// All accessors return the default if the key is missing or the value
// has no usable interpretation.
type Config struct {
	data map[string]any
	opts []forcenum.Option
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned. The options apply to every
// numeric accessor.
func New(data map[string]any, opts ...forcenum.Option) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data, opts: opts}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.data[key].(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	if b, ok := c.data[key].(bool); ok {
		return b
	}
	return defaultVal
}

// Float returns the numeric interpretation of key, or defaultVal if missing
// or not convertible.
//
// Accepts anything forcenum.Convert accepts:
//   - numbers: used directly
//   - booleans: 1 or 0
//   - strings: "12.5", "$1,200", "(30)", "2.5M"
func (c Config) Float(key string, defaultVal float64) float64 {
	if n := c.FloatOrNil(key); n != nil {
		return *n
	}
	return defaultVal
}

// FloatOrNil returns the numeric interpretation of key, or nil if missing or
// not convertible.
func (c Config) FloatOrNil(key string) *float64 {
	v, ok := c.data[key]
	if !ok {
		return nil
	}
	return forcenum.ConvertOrNil(v, c.opts...)
}

// Int returns the integer interpretation of key, or defaultVal if missing,
// not convertible, fractional, or out of int range.
func (c Config) Int(key string, defaultVal int) int {
	n := c.FloatOrNil(key)
	if n == nil || *n != math.Trunc(*n) {
		return defaultVal
	}
	if *n >= math.MaxInt || *n < math.MinInt {
		return defaultVal
	}
	return int(*n)
}

// Section returns the nested map under key as a Config sharing this
// Config's options. Missing or non-map values give an empty Config.
func (c Config) Section(key string) Config {
	nested, _ := c.data[key].(map[string]any)
	return New(nested, c.opts...)
}

// DecimalSymbol returns the decimal symbol configured under decimal_symbol,
// or defaultVal if the key is missing. A present but unusable value is an
// error wrapping forcenum.ErrInvalidDecimalSymbol.
func (c Config) DecimalSymbol(defaultVal rune) (rune, error) {
	v, ok := c.data[DecimalSymbolKey]
	if !ok || v == nil {
		return defaultVal, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%s: %w", DecimalSymbolKey, forcenum.ErrInvalidDecimalSymbol)
	}
	r, err := forcenum.ParseDecimalSymbol(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", DecimalSymbolKey, s, err)
	}
	return r, nil
}

// ConvertOptions returns the conversion options described by this Config.
// Without a decimal_symbol key of its own, a Config returns the options it
// was created with, so a Section inherits its parent's decimal symbol.
//
// Example:
//
//	cfg, _ := config.FromYAML([]byte(`decimal_symbol: ","`))
//	opts, _ := cfg.ConvertOptions()
//	forcenum.Convert("25,12K", opts...)  // 25120
func (c Config) ConvertOptions() ([]forcenum.Option, error) {
	if v, ok := c.data[DecimalSymbolKey]; !ok || v == nil {
		return slices.Clone(c.opts), nil
	}
	r, err := c.DecimalSymbol(forcenum.DefaultDecimalSymbol)
	if err != nil {
		return nil, err
	}
	return []forcenum.Option{forcenum.WithDecimalSymbol(r)}, nil
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() map[string]any {
	return c.data
}
