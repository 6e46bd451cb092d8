package forcenum

import (
	"unicode"
	"unicode/utf8"
)

// DefaultDecimalSymbol is the decimal symbol used when none is configured.
const DefaultDecimalSymbol = '.'

// options holds per-call conversion settings.
type options struct {
	decimalSymbol rune
}

// defaultOptions returns the default conversion settings.
func defaultOptions() options {
	return options{
		decimalSymbol: DefaultDecimalSymbol,
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Option configures conversion behavior.
type Option func(*options)

// WithDecimalSymbol sets the character that marks the decimal point in
// textual input. Default: '.'
//
// Symbols that would collide with the numeric syntax (digits, signs, the
// exponent letter, whitespace) are ignored and the default is kept.
//
// Example:
//
//	forcenum.Convert("1.234,56", forcenum.WithDecimalSymbol(','))  // 1234.56
func WithDecimalSymbol(r rune) Option {
	return func(o *options) {
		if validDecimalSymbol(r) {
			o.decimalSymbol = r
		}
	}
}

// ParseDecimalSymbol validates a textual decimal symbol, as found in
// configuration files. The string must hold exactly one usable rune.
func ParseDecimalSymbol(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrInvalidDecimalSymbol
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !validDecimalSymbol(r) {
		return 0, ErrInvalidDecimalSymbol
	}
	return r, nil
}

func validDecimalSymbol(r rune) bool {
	switch {
	case r == utf8.RuneError, r < ' ':
		return false
	case r >= '0' && r <= '9':
		return false
	case r == '-', r == '+', r == 'e', r == 'E':
		return false
	case unicode.IsSpace(r):
		return false
	}
	return true
}
