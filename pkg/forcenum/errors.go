package forcenum

import "errors"

// Sentinel errors for configuration.
//
// Conversion itself never fails with an error; unusable input yields NaN.
var (
	// ErrInvalidDecimalSymbol indicates a decimal symbol that is empty, longer
	// than one character, or collides with the numeric syntax.
	ErrInvalidDecimalSymbol = errors.New("invalid decimal symbol")
)
