/*
Package forcenum aggressively coerces arbitrary values into numbers.

# Overview

forcenum turns "dirty" values into a best-effort float64. It is meant for
reading numbers that were formatted for humans: spreadsheet exports, scraped
prices, report cells, loosely typed JSON. Currency symbols, grouping
separators and other decoration are stripped, accounting-style parentheses
negate the value, and magnitude suffixes scale it.

	forcenum.Convert("USD$ 123.47")  // 123.47
	forcenum.Convert("(100,000¥)")   // -100000
	forcenum.Convert("-$30.65235M")  // -30652350
	forcenum.Convert("12/31/2007")   // 12312007
	forcenum.Convert("7e4")          // 70000
	forcenum.Convert("32.43.54")     // 32.43
	forcenum.Convert("whatever")     // NaN

Use with caution. Nothing is validated: "12/31/2007" is a perfectly good
number as far as this package is concerned.

# Input Kinds

Values are classified with KindOf:

  - numeric: every Go integer and float type, including named types
  - boolean: true converts to 1, false to 0
  - text: string, named string types and json.Number
  - other: nil, maps, structs, slices, pointers and everything else

Numeric values pass through unchanged when finite. Text is normalized and
parsed. Everything else, and every non-finite result, is NaN.

# Magnitude Suffixes

A digit immediately followed by a suffix letter, or by an optional single
whitespace and a suffix word, scales the result:

	5k, 5K, 5 thousand   -> 5000
	5m, 5M, 5 million    -> 5000000
	5b, 5B, 5 billion    -> 5000000000

The checks are independent and the last one that matches wins, so billion
takes precedence over million, which takes precedence over thousand.
Words that merely start with a suffix letter after a space do not count:
"5 meters" and "5 tenths" are both 5.
Letters match in either ASCII case only; look-alikes such as the Kelvin
sign are not suffixes.

# Decimal Symbol

The decimal symbol defaults to '.', and can be changed per call:

	forcenum.Convert("25,12K", forcenum.WithDecimalSymbol(','))  // 25120

Every other character that is not a digit or '-' is discarded, so with ','
as the decimal symbol "1.234,56" reads as 1234.56.

# Absent Values

ConvertOrNil maps NaN to a nil pointer for callers that prefer absence over
a sentinel, for example when writing SQL NULL or JSON null:

	forcenum.ConvertOrNil("whatever")  // nil
	forcenum.ConvertOrNil("asdbs45k")  // pointer to 45000

TryConvert offers the same distinction as a comma-ok pair.

# Thread Safety

All functions are pure and safe for concurrent use.
*/
package forcenum
