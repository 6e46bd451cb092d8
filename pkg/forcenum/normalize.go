package forcenum

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	oneThousand = 1e3
	oneMillion  = 1e6
	oneBillion  = 1e9
)

// space matches a single whitespace rune as ECMAScript's \s does: ASCII
// whitespace, vertical tab, Unicode separators and the BOM.
const space = `[\s\v\p{Z}\x{FEFF}]`

var (
	// 1K = 1000, 2.3 thousand = 2300
	thousandPattern = magnitudePattern("k", "thousand")
	// 1M = 1000000, 3.2 million = 3200000
	millionPattern = magnitudePattern("m", "million")
	// 1B = 1000000000, 3.2 billion = 3200000000
	billionPattern = magnitudePattern("b", "billion")

	// Accounting notation: (123) means -123.
	parenthesesPattern = regexp.MustCompile(`^\(.*\)$`)

	// Exponent suffix; group 1 is kept out of the character filter.
	exponentPattern = regexp.MustCompile(`\d([eE][+-]?\d+)`)
)

// magnitudePattern matches a digit followed by the suffix letter, or by an
// optional whitespace rune and the word. Letters match ASCII case only;
// (?i) would also fold characters such as KELVIN SIGN into k.
func magnitudePattern(letter, word string) *regexp.Regexp {
	return regexp.MustCompile(`\d` + asciiCaseless(letter) + `|\d` + space + `?` + asciiCaseless(word))
}

// asciiCaseless turns "ab" into "[aA][bB]".
func asciiCaseless(word string) string {
	var b strings.Builder
	for _, r := range word {
		b.WriteByte('[')
		b.WriteRune(unicode.ToLower(r))
		b.WriteRune(unicode.ToUpper(r))
		b.WriteByte(']')
	}
	return b.String()
}

// parseString runs the full text pipeline and applies the multiplier.
// The result may be NaN or infinite.
func parseString(s string, decimalSymbol rune) float64 {
	literal, multiplier := normalize(s, decimalSymbol)
	return parseLeadingFloat(literal) * multiplier
}

// normalize reduces s to a literal parseLeadingFloat understands and
// returns the multiplier to apply to the parsed value.
// The steps run in order; each consumes the string the previous one left.
func normalize(s string, decimalSymbol rune) (string, float64) {
	multiplier := magnitude(s)

	if parenthesesPattern.MatchString(strings.TrimSpace(s)) {
		multiplier = -multiplier
	}

	var suffix string
	if m := exponentPattern.FindStringSubmatchIndex(s); m != nil {
		suffix = s[m[2]:m[3]]
		s = s[:m[2]]
	}

	var b strings.Builder
	b.Grow(len(s) + len(suffix))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == decimalSymbol:
			// The only decimal point strconv understands.
			b.WriteByte('.')
		}
	}
	b.WriteString(suffix)

	return b.String(), multiplier
}

// magnitude returns the scale implied by a suffix in s, or 1.
// Later checks overwrite earlier ones.
func magnitude(s string) float64 {
	multiplier := 1.0
	if thousandPattern.MatchString(s) {
		multiplier = oneThousand
	}
	if millionPattern.MatchString(s) {
		multiplier = oneMillion
	}
	if billionPattern.MatchString(s) {
		multiplier = oneBillion
	}
	return multiplier
}
