package wideint

import (
	"strings"
)

const (
	skipDigit    = 1<<64 - 1
	invalidDigit = 1<<64 - 2
)

// digitValue maps a character to its value in the given radix's alphabet.
//
// Radixes up to 36 use 0-9 followed by a-z, in either case, with '_' as a
// separator. Radixes 37 to 64 use the base64 family alphabet A-Z, a-z, 0-9,
// then '+' or '-' for 62 and '/', ',' or '_' for 63, ignoring '=' and line
// breaks.
func digitValue(c rune, radix uint64) uint64 {
	if radix <= 36 {
		switch {
		case c >= '0' && c <= '9':
			return uint64(c - '0')
		case c >= 'a' && c <= 'z':
			return uint64(c-'a') + 10
		case c >= 'A' && c <= 'Z':
			return uint64(c-'A') + 10
		case c == '_':
			return skipDigit
		}
		return invalidDigit
	}

	switch {
	case c >= 'A' && c <= 'Z':
		return uint64(c - 'A')
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 26
	case c >= '0' && c <= '9':
		return uint64(c-'0') + 52
	case c == '+' || c == '-':
		return 62
	case c == '/' || c == ',' || c == '_':
		return 63
	case c == '=' || c == '\r' || c == '\n':
		return skipDigit
	}
	return invalidDigit
}

// FromStrRadix parses s as a number in the given radix, 2 to 64. No prefix
// is accepted; see Parse for that. An empty string parses as 0.
//
// Errors are an *InvalidBaseError, an *InvalidDigitError naming the first
// offending character, or an *OverflowError, whichever is met first.
func FromStrRadix[W Width](s string, radix uint64) (u Uint[W], err error) {
	if radix < 2 || radix > 64 {
		return u, &InvalidBaseError{Base: radix}
	}
	for _, c := range s {
		d := digitValue(c, radix)
		switch {
		case d == skipDigit:
			continue
		case d == invalidDigit:
			return Uint[W]{}, &InvalidDigitError{Base: radix, Char: c}
		case d >= radix:
			return Uint[W]{}, &InvalidDigitError{Digit: d, Base: radix, Char: c}
		}
		if !u.mulAddSmall(radix, d) {
			return Uint[W]{}, overflowError[W]()
		}
	}
	return u, nil
}

// Parse parses s as a decimal number, or as binary, octal or hex when it
// starts with "0b", "0o" or "0x" (in either case).
func Parse[W Width](s string) (Uint[W], error) {
	radix := uint64(10)
	if len(s) >= 2 {
		switch strings.ToLower(s[:2]) {
		case "0x":
			s, radix = s[2:], 16
		case "0o":
			s, radix = s[2:], 8
		case "0b":
			s, radix = s[2:], 2
		}
	}
	return FromStrRadix[W](s, radix)
}

// MustParse is like Parse but panics on error. It is intended for
// initialising constants.
func MustParse[W Width](s string) Uint[W] {
	u, err := Parse[W](s)
	if err != nil {
		panic(err)
	}
	return u
}
