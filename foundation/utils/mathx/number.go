// File: number.go
// Title: Number Literal Recognition
// Description: Predicates that decide whether a single token is a signed
//              decimal or hexadecimal number literal, plus a parser for the
//              accepted forms. Thousands-separator commas and surrounding
//              whitespace are ignored.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package mathx

import (
	"strconv"
	"strings"

	mdwerror "github.com/msto63/argv/foundation/core/error"
	"github.com/msto63/argv/foundation/core/errors"
	mdwstringx "github.com/msto63/argv/foundation/utils/stringx"
)

const hexPrefix = "0x"

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsHexDigit reports whether r is an ASCII hexadecimal digit (either case).
func IsHexDigit(r rune) bool {
	return IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// normalize strips thousands separators and surrounding whitespace
func normalize(token string) string {
	return strings.TrimSpace(strings.ReplaceAll(token, ",", ""))
}

// IsNumber reports whether token is a number literal.
//
// Accepted forms, after commas and surrounding whitespace are removed:
//   - "0x" (any case) followed by one or more hex digits
//   - an optional leading '-', then decimal digits with at most one '.'
//     and at least one digit
func IsNumber(token string) bool {
	s := normalize(token)
	if s == "" {
		return false
	}

	if mdwstringx.HasPrefixFold(s, hexPrefix) {
		return isHex(s[len(hexPrefix):])
	}
	return isDecimal(strings.TrimPrefix(s, "-"))
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsHexDigit(r) {
			return false
		}
	}
	return true
}

func isDecimal(s string) bool {
	digits, points := 0, 0
	for _, r := range s {
		switch {
		case IsDigit(r):
			digits++
		case r == '.':
			points++
			if points > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}

// ParseNumber parses a token accepted by IsNumber. Hexadecimal literals are
// read as unsigned 64-bit integers before conversion.
func ParseNumber(token string) (float64, error) {
	if !IsNumber(token) {
		return 0, errors.InvalidFormat(errors.ModuleMathx, token, "number")
	}

	s := normalize(token)
	if mdwstringx.HasPrefixFold(s, hexPrefix) {
		v, err := strconv.ParseUint(s[len(hexPrefix):], 16, 64)
		if err != nil {
			return 0, errors.NewErrorBuilder(errors.ModuleMathx).
				Operation("parse_number").
				Messagef("hex literal %q out of range", token).
				Cause(err).
				Code(mdwerror.CodeValueOutOfRange).
				Build()
		}
		return float64(v), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.NewErrorBuilder(errors.ModuleMathx).
			Operation("parse_number").
			Messagef("number %q out of range", token).
			Cause(err).
			Code(mdwerror.CodeValueOutOfRange).
			Build()
	}
	return v, nil
}
