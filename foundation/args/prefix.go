// File: prefix.go
// Title: Prefix Rules
// Description: Delimiter set and negative-number policy used to decide how
//              deep a token is prefixed and whether a dash-prefixed number is
//              a value or a flag chain.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package args

import (
	"fmt"
	"strings"
	"unicode"

	mdwerror "github.com/msto63/argv/foundation/core/error"
	mdwstringx "github.com/msto63/argv/foundation/utils/stringx"
)

const (
	// DefaultDelimiter is used when no delimiters are configured
	DefaultDelimiter = '-'

	// MaxPrefixDepth is the deepest prefix the grammar knows: "--" for options
	MaxPrefixDepth = 2
)

// PrefixRules configures delimiter recognition.
//
// An empty Delimiters set behaves like {'-'}. NegativeNumbers decides what a
// single-delimiter token with a numeric remainder is: true keeps "-5.5" as a
// Parameter, false always expands it into flags. The zero value has
// NegativeNumbers off; use DefaultPrefixRules for the standard behavior.
type PrefixRules struct {
	Delimiters      []rune
	NegativeNumbers bool
}

// DefaultPrefixRules returns '-' as the only delimiter with negative numbers
// recognized
func DefaultPrefixRules() PrefixRules {
	return PrefixRules{
		Delimiters:      []rune{DefaultDelimiter},
		NegativeNumbers: true,
	}
}

// WithDelimiters returns a copy using the given delimiters
func (r PrefixRules) WithDelimiters(delimiters ...rune) PrefixRules {
	r.Delimiters = append([]rune(nil), delimiters...)
	return r
}

// WithNegativeNumbers returns a copy with the given negative-number policy
func (r PrefixRules) WithNegativeNumbers(enabled bool) PrefixRules {
	r.NegativeNumbers = enabled
	return r
}

// Primary returns the delimiter used when rendering records back to tokens
func (r PrefixRules) Primary() rune {
	if len(r.Delimiters) == 0 {
		return DefaultDelimiter
	}
	return r.Delimiters[0]
}

// IsDelimiter reports whether c is a member of the delimiter set
func (r PrefixRules) IsDelimiter(c rune) bool {
	if len(r.Delimiters) == 0 {
		return c == DefaultDelimiter
	}
	for _, d := range r.Delimiters {
		if d == c {
			return true
		}
	}
	return false
}

// CountPrefix counts the leading delimiter characters of token, stopping at
// max or the first non-delimiter
func (r PrefixRules) CountPrefix(token string, max int) int {
	count, _ := mdwstringx.CountLeading(token, r.IsDelimiter, max)
	return count
}

// HasPrefix reports whether token starts with a delimiter
func (r PrefixRules) HasPrefix(token string) bool {
	return r.CountPrefix(token, 1) == 1
}

// split strips up to MaxPrefixDepth delimiters and returns the depth and the
// remaining text
func (r PrefixRules) split(token string) (int, string) {
	depth, offset := mdwstringx.CountLeading(token, r.IsDelimiter, MaxPrefixDepth)
	return depth, token[offset:]
}

// Validate checks that every delimiter can be told apart from names, values
// and the '=' separator
func (r PrefixRules) Validate() error {
	seen := make(map[rune]bool, len(r.Delimiters))

	for i, d := range r.Delimiters {
		var reason string
		switch {
		case d == '=':
			reason = "'=' separates values and cannot be a delimiter"
		case unicode.IsSpace(d):
			reason = "whitespace cannot be a delimiter"
		case !unicode.IsPrint(d):
			reason = "delimiter must be a printable character"
		case unicode.IsLetter(d) || unicode.IsDigit(d):
			reason = "letters and digits cannot be delimiters"
		case seen[d]:
			reason = "duplicate delimiter"
		}

		if reason != "" {
			return mdwerror.New(fmt.Sprintf("invalid delimiter %q: %s", d, reason)).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("args.PrefixRules.Validate").
				WithDetail("delimiter", string(d)).
				WithDetail("index", i)
		}
		seen[d] = true
	}

	return nil
}

// String provides a readable representation of the rules
func (r PrefixRules) String() string {
	delimiters := r.Delimiters
	if len(delimiters) == 0 {
		delimiters = []rune{DefaultDelimiter}
	}

	quoted := make([]string, len(delimiters))
	for i, d := range delimiters {
		quoted[i] = fmt.Sprintf("%q", d)
	}
	return fmt.Sprintf("PrefixRules{delimiters: [%s], negativeNumbers: %t}",
		strings.Join(quoted, " "), r.NegativeNumbers)
}
