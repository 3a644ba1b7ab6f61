// File: stringx.go
// Title: Core String Utility Functions
// Description: String helpers shared by the classifier, the number helpers
//              and the command line front end. All functions are Unicode-safe
//              and never split multi-byte characters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-03-02 v0.2.0: Added prefix counting and case-folded prefix checks,
//                      removed interning, padding and case conversion

package stringx

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/argv/foundation/core/errors"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// Truncate truncates a string to maxLen runes, adding an ellipsis if truncated.
// If the ellipsis does not fit, the string is cut without it.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// HasPrefixFold reports whether s begins with prefix, ignoring ASCII and
// Unicode simple case folding.
func HasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

// CountLeading counts how many leading runes of s satisfy match, stopping
// after max runes (max <= 0 means no limit). It returns the count and the
// byte offset of the first rune that was not counted.
func CountLeading(s string, match func(rune) bool, max int) (count, offset int) {
	for offset < len(s) {
		if max > 0 && count == max {
			break
		}
		r, size := utf8.DecodeRuneInString(s[offset:])
		if !match(r) {
			break
		}
		count++
		offset += size
	}
	return count, offset
}

// QuoteIfNeeded returns s unchanged when it is safe as a single shell word,
// otherwise a double-quoted Go string literal.
func QuoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if unicode.IsSpace(r) || strings.ContainsRune(`"'\$`+"`", r) || !unicode.IsPrint(r) {
			return strconv.Quote(s)
		}
	}
	return s
}

// ValidateNotBlank validates that a string is not blank
func ValidateNotBlank(s string) error {
	if IsBlank(s) {
		return errors.InvalidInput(errors.ModuleStringx, "validate_not_blank", s, "non-blank string")
	}
	return nil
}
