// File: capture.go
// Title: Capture List
// Description: The set of option names and flag characters that may consume
//              a value, either inline after '=' or as the following token.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package args

import (
	"strings"

	mdwstringx "github.com/msto63/argv/foundation/utils/stringx"
)

// CaptureList holds identifiers permitted to capture a value. Identifiers are
// stored without delimiter prefix; membership is exact and case-sensitive.
// The list does not distinguish option names from flag characters, so "o"
// makes both "--o" and "-o" capturing.
//
// A nil *CaptureList is valid and empty.
type CaptureList struct {
	names []string
}

// NewCaptureList builds a capture list, stripping up to two leading '-'
// from every identifier. Identifiers that are blank after stripping are
// ignored. With custom delimiters use PrefixRules.CaptureList, which strips
// the delimiters of those rules.
func NewCaptureList(names ...string) *CaptureList {
	return DefaultPrefixRules().CaptureList(names...)
}

// CaptureList builds a capture list, stripping up to two leading delimiters
// of r from every identifier
func (r PrefixRules) CaptureList(names ...string) *CaptureList {
	c := &CaptureList{names: make([]string, 0, len(names))}
	for _, name := range names {
		_, stripped := r.split(name)
		if mdwstringx.IsBlank(stripped) || c.IsPresent(stripped) {
			continue
		}
		c.names = append(c.names, stripped)
	}
	return c
}

// IsPresent reports whether name may capture a value
func (c *CaptureList) IsPresent(name string) bool {
	if c == nil {
		return false
	}
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// IsPresentRune reports whether the flag character r may capture a value
func (c *CaptureList) IsPresentRune(r rune) bool {
	return c.IsPresent(string(r))
}

// Len returns the number of identifiers
func (c *CaptureList) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Names returns a copy of the identifiers in insertion order
func (c *CaptureList) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

// String provides a readable representation of the list
func (c *CaptureList) String() string {
	return "CaptureList{" + strings.Join(c.Names(), ", ") + "}"
}
