// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Table-driven tests covering edge cases and Unicode handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-03-02 v0.2.0: Prefix counting and quoting tests

package stringx

import (
	"testing"

	mdwerror "github.com/msto63/argv/foundation/core/error"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, got, tt.expected)
			}
			if got := IsNotBlank(tt.input); got == tt.expected {
				t.Errorf("IsNotBlank(%q) = %v; want %v", tt.input, got, !tt.expected)
			}
		})
	}

	if !IsEmpty("") || IsEmpty(" ") {
		t.Error("IsEmpty() must only accept the zero-length string")
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "posix", "gnu"); got != "posix" {
		t.Errorf("FirstNonBlank() = %q, want posix", got)
	}
	if got := FirstNonBlank(" "); got != "" {
		t.Errorf("FirstNonBlank() = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"fits", "short", 10, "...", "short"},
		{"exact", "hello", 5, "...", "hello"},
		{"truncated", "hello world", 8, "...", "hello..."},
		{"ellipsis too long", "hello world", 2, "...", "he"},
		{"zero length", "hello", 0, "...", ""},
		{"unicode", "これは日本語のテキスト", 6, "…", "これは日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.input, tt.maxLen, tt.ellipsis, got, tt.expected)
			}
		})
	}
}

func TestHasPrefixFold(t *testing.T) {
	tests := []struct {
		s, prefix string
		expected  bool
	}{
		{"0xFF", "0x", true},
		{"0XFF", "0x", true},
		{"0x", "0x", true},
		{"0", "0x", false},
		{"x0", "0x", false},
		{"", "", true},
		{"ÄBC", "äb", true},
	}

	for _, tt := range tests {
		if got := HasPrefixFold(tt.s, tt.prefix); got != tt.expected {
			t.Errorf("HasPrefixFold(%q, %q) = %v; want %v", tt.s, tt.prefix, got, tt.expected)
		}
	}
}

func TestCountLeading(t *testing.T) {
	isDash := func(r rune) bool { return r == '-' }
	isDelim := func(r rune) bool { return r == '-' || r == '→' }

	tests := []struct {
		name       string
		input      string
		match      func(rune) bool
		max        int
		wantCount  int
		wantOffset int
	}{
		{"no prefix", "file", isDash, 2, 0, 0},
		{"single", "-v", isDash, 2, 1, 1},
		{"double", "--verbose", isDash, 2, 2, 2},
		{"capped", "---x", isDash, 2, 2, 2},
		{"unlimited", "---x", isDash, 0, 3, 3},
		{"only delimiters", "--", isDash, 2, 2, 2},
		{"empty", "", isDash, 2, 0, 0},
		{"multi-byte delimiter", "→→a", isDelim, 2, 2, 6},
		{"mixed delimiters", "-→a", isDelim, 2, 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, offset := CountLeading(tt.input, tt.match, tt.max)
			if count != tt.wantCount || offset != tt.wantOffset {
				t.Errorf("CountLeading(%q) = (%d, %d); want (%d, %d)",
					tt.input, count, offset, tt.wantCount, tt.wantOffset)
			}
		})
	}
}

func TestQuoteIfNeeded(t *testing.T) {
	tests := map[string]string{
		"plain":    "plain",
		"--out=x":  "--out=x",
		"":         `""`,
		"a b":      `"a b"`,
		`say "hi"`: `"say \"hi\""`,
		"tab\there": `"tab\there"`,
		"ünïcode":  "ünïcode",
	}

	for input, want := range tests {
		if got := QuoteIfNeeded(input); got != want {
			t.Errorf("QuoteIfNeeded(%q) = %s; want %s", input, got, want)
		}
	}
}

func TestValidateNotBlank(t *testing.T) {
	if err := ValidateNotBlank("name"); err != nil {
		t.Errorf("ValidateNotBlank(name) = %v", err)
	}
	err := ValidateNotBlank("  ")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("ValidateNotBlank(blank) = %v, want CodeInvalidInput", err)
	}
}
