// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides small, Unicode-safe string helpers
//              used across the argv foundation.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2025-03-02 v0.3.0: Reduced to the helpers the classifier needs

// Package stringx provides extended string operations for argv.
//
// Overview
//
// The helpers fall into three groups:
//
//   - Checks: IsEmpty, IsBlank, IsNotBlank, HasPrefixFold
//   - Scanning: CountLeading counts delimiter runes at the start of a token
//   - Presentation: Truncate, FirstNonBlank, QuoteIfNeeded
//
// Every function operates on runes, so a multi-byte character is never split.
//
// Usage Examples
//
//	isDash := func(r rune) bool { return r == '-' }
//	depth, offset := stringx.CountLeading("--verbose", isDash, 2)
//	// depth == 2, "--verbose"[offset:] == "verbose"
//
//	stringx.HasPrefixFold("0XFF", "0x") // true
//	stringx.QuoteIfNeeded("a b")        // "\"a b\""
package stringx
