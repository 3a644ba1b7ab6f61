// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx recognizes and parses number literals as they
//              appear in command line tokens.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2025-03-02 v0.3.0: Replaced decimal arithmetic with number literal recognition

// Package mathx provides number literal recognition for argv.
//
// Overview
//
// The classifier must tell a negative number ("-5.5") apart from a flag chain
// ("-abc"). IsNumber answers that question for a single token:
//
//	mathx.IsNumber("5.5")      // true
//	mathx.IsNumber("-1,000")   // true, commas are thousands separators
//	mathx.IsNumber("0xFF")     // true
//	mathx.IsNumber("1.2.3")    // false, at most one decimal point
//	mathx.IsNumber("0x")       // false, at least one hex digit
//
// ParseNumber converts an accepted literal to float64:
//
//	v, err := mathx.ParseNumber("1,024") // 1024, nil
//
// Exponents, '+' signs and signed hex literals are not recognized.
package mathx
