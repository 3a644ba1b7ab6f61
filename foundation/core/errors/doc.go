// File: doc.go
// Title: Shared Error Constructors
// Description: Package errors provides module-scoped constructors on top of the
//              structured error type so every foundation package reports failures
//              with the same detail keys (module, operation, input, expected).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-03-02 v0.2.0: Module set reduced to args, profile, config, mathx, stringx

// Package errors provides standardized error constructors for foundation modules.
//
// Every error built here carries a "module" detail and, where applicable, an
// "operation" detail:
//
//	err := errors.InvalidFormat(errors.ModuleMathx, "0xZZ", "hexadecimal literal")
//	errors.ExtractModule(err) // "mathx"
package errors
