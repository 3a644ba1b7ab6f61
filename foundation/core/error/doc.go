// Package error provides structured error handling for the argv foundation.
//
// Package: error
// Title: argv Error Handling
// Description: Structured errors with codes, severities, operation context and
//              captured stack frames. The classification core itself never fails;
//              these errors belong to the layers around it: rule validation,
//              profile loading and the command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Reduced code set to configuration, input and validation errors
//
// Usage:
//   import mdwerror "github.com/msto63/argv/foundation/core/error"
//
//   err := mdwerror.New("delimiter set is empty").
//     WithCode(mdwerror.CodeInvalidConfig).
//     WithOperation("args.PrefixRules.Validate").
//     WithDetail("delimiters", "")
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
//     // fall back to defaults
//   }
package error
