// Package config loads TOML and YAML configuration files with environment
// variable overrides.
//
// Package: config
// Title: argv Configuration Management
// Description: Thread-safe access to configuration values using dot notation
//              ("classifier.negative_numbers"). Environment variables override
//              file values: with prefix ARGV the key above is read from
//              ARGV_CLASSIFIER_NEGATIVE_NUMBERS.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Removed file watching and tracing ids, simplified
//                      discovery and validation
//
// Usage:
//   cfg, err := config.LoadWithOptions("argv.toml", config.LoadOptions{EnvPrefix: "ARGV"})
//   if err != nil {
//     return err
//   }
//   negatives := cfg.GetBool("classifier.negative_numbers", true)
//   captures := cfg.GetStringSlice("classifier.captures")
package config
