// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against declarative rules:
//              required keys, expected types, length bounds and patterns.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-03-02 v0.2.0: Result converts to a structured error; struct binding removed

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	mdwerror "github.com/msto63/argv/foundation/core/error"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool   // Whether the field is required
	Type     string // Expected type: "string", "int", "bool", "[]string"
	MaxLen   int    // Maximum length for strings and slices (0 = unbounded)
	Pattern  string // Regex every string (or slice element) must match
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into a structured error, nil if valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("configuration validation failed: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeValidationFailed).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Validate validates the configuration against the provided rules. Keys are
// checked in sorted order so the error list is stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.getValue(key)

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if rule.MaxLen > 0 {
		if n, ok := lengthOf(value); ok && n > rule.MaxLen {
			return fmt.Errorf("field '%s' must have at most %d elements, got %d", key, rule.MaxLen, n)
		}
	}

	if rule.Pattern != "" {
		return validatePattern(key, value, rule.Pattern)
	}

	return nil
}

func validateType(key string, value interface{}, expectedType string) error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "int":
		switch v := value.(type) {
		case int, int64:
		case float64:
			if v != float64(int64(v)) {
				return fmt.Errorf("field '%s' must be an integer, got float with decimal places", key)
			}
		default:
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	case "[]string":
		switch v := value.(type) {
		case []string:
		case []interface{}:
			for i, item := range v {
				if _, ok := item.(string); !ok {
					return fmt.Errorf("field '%s' element %d must be a string, got %T", key, i, item)
				}
			}
		default:
			return fmt.Errorf("field '%s' must be a slice of strings, got %T", key, value)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", expectedType)
	}
	return nil
}

func lengthOf(value interface{}) (int, bool) {
	switch v := value.(type) {
	case string:
		return len([]rune(v)), true
	case []string:
		return len(v), true
	case []interface{}:
		return len(v), true
	}
	return 0, false
}

func validatePattern(key string, value interface{}, pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern for field '%s': %v", key, err)
	}

	var values []string
	switch v := value.(type) {
	case string:
		values = []string{v}
	case []string:
		values = v
	case []interface{}:
		for _, item := range v {
			values = append(values, fmt.Sprintf("%v", item))
		}
	default:
		return nil
	}

	for _, s := range values {
		if !re.MatchString(s) {
			return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, s, pattern)
		}
	}
	return nil
}
