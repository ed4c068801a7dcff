// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against type, range and
//              allowed-value rules.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-19 v0.2.0: Single joined error result, OneOf rule, no struct binding

package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // The key must be present
	Type     string   // "string", "int", "float" or "bool"
	Min      *float64 // Inclusive lower bound for numbers
	Max      *float64 // Inclusive upper bound for numbers
	OneOf    []string // Allowed values for strings, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// Bound is a helper for ValidationRule.Min and Max
func Bound(v float64) *float64 {
	return &v
}

// Validate checks the configuration against rules. Environment overrides
// are not consulted. All violations are reported in one error with the
// offending keys in the "keys" detail.
func (c *Config) Validate(rules ValidationRules) error {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var problems []error
	var bad []string
	for _, key := range keys {
		if err := validateValue(key, c.get(key), rules[key]); err != nil {
			problems = append(problems, err)
			bad = append(bad, key)
		}
	}

	if len(problems) == 0 {
		return nil
	}

	return mdwerror.Wrap(errors.Join(problems...), "invalid configuration").
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("keys", bad)
}

func validateValue(key string, value interface{}, rule ValidationRule) error {
	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "":
	case "string":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
		if len(rule.OneOf) > 0 && !containsFold(rule.OneOf, s) {
			return fmt.Errorf("field '%s' value '%s' is not one of %s", key, s, strings.Join(rule.OneOf, ", "))
		}
	case "int":
		f, ok := toFloat(value)
		if !ok || f != float64(int64(f)) {
			return fmt.Errorf("field '%s' must be an integer, got %v", key, value)
		}
	case "float":
		if _, ok := toFloat(value); !ok {
			return fmt.Errorf("field '%s' must be a number, got %T", key, value)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", rule.Type)
	}

	if f, ok := toFloat(value); ok {
		if rule.Min != nil && f < *rule.Min {
			return fmt.Errorf("field '%s' value %g is less than minimum %g", key, f, *rule.Min)
		}
		if rule.Max != nil && f > *rule.Max {
			return fmt.Errorf("field '%s' value %g is greater than maximum %g", key, f, *rule.Max)
		}
	}

	return nil
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
