package errorutil

import (
	"fmt"
	"strings"
)

// ValidationError represents a collection of validation failures
type ValidationError struct {
	Context string
	Errors  []FieldError
}

// FieldError represents a single field validation failure
type FieldError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s validation failed", e.Context)
	}

	messages := make([]string, 0, len(e.Errors))
	for _, fieldErr := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", fieldErr.Field, fieldErr.Message))
	}

	return fmt.Sprintf("%s validation failed: %s", e.Context, strings.Join(messages, "; "))
}

// ValidationBuilder accumulates field errors so a config can report every
// problem at once
type ValidationBuilder struct {
	context string
	errors  []FieldError
}

// NewValidationBuilder creates a new validation builder with context
func NewValidationBuilder(context string) *ValidationBuilder {
	return &ValidationBuilder{
		context: context,
		errors:  make([]FieldError, 0),
	}
}

// RequiredString validates that a string field is not blank
func (vb *ValidationBuilder) RequiredString(field, value string) *ValidationBuilder {
	if IsEmptyString(value) {
		vb.add(field, value, "is required")
	}
	return vb
}

// OneOf validates that value is one of the allowed options. Empty values are skipped.
func (vb *ValidationBuilder) OneOf(field, value string, options []string) *ValidationBuilder {
	if value == "" {
		return vb
	}

	for _, option := range options {
		if value == option {
			return vb
		}
	}

	vb.add(field, value, fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")))
	return vb
}

// Check records err against field when it is non-nil. Used for values whose
// validity is decided by a parser (format tags, locales, time zones).
func (vb *ValidationBuilder) Check(field string, value interface{}, err error) *ValidationBuilder {
	if err != nil {
		vb.add(field, value, err.Error())
	}
	return vb
}

// Custom allows adding custom validation with a predicate function
func (vb *ValidationBuilder) Custom(field string, value interface{}, predicate func(interface{}) bool, message string) *ValidationBuilder {
	if !predicate(value) {
		vb.add(field, value, message)
	}
	return vb
}

func (vb *ValidationBuilder) add(field string, value interface{}, message string) {
	vb.errors = append(vb.errors, FieldError{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// Build returns the validation error if any errors were collected, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if len(vb.errors) == 0 {
		return nil
	}

	return &ValidationError{
		Context: vb.context,
		Errors:  vb.errors,
	}
}

// HasErrors returns true if the builder has collected any validation errors
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.errors) > 0
}

// IsEmptyString checks if a string is empty after trimming whitespace
func IsEmptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateConfig runs validations against a fresh builder named after the config section
func ValidateConfig(configName string, validations func(*ValidationBuilder) *ValidationBuilder) error {
	vb := NewValidationBuilder(configName + " configuration")
	vb = validations(vb)
	return vb.Build()
}
