// ABOUTME: ValidationError type carrying field-path-keyed violations.
// ABOUTME: Produced by the record validators; rendered by CLI/MCP callers.
package schema

import (
	"fmt"
	"strings"
)

// Violation is a single failed invariant at a field path.
type Violation struct {
	Path    string
	Message string
}

// ValidationError reports every invariant a candidate record violated.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Path, v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether a violation was recorded at the given field path.
func (e *ValidationError) Has(path string) bool {
	for _, v := range e.Violations {
		if v.Path == path {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(path, message string) {
	e.Violations = append(e.Violations, Violation{Path: path, Message: message})
}

// orNil collapses an empty error to nil so callers can return it directly.
func (e *ValidationError) orNil() *ValidationError {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}
