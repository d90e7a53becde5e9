package splat

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorMap is a recursive mapping from field name to what is wrong with that
// field. A value is either a leaf (*FieldError) or a nested ErrorMap for a
// compound field; list and map fields nest their element errors keyed by
// index or map key. A nil or empty map means the value validated cleanly.
//
// ErrorMap implements error so nested maps need no separate wrapper type.
type ErrorMap map[string]error

// Error renders the map as "field: problem" pairs with nested maps in
// braces, fields in sorted order for stable output.
func (m ErrorMap) Error() string {
	if len(m) == 0 {
		return "no validation errors"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		if child, ok := m[k].(ErrorMap); ok {
			b.WriteString("{")
			b.WriteString(child.Error())
			b.WriteString("}")
		} else {
			b.WriteString(m[k].Error())
		}
	}
	return b.String()
}

// merge stores child under field if child holds any errors.
func (m ErrorMap) merge(field string, child ErrorMap) {
	if len(child) > 0 {
		m[field] = child
	}
}

// FieldError is a leaf validation error: what rule the field broke and the
// offending value, so the host can localize the problem without re-deriving
// it from the state tree.
type FieldError struct {
	Reason string
	Value  any
}

func newFieldError(reason string, value any) *FieldError {
	return &FieldError{Reason: reason, Value: value}
}

func (e *FieldError) Error() string {
	if e.Value == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s (got %v)", e.Reason, e.Value)
}

// InvalidStateError is returned by the display loop when it is asked to
// render a State that fails validation. The rendering loop stops; the host
// decides whether to repair the state and restart.
type InvalidStateError struct {
	Errors ErrorMap
}

func (e *InvalidStateError) Error() string {
	return "splat: runtime state is invalid: " + e.Errors.Error()
}

func (e *InvalidStateError) Unwrap() error {
	return e.Errors
}
