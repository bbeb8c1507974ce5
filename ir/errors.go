package ir

import "fmt"

// InvalidNameError reports an empty name where a name is required.
type InvalidNameError struct {
	// What describes the entity being named, e.g. "type variable".
	What string
}

// Error implements error.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s name must not be empty", e.What)
}

// InvalidBoundError reports a bound that is a primitive type or void.
// Bounds must be reference types.
type InvalidBoundError struct {
	// TypeVar is the name of the type variable being declared.
	TypeVar string

	// Bound is the offending bound. Nil when a nil bound was supplied.
	Bound TypeRef
}

// Error implements error.
func (e *InvalidBoundError) Error() string {
	if e.Bound == nil {
		return fmt.Sprintf("invalid bound for type variable %s: nil", e.TypeVar)
	}
	return fmt.Sprintf("invalid bound for type variable %s: %s", e.TypeVar, e.Bound)
}
