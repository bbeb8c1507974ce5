package ir

import (
	"hash/fnv"
	"strings"
)

// Sink receives ordered fragments of rendered Java source. A sink may track
// indentation and other formatting state; this package never inspects that
// state, it only issues writes. A sink is a sequential resource: a single
// emission must not be interleaved with another on the same sink.
type Sink interface {
	// WriteLiteral appends literal text, honoring the sink's current
	// indentation state.
	WriteLiteral(text string) error

	// Emit writes a nested emittable value.
	Emit(e Emittable) error
}

// Emittable is a value that can render itself into a Sink.
type Emittable interface {
	EmitTo(s Sink) error
}

// RefKind identifies the category of a type reference.
type RefKind int

const (
	KindClass RefKind = iota // Named reference type
	KindParameterized
	KindArray
	KindPrimitive
	KindTypeVariable
)

// String returns the string representation of the reference kind.
func (k RefKind) String() string {
	switch k {
	case KindClass:
		return "Class"
	case KindParameterized:
		return "Parameterized"
	case KindArray:
		return "Array"
	case KindPrimitive:
		return "Primitive"
	case KindTypeVariable:
		return "TypeVariable"
	default:
		return "Unknown"
	}
}

// TypeRef is a reference to a Java type: anything that can appear where a
// type is used, such as a field type, a type argument, or a bound.
type TypeRef interface {
	Emittable

	// Kind returns the reference kind for type switching.
	Kind() RefKind

	// IsPrimitive reports whether the reference is a Java primitive.
	// void is not considered primitive here; see IsVoid.
	IsPrimitive() bool

	// IsVoid reports whether the reference is the no-value type.
	IsVoid() bool

	// String returns the canonical rendering: exactly what EmitTo would
	// produce into a sink with no ambient indentation.
	String() string
}

// TypeEqual reports whether two type references are structurally equal.
// Equality is defined by canonical rendering: two references that render
// identically denote the same type.
func TypeEqual(a, b TypeRef) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}

// HashType returns a stable hash of a type reference, consistent with
// TypeEqual: equal references hash identically.
func HashType(t TypeRef) uint64 {
	h := fnv.New64a()
	if t != nil {
		h.Write([]byte(t.String()))
	}
	return h.Sum64()
}

// stringSink renders emittables into a strings.Builder with no ambient
// indentation. It backs the String methods in this package.
type stringSink struct {
	sb *strings.Builder
}

func (s stringSink) WriteLiteral(text string) error {
	s.sb.WriteString(text)
	return nil
}

func (s stringSink) Emit(e Emittable) error {
	return e.EmitTo(s)
}

// render runs an emission against an indentation-free sink. Emission of a
// validated value into a strings.Builder cannot fail.
func render(e Emittable) string {
	var sb strings.Builder
	_ = e.EmitTo(stringSink{sb: &sb})
	return sb.String()
}
