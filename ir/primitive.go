package ir

// PrimitiveKind identifies a Java primitive type, plus void.
type PrimitiveKind int

const (
	PrimitiveBoolean PrimitiveKind = iota
	PrimitiveByte
	PrimitiveShort
	PrimitiveInt
	PrimitiveLong
	PrimitiveChar
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveVoid // The no-value type; not a usable value type.
)

// keyword returns the Java keyword for the primitive kind.
func (k PrimitiveKind) keyword() string {
	switch k {
	case PrimitiveBoolean:
		return "boolean"
	case PrimitiveByte:
		return "byte"
	case PrimitiveShort:
		return "short"
	case PrimitiveInt:
		return "int"
	case PrimitiveLong:
		return "long"
	case PrimitiveChar:
		return "char"
	case PrimitiveFloat:
		return "float"
	case PrimitiveDouble:
		return "double"
	case PrimitiveVoid:
		return "void"
	default:
		return "unknown"
	}
}

// PrimitiveRef is a reference to a Java primitive type or void.
type PrimitiveRef struct {
	kind PrimitiveKind
}

// Primitive returns a reference to the given primitive kind.
func Primitive(kind PrimitiveKind) *PrimitiveRef {
	return &PrimitiveRef{kind: kind}
}

// Convenience constructors for the full primitive set.

// Boolean returns the boolean primitive reference.
func Boolean() *PrimitiveRef { return Primitive(PrimitiveBoolean) }

// Byte returns the byte primitive reference.
func Byte() *PrimitiveRef { return Primitive(PrimitiveByte) }

// Short returns the short primitive reference.
func Short() *PrimitiveRef { return Primitive(PrimitiveShort) }

// Int returns the int primitive reference.
func Int() *PrimitiveRef { return Primitive(PrimitiveInt) }

// Long returns the long primitive reference.
func Long() *PrimitiveRef { return Primitive(PrimitiveLong) }

// Char returns the char primitive reference.
func Char() *PrimitiveRef { return Primitive(PrimitiveChar) }

// Float returns the float primitive reference.
func Float() *PrimitiveRef { return Primitive(PrimitiveFloat) }

// Double returns the double primitive reference.
func Double() *PrimitiveRef { return Primitive(PrimitiveDouble) }

// Void returns the no-value type reference.
func Void() *PrimitiveRef { return Primitive(PrimitiveVoid) }

// PrimitiveKind returns the primitive kind.
func (p *PrimitiveRef) PrimitiveKind() PrimitiveKind { return p.kind }

// Kind returns KindPrimitive.
func (p *PrimitiveRef) Kind() RefKind { return KindPrimitive }

// IsPrimitive reports whether the reference is a value-carrying primitive.
// void is excluded: it is the no-value type, not a primitive value type.
func (p *PrimitiveRef) IsPrimitive() bool { return p.kind != PrimitiveVoid }

// IsVoid reports whether the reference is void.
func (p *PrimitiveRef) IsVoid() bool { return p.kind == PrimitiveVoid }

// EmitTo writes the primitive keyword.
func (p *PrimitiveRef) EmitTo(s Sink) error {
	return s.WriteLiteral(p.kind.keyword())
}

// String returns the primitive keyword.
func (p *PrimitiveRef) String() string { return p.kind.keyword() }
