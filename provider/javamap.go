// Package provider implements input providers that extract Go type
// information and convert it into the ir model. The semantic provider
// analyzes source through go/packages; the reflection provider works from
// runtime types. Both produce the same canonical ir values.
package provider

import "github.com/javagen-io/javagen/ir"

// Well-known Java references shared by both providers.

func stringRef() ir.TypeRef  { return ir.Class("", "String") }
func listRef() *ir.ClassRef  { return ir.Class("java.util", "List") }
func mapRef() *ir.ClassRef   { return ir.Class("java.util", "Map") }
func instantRef() ir.TypeRef { return ir.Class("java.time", "Instant") }
func durationRef() ir.TypeRef {
	return ir.Class("java.time", "Duration")
}

func nullableAnnotation() ir.AnnotationRef {
	return ir.Annotation(ir.Class("", "Nullable"))
}

// boxed maps a primitive reference to its java.lang wrapper so it can be
// used as a type argument. Reference types pass through unchanged.
func boxed(t ir.TypeRef) ir.TypeRef {
	p, ok := t.(*ir.PrimitiveRef)
	if !ok {
		return t
	}
	switch p.PrimitiveKind() {
	case ir.PrimitiveBoolean:
		return ir.Class("", "Boolean")
	case ir.PrimitiveByte:
		return ir.Class("", "Byte")
	case ir.PrimitiveShort:
		return ir.Class("", "Short")
	case ir.PrimitiveInt:
		return ir.Class("", "Integer")
	case ir.PrimitiveLong:
		return ir.Class("", "Long")
	case ir.PrimitiveChar:
		return ir.Class("", "Character")
	case ir.PrimitiveFloat:
		return ir.Class("", "Float")
	case ir.PrimitiveDouble:
		return ir.Class("", "Double")
	case ir.PrimitiveVoid:
		return ir.Class("", "Void")
	default:
		return t
	}
}
