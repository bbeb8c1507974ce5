package ir

import "hash/fnv"

// TypeVariableRef is the use of a named type variable: a bare name, plus
// optional annotations, appearing wherever a type is referenced. It carries
// no bound information; bounds belong to the declaration site. Whether the
// name is actually in scope is the caller's concern.
type TypeVariableRef struct {
	name        string
	annotations []AnnotationRef
}

// TypeVar returns a reference to the type variable named name.
func TypeVar(name string) (*TypeVariableRef, error) {
	if name == "" {
		return nil, &InvalidNameError{What: "type variable"}
	}
	return &TypeVariableRef{name: name}, nil
}

// Name returns the type variable's name.
func (v *TypeVariableRef) Name() string { return v.name }

// Annotations returns a copy of the annotation list.
func (v *TypeVariableRef) Annotations() []AnnotationRef {
	return append([]AnnotationRef(nil), v.annotations...)
}

// Annotated returns a new reference with the annotation list replaced
// wholesale. The receiver is unchanged.
func (v *TypeVariableRef) Annotated(annotations ...AnnotationRef) *TypeVariableRef {
	return &TypeVariableRef{
		name:        v.name,
		annotations: append([]AnnotationRef(nil), annotations...),
	}
}

// WithoutAnnotations returns a new reference with an empty annotation list.
func (v *TypeVariableRef) WithoutAnnotations() *TypeVariableRef {
	return &TypeVariableRef{name: v.name}
}

// Kind returns KindTypeVariable.
func (v *TypeVariableRef) Kind() RefKind { return KindTypeVariable }

// IsPrimitive returns false.
func (v *TypeVariableRef) IsPrimitive() bool { return false }

// IsVoid returns false.
func (v *TypeVariableRef) IsVoid() bool { return false }

// EmitTo writes the annotations in order, each followed by a space, then the
// name. Nothing trails the name.
func (v *TypeVariableRef) EmitTo(s Sink) error {
	if err := emitAnnotationsInline(s, v.annotations); err != nil {
		return err
	}
	return s.WriteLiteral(v.name)
}

// String returns the rendered reference, e.g. "T" or "@Nullable T".
func (v *TypeVariableRef) String() string { return render(v) }

// Equal reports structural equality: same name and same annotation sequence.
func (v *TypeVariableRef) Equal(other *TypeVariableRef) bool {
	if other == nil {
		return false
	}
	return v.name == other.name && annotationsEqual(v.annotations, other.annotations)
}

// TypeVariableDecl is the declaration of a type variable: the site that
// introduces the name, with its canonical upper bounds and annotations.
type TypeVariableDecl struct {
	name        string
	bounds      []TypeRef
	annotations []AnnotationRef
}

// CanonicalBounds returns the canonical form of a bound list: every
// occurrence structurally equal to java.lang.Object is removed, relative
// order of the remaining bounds is preserved, and duplicates are kept.
// The function is idempotent and performs no validation.
func CanonicalBounds(bounds []TypeRef) []TypeRef {
	object := Object()
	out := make([]TypeRef, 0, len(bounds))
	for _, b := range bounds {
		if b != nil && TypeEqual(b, object) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// newTypeVarDecl validates and constructs a declaration. bounds must already
// be canonical; the slice is owned by the new value.
func newTypeVarDecl(name string, bounds []TypeRef, annotations []AnnotationRef) (*TypeVariableDecl, error) {
	if name == "" {
		return nil, &InvalidNameError{What: "type variable"}
	}
	for _, b := range bounds {
		if b == nil || b.IsPrimitive() || b.IsVoid() {
			return nil, &InvalidBoundError{TypeVar: name, Bound: b}
		}
	}
	return &TypeVariableDecl{name: name, bounds: bounds, annotations: annotations}, nil
}

// TypeVarDecl returns the declaration of a type variable named name with the
// given upper bounds. The bound list is canonicalized before storage: the
// implicit java.lang.Object bound is stripped. Bounds must be reference
// types; a primitive or void bound fails with *InvalidBoundError.
func TypeVarDecl(name string, bounds ...TypeRef) (*TypeVariableDecl, error) {
	return newTypeVarDecl(name, CanonicalBounds(bounds), nil)
}

// Name returns the type variable's name.
func (d *TypeVariableDecl) Name() string { return d.name }

// Bounds returns a copy of the canonical bound list.
func (d *TypeVariableDecl) Bounds() []TypeRef {
	return append([]TypeRef(nil), d.bounds...)
}

// Annotations returns a copy of the annotation list.
func (d *TypeVariableDecl) Annotations() []AnnotationRef {
	return append([]AnnotationRef(nil), d.annotations...)
}

// Ref returns the reference form of the declared variable: the bare name
// with no annotations and no bounds.
func (d *TypeVariableDecl) Ref() *TypeVariableRef {
	return &TypeVariableRef{name: d.name}
}

// Annotated returns a new declaration with the annotation list replaced
// wholesale. Name and bounds are unchanged; the receiver is unaffected.
func (d *TypeVariableDecl) Annotated(annotations ...AnnotationRef) *TypeVariableDecl {
	return &TypeVariableDecl{
		name:        d.name,
		bounds:      d.bounds,
		annotations: append([]AnnotationRef(nil), annotations...),
	}
}

// WithoutAnnotations returns a new declaration with an empty annotation list.
func (d *TypeVariableDecl) WithoutAnnotations() *TypeVariableDecl {
	return &TypeVariableDecl{name: d.name, bounds: d.bounds}
}

// WithBounds returns a new declaration whose bound list is the current
// bounds followed by the supplied bounds, re-canonicalized as a whole: a
// newly added java.lang.Object is elided again and nothing already implicit
// resurfaces. Name and annotations are unchanged.
func (d *TypeVariableDecl) WithBounds(bounds ...TypeRef) (*TypeVariableDecl, error) {
	merged := make([]TypeRef, 0, len(d.bounds)+len(bounds))
	merged = append(merged, d.bounds...)
	merged = append(merged, bounds...)
	return newTypeVarDecl(d.name, CanonicalBounds(merged), d.annotations)
}

// EmitTo writes the annotations in order, then the name, then the bound
// list: " extends " before the first bound and " & " before each subsequent
// bound. With no explicit bounds nothing follows the name; the implicit
// java.lang.Object bound is never written.
func (d *TypeVariableDecl) EmitTo(s Sink) error {
	if err := emitAnnotationsInline(s, d.annotations); err != nil {
		return err
	}
	if err := s.WriteLiteral(d.name); err != nil {
		return err
	}
	for i, b := range d.bounds {
		sep := " & "
		if i == 0 {
			sep = " extends "
		}
		if err := s.WriteLiteral(sep); err != nil {
			return err
		}
		if err := s.Emit(b); err != nil {
			return err
		}
	}
	return nil
}

// String returns the rendered declaration, e.g.
// "T extends CharSequence & Comparable<T>".
func (d *TypeVariableDecl) String() string { return render(d) }

// Equal reports structural equality: name, bound sequence, and annotation
// sequence must all match.
func (d *TypeVariableDecl) Equal(other *TypeVariableDecl) bool {
	if other == nil {
		return false
	}
	if d.name != other.name || len(d.bounds) != len(other.bounds) {
		return false
	}
	for i := range d.bounds {
		if !TypeEqual(d.bounds[i], other.bounds[i]) {
			return false
		}
	}
	return annotationsEqual(d.annotations, other.annotations)
}

// Hash returns a stable hash consistent with Equal, covering name, bound
// sequence, and annotation sequence.
func (d *TypeVariableDecl) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(d.name))
	for _, b := range d.bounds {
		h.Write([]byte{0})
		h.Write([]byte(b.String()))
	}
	for _, a := range d.annotations {
		h.Write([]byte{1})
		h.Write([]byte(a.String()))
	}
	return h.Sum64()
}

// emitAnnotationsInline writes each annotation followed by a single space.
func emitAnnotationsInline(s Sink, annotations []AnnotationRef) error {
	for _, a := range annotations {
		if err := s.Emit(a); err != nil {
			return err
		}
		if err := s.WriteLiteral(" "); err != nil {
			return err
		}
	}
	return nil
}
