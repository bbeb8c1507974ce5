package ir

// ClassRef is a reference to a named reference type. The reference renders
// exactly as constructed: a qualified name when Package is set, the bare
// simple name otherwise. Import management and name shortening are the
// responsibility of surrounding tooling, not of the model.
type ClassRef struct {
	pkg  string
	name string
}

// Class returns a reference to the named type in the given package.
// Pass an empty package for a bare simple name.
func Class(pkg, name string) *ClassRef {
	return &ClassRef{pkg: pkg, name: name}
}

// Object returns the java.lang.Object class reference: the universal
// supertype that is the implicit upper bound of every type variable.
func Object() *ClassRef {
	return &ClassRef{pkg: "java.lang", name: "Object"}
}

// Name returns the simple name.
func (c *ClassRef) Name() string { return c.name }

// Package returns the package, or "" for an unqualified reference.
func (c *ClassRef) Package() string { return c.pkg }

// Kind returns KindClass.
func (c *ClassRef) Kind() RefKind { return KindClass }

// IsPrimitive returns false.
func (c *ClassRef) IsPrimitive() bool { return false }

// IsVoid returns false.
func (c *ClassRef) IsVoid() bool { return false }

// EmitTo writes the qualified name.
func (c *ClassRef) EmitTo(s Sink) error {
	if c.pkg == "" {
		return s.WriteLiteral(c.name)
	}
	return s.WriteLiteral(c.pkg + "." + c.name)
}

// String returns the qualified name.
func (c *ClassRef) String() string { return render(c) }

// ParameterizedRef is a reference to a generic type applied to type
// arguments, e.g. Comparable<T> or Map<String, Integer>.
type ParameterizedRef struct {
	raw  *ClassRef
	args []TypeRef
}

// Parameterized returns a reference to raw applied to the given arguments.
func Parameterized(raw *ClassRef, args ...TypeRef) *ParameterizedRef {
	return &ParameterizedRef{raw: raw, args: append([]TypeRef(nil), args...)}
}

// Raw returns the raw (unapplied) class reference.
func (p *ParameterizedRef) Raw() *ClassRef { return p.raw }

// Args returns a copy of the type argument list.
func (p *ParameterizedRef) Args() []TypeRef {
	return append([]TypeRef(nil), p.args...)
}

// Kind returns KindParameterized.
func (p *ParameterizedRef) Kind() RefKind { return KindParameterized }

// IsPrimitive returns false.
func (p *ParameterizedRef) IsPrimitive() bool { return false }

// IsVoid returns false.
func (p *ParameterizedRef) IsVoid() bool { return false }

// EmitTo writes the raw name followed by the bracketed argument list.
func (p *ParameterizedRef) EmitTo(s Sink) error {
	if err := s.Emit(p.raw); err != nil {
		return err
	}
	if err := s.WriteLiteral("<"); err != nil {
		return err
	}
	for i, arg := range p.args {
		if i > 0 {
			if err := s.WriteLiteral(", "); err != nil {
				return err
			}
		}
		if err := s.Emit(arg); err != nil {
			return err
		}
	}
	return s.WriteLiteral(">")
}

// String returns the rendered reference, e.g. "Comparable<T>".
func (p *ParameterizedRef) String() string { return render(p) }

// ArrayRef is a reference to a Java array type.
type ArrayRef struct {
	elem TypeRef
}

// Array returns a reference to an array of elem.
func Array(elem TypeRef) *ArrayRef {
	return &ArrayRef{elem: elem}
}

// Elem returns the element type.
func (a *ArrayRef) Elem() TypeRef { return a.elem }

// Kind returns KindArray.
func (a *ArrayRef) Kind() RefKind { return KindArray }

// IsPrimitive returns false. Arrays are reference types even when the
// element type is primitive.
func (a *ArrayRef) IsPrimitive() bool { return false }

// IsVoid returns false.
func (a *ArrayRef) IsVoid() bool { return false }

// EmitTo writes the element type followed by "[]".
func (a *ArrayRef) EmitTo(s Sink) error {
	if err := s.Emit(a.elem); err != nil {
		return err
	}
	return s.WriteLiteral("[]")
}

// String returns the rendered reference, e.g. "String[]".
func (a *ArrayRef) String() string { return render(a) }
