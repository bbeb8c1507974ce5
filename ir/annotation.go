package ir

// AnnotationRef is the use of a Java annotation, e.g. @Nullable or
// @Size(max = 10). Arguments are preformatted member snippets kept in
// source order.
type AnnotationRef struct {
	typ  TypeRef
	args []string
}

// Annotation returns an annotation use of the given type with optional
// preformatted arguments, e.g. Annotation(Class("", "Size"), "max = 10").
func Annotation(typ TypeRef, args ...string) AnnotationRef {
	return AnnotationRef{typ: typ, args: append([]string(nil), args...)}
}

// Type returns the annotation type.
func (a AnnotationRef) Type() TypeRef { return a.typ }

// Args returns a copy of the argument snippets.
func (a AnnotationRef) Args() []string {
	return append([]string(nil), a.args...)
}

// EmitTo writes "@", the annotation type, and the parenthesized arguments
// when any are present.
func (a AnnotationRef) EmitTo(s Sink) error {
	if err := s.WriteLiteral("@"); err != nil {
		return err
	}
	if err := s.Emit(a.typ); err != nil {
		return err
	}
	if len(a.args) == 0 {
		return nil
	}
	if err := s.WriteLiteral("("); err != nil {
		return err
	}
	for i, arg := range a.args {
		if i > 0 {
			if err := s.WriteLiteral(", "); err != nil {
				return err
			}
		}
		if err := s.WriteLiteral(arg); err != nil {
			return err
		}
	}
	return s.WriteLiteral(")")
}

// String returns the rendered annotation, e.g. "@Nullable".
func (a AnnotationRef) String() string { return render(a) }

// Equal reports structural equality with another annotation.
func (a AnnotationRef) Equal(other AnnotationRef) bool {
	return a.String() == other.String()
}

// annotationsEqual compares two annotation lists as ordered sequences.
func annotationsEqual(a, b []AnnotationRef) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
