package ir

// DeclKind identifies the category of a top-level declaration.
type DeclKind int

const (
	DeclClass DeclKind = iota
	DeclInterface
	DeclEnum
)

// String returns the string representation of the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case DeclClass:
		return "Class"
	case DeclInterface:
		return "Interface"
	case DeclEnum:
		return "Enum"
	default:
		return "Unknown"
	}
}

// Decl is a top-level Java declaration produced by a provider.
type Decl interface {
	// DeclKind returns the declaration kind for type switching.
	DeclKind() DeclKind

	// DeclName returns the declaration's identifier.
	DeclName() JavaIdentifier

	// Doc returns associated documentation.
	Doc() Documentation

	// Src returns the originating Go source location.
	Src() Source
}

// ClassDecl represents a Java class (or interface) declaration.
type ClassDecl struct {
	// Name is the type identifier.
	Name JavaIdentifier

	// Interface selects "interface" instead of "class".
	Interface bool

	// TypeParams contains the generic type parameter declarations, in
	// source order.
	TypeParams []*TypeVariableDecl

	// Fields contains the declared fields.
	Fields []FieldDecl

	// Implements contains implemented interface references.
	Implements []TypeRef

	// Documentation for this type.
	Documentation Documentation

	// Source location in Go code.
	Source Source
}

// DeclKind returns DeclClass or DeclInterface.
func (d *ClassDecl) DeclKind() DeclKind {
	if d.Interface {
		return DeclInterface
	}
	return DeclClass
}

// DeclName returns the class's identifier.
func (d *ClassDecl) DeclName() JavaIdentifier { return d.Name }

// Doc returns the class's documentation.
func (d *ClassDecl) Doc() Documentation { return d.Documentation }

// Src returns the class's source location.
func (d *ClassDecl) Src() Source { return d.Source }

// FieldDecl represents a single field within a class.
type FieldDecl struct {
	// Name is the field name.
	Name string

	// Type is the field's type reference.
	Type TypeRef

	// Annotations are emitted before the type, in order.
	Annotations []AnnotationRef

	// Final marks the field final.
	Final bool

	// Documentation for this field.
	Documentation Documentation
}

// EnumDecl represents a Java enum declaration.
type EnumDecl struct {
	// Name is the type identifier.
	Name JavaIdentifier

	// Constants contains the enum constants in declaration order.
	Constants []EnumConstant

	// Documentation for this type.
	Documentation Documentation

	// Source location in Go code.
	Source Source
}

// EnumConstant is a single enum constant.
type EnumConstant struct {
	// Name is the constant identifier.
	Name string

	// Value is the constant's source value, if known. Rendered as a
	// comment next to the constant.
	Value string

	// Documentation for this constant.
	Documentation Documentation
}

// DeclKind returns DeclEnum.
func (d *EnumDecl) DeclKind() DeclKind { return DeclEnum }

// DeclName returns the enum's identifier.
func (d *EnumDecl) DeclName() JavaIdentifier { return d.Name }

// Doc returns the enum's documentation.
func (d *EnumDecl) Doc() Documentation { return d.Documentation }

// Src returns the enum's source location.
func (d *EnumDecl) Src() Source { return d.Source }
