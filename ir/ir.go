// Package ir defines the immutable intermediate representation for Java
// declarations. Providers build these values from Go type information and the
// java package renders them into source text. Every value in this package is
// immutable after construction and safe to share across goroutines.
package ir

// JavaIdentifier names a top-level Java declaration with package context.
type JavaIdentifier struct {
	// Name is the simple type name, e.g. "User" or "Response_User".
	Name string

	// Package is the Java package, e.g. "com.example.api".
	// Empty for package-less (default package) declarations.
	Package string
}

// IsZero returns true if the identifier is empty.
func (id JavaIdentifier) IsZero() bool {
	return id.Name == "" && id.Package == ""
}

// Qualified returns the dotted fully qualified name.
func (id JavaIdentifier) Qualified() string {
	if id.Package == "" {
		return id.Name
	}
	return id.Package + "." + id.Name
}

// Documentation holds doc comments extracted from Go source.
type Documentation struct {
	// Summary is the first sentence, suitable for one-line Javadoc.
	Summary string

	// Body is the complete documentation text, including the summary.
	Body string

	// Deprecated is non-nil if the symbol is marked deprecated.
	// The string value is the deprecation message (may be empty).
	Deprecated *string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Summary == "" && d.Body == "" && d.Deprecated == nil
}

// Source represents a Go source location.
type Source struct {
	File   string
	Line   int
	Column int
}

// IsZero returns true if the source location is empty.
func (s Source) IsZero() bool {
	return s.File == "" && s.Line == 0 && s.Column == 0
}

// Warning represents a non-fatal issue encountered while building a schema.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// TypeName is the type that triggered the warning, if applicable.
	TypeName string
}

// PackageInfo describes the Go package a schema was extracted from.
type PackageInfo struct {
	// Path is the Go import path.
	Path string

	// Name is the Go package name.
	Name string
}

// IsZero returns true if the package info is empty.
func (p PackageInfo) IsZero() bool {
	return p.Path == "" && p.Name == ""
}
