package ir

// Schema is a complete set of declarations to generate, as produced by a
// provider.
type Schema struct {
	// Package is the source Go package information.
	Package PackageInfo

	// JavaPackage is the target Java package for generated declarations.
	JavaPackage string

	// Decls contains the top-level declarations. Providers emit them in
	// dependency order as a convenience, but generators must not rely on
	// ordering for correctness.
	Decls []Decl

	// Warnings contains non-fatal issues encountered during extraction.
	Warnings []Warning
}

// AddDecl appends a declaration to the schema.
func (s *Schema) AddDecl(d Decl) {
	s.Decls = append(s.Decls, d)
}

// AddWarning appends a warning to the schema.
func (s *Schema) AddWarning(w Warning) {
	s.Warnings = append(s.Warnings, w)
}

// FindDecl looks up a declaration by simple name. Returns nil if not found.
func (s *Schema) FindDecl(name string) Decl {
	for _, d := range s.Decls {
		if d.DeclName().Name == name {
			return d
		}
	}
	return nil
}
