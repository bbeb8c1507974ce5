// Package javagen generates Java source from Go type definitions. Types are
// extracted either by source analysis (the semantic path, full generics
// support) or runtime reflection, converted to the immutable ir model, and
// emitted as one .java file per declaration.
package javagen

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the configuration for code generation.
type Config struct {
	// OutDir is the directory where generated files will be written.
	OutDir string

	// Provider selects the type extraction strategy.
	// "source" (default) uses go/packages for full type info including
	// generics, enums and comments; "reflection" uses runtime reflection.
	Provider string `validate:"omitempty,oneof=source reflection"`

	// Packages are the Go package patterns to analyze with the source
	// provider, e.g. []string{"github.com/myorg/myapp/api"}.
	Packages []string

	// RootTypes restricts extraction to the named types and everything
	// they reference. Empty means all exported types.
	RootTypes []string

	// JavaPackage is the package declared in generated files,
	// e.g. "com.example.api". Empty emits default-package files.
	JavaPackage string `validate:"omitempty,printascii,excludesall= "`

	// PreserveComments controls whether Go doc comments become Javadoc.
	// Supported values: "default" (preserve) and "none".
	PreserveComments string `validate:"omitempty,oneof=default none"`

	// FieldModifier is the access modifier emitted before fields.
	FieldModifier string `validate:"omitempty,oneof=public protected private"`

	// Indent is the indentation unit for generated files.
	Indent string

	// Frontmatter is literal content placed after the package statement
	// in every generated file, e.g. an import block.
	Frontmatter string
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration against its declared constraints.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// applyConfigDefaults returns a copy of cfg with defaults applied. The
// input is never mutated.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg

	if result.Provider == "" {
		result.Provider = "source"
	}
	if result.PreserveComments == "" {
		result.PreserveComments = "default"
	}
	if result.FieldModifier == "" {
		result.FieldModifier = "public"
	}
	if result.Indent == "" {
		result.Indent = "  "
	}

	return &result
}
