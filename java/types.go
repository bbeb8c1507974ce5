package java

import (
	"context"

	"github.com/javagen-io/javagen/ir"
	"github.com/javagen-io/javagen/sink"
)

// Generator transforms ir declarations into target source code.
type Generator interface {
	// Name returns the generator's identifier (e.g., "java").
	Name() string

	// Generate produces source files for the given schema.
	Generate(ctx context.Context, schema *ir.Schema, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures generation behavior.
type GenerateOptions struct {
	// Sink receives generated output files.
	Sink sink.OutputSink

	// Config contains Java-specific configuration.
	Config Config
}

// GenerateResult contains generation output metadata.
type GenerateResult struct {
	// Files lists all files that were written.
	Files []OutputFile

	// DeclsGenerated is the count of declarations successfully generated.
	DeclsGenerated int

	// Warnings contains non-fatal issues, including those carried over
	// from the provider.
	Warnings []ir.Warning
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the relative path of the generated file.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// Config contains Java emission options.
type Config struct {
	// Package is the Java package declared at the top of each file.
	// Overrides Schema.JavaPackage when set.
	Package string

	// Indent is the indentation unit. Defaults to two spaces.
	Indent string

	// EmitComments includes Javadoc derived from Go doc comments.
	EmitComments bool

	// FieldModifier is emitted before each field, e.g. "public".
	// Defaults to "public".
	FieldModifier string

	// Frontmatter is literal content placed after the package statement
	// in every generated file.
	Frontmatter string
}

// withDefaults returns a copy of the config with defaults applied.
func (c Config) withDefaults() Config {
	if c.Indent == "" {
		c.Indent = "  "
	}
	if c.FieldModifier == "" {
		c.FieldModifier = "public"
	}
	return c
}
