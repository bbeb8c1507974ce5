package javagen

import (
	"context"
	"fmt"
	"reflect"

	"github.com/javagen-io/javagen/ir"
	"github.com/javagen-io/javagen/java"
	"github.com/javagen-io/javagen/provider"
	"github.com/javagen-io/javagen/sink"
)

// Generator provides a fluent API for code generation.
// Create with FromPackages() or FromTypes() and configure with method
// chaining.
//
// Example:
//
//	javagen.FromPackages("github.com/myorg/myapp/api").
//	    JavaPackage("com.myorg.api").
//	    ToDir("./generated/java")
type Generator struct {
	types []any // for reflection-based generation
	cfg   Config
}

// FromPackages creates a Generator that analyzes Go source packages.
// This is the semantic path and the default.
func FromPackages(patterns ...string) *Generator {
	return &Generator{cfg: Config{Packages: patterns, Provider: "source"}}
}

// FromTypes creates a Generator for reflection-based generation. Pass zero
// values of the types to generate Java for.
//
// Example:
//
//	javagen.FromTypes(User{}, Order{}).ToDir("./generated/java")
func FromTypes(values ...any) *Generator {
	return &Generator{types: values, cfg: Config{Provider: "reflection"}}
}

// JavaPackage sets the package declared in generated files.
func (g *Generator) JavaPackage(pkg string) *Generator {
	g.cfg.JavaPackage = pkg
	return g
}

// RootTypes restricts source-based extraction to the named types.
func (g *Generator) RootTypes(names ...string) *Generator {
	g.cfg.RootTypes = append(g.cfg.RootTypes, names...)
	return g
}

// PreserveComments controls whether Go doc comments become Javadoc.
// Valid values: "default", "none".
func (g *Generator) PreserveComments(mode string) *Generator {
	g.cfg.PreserveComments = mode
	return g
}

// FieldModifier sets the access modifier emitted before fields.
func (g *Generator) FieldModifier(mod string) *Generator {
	g.cfg.FieldModifier = mod
	return g
}

// Frontmatter adds content to the top of every generated file, after the
// package statement. Useful for a shared import block.
func (g *Generator) Frontmatter(content string) *Generator {
	g.cfg.Frontmatter = content
	return g
}

// Indent sets the indentation unit for generated files.
func (g *Generator) Indent(unit string) *Generator {
	g.cfg.Indent = unit
	return g
}

// ToDir generates files into the given directory. This is a terminal
// operation.
func (g *Generator) ToDir(dir string) (*java.GenerateResult, error) {
	g.cfg.OutDir = dir
	return g.ToSink(sink.NewFilesystemSink(dir))
}

// ToSink generates files into the given sink. This is a terminal operation.
func (g *Generator) ToSink(out sink.OutputSink) (*java.GenerateResult, error) {
	return Generate(context.Background(), g.types, &g.cfg, out)
}

// Generate runs the full pipeline: build a schema with the configured
// provider, then emit Java files through the sink.
func Generate(ctx context.Context, typeValues []any, cfg *Config, out sink.OutputSink) (*java.GenerateResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = applyConfigDefaults(cfg)

	var schema *ir.Schema
	var err error

	switch cfg.Provider {
	case "source":
		schema, err = buildSchemaFromSource(ctx, cfg)
	case "reflection":
		schema, err = buildSchemaFromReflection(ctx, typeValues)
	default:
		return nil, fmt.Errorf("unknown provider: %q (expected \"source\" or \"reflection\")", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}

	schema.JavaPackage = cfg.JavaPackage

	gen := &java.JavaGenerator{}
	result, err := gen.Generate(ctx, schema, java.GenerateOptions{
		Sink: out,
		Config: java.Config{
			Package:       cfg.JavaPackage,
			Indent:        cfg.Indent,
			EmitComments:  cfg.PreserveComments != "none",
			FieldModifier: cfg.FieldModifier,
			Frontmatter:   cfg.Frontmatter,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate Java: %w", err)
	}
	return result, nil
}

// buildSchemaFromSource uses the source provider to extract types.
func buildSchemaFromSource(ctx context.Context, cfg *Config) (*ir.Schema, error) {
	if len(cfg.Packages) == 0 {
		return nil, fmt.Errorf("packages is required when using source provider")
	}
	p := &provider.SourceProvider{}
	return p.BuildSchema(ctx, provider.SourceInputOptions{
		Packages:  cfg.Packages,
		RootTypes: cfg.RootTypes,
	})
}

// buildSchemaFromReflection uses the reflection provider to extract types.
func buildSchemaFromReflection(ctx context.Context, typeValues []any) (*ir.Schema, error) {
	if len(typeValues) == 0 {
		return nil, fmt.Errorf("at least one type value is required when using reflection provider")
	}
	rootTypes := make([]reflect.Type, 0, len(typeValues))
	for _, v := range typeValues {
		t := reflect.TypeOf(v)
		if t == nil {
			return nil, fmt.Errorf("untyped nil is not a valid root type")
		}
		rootTypes = append(rootTypes, t)
	}
	p := &provider.ReflectionProvider{}
	return p.BuildSchema(ctx, provider.ReflectionInputOptions{RootTypes: rootTypes})
}
