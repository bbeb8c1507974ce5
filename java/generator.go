package java

import (
	"context"
	"fmt"
	"strings"

	"github.com/javagen-io/javagen/ir"
)

// JavaGenerator emits one .java file per top-level declaration.
type JavaGenerator struct{}

// Name returns "java".
func (g *JavaGenerator) Name() string { return "java" }

// Generate renders every declaration in the schema and writes the files
// through the configured sink.
func (g *JavaGenerator) Generate(ctx context.Context, schema *ir.Schema, opts GenerateOptions) (*GenerateResult, error) {
	if opts.Sink == nil {
		return nil, fmt.Errorf("sink is required")
	}
	cfg := opts.Config.withDefaults()

	javaPackage := cfg.Package
	if javaPackage == "" {
		javaPackage = schema.JavaPackage
	}

	emitter := NewEmitter(cfg)
	result := &GenerateResult{
		Warnings: append([]ir.Warning(nil), schema.Warnings...),
	}

	for _, decl := range schema.Decls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		w := NewCodeWriter(cfg.Indent)
		if javaPackage != "" {
			if err := w.WriteLiteral("package " + javaPackage + ";\n\n"); err != nil {
				return nil, err
			}
		}
		if cfg.Frontmatter != "" {
			if err := w.WriteLiteral(cfg.Frontmatter + "\n\n"); err != nil {
				return nil, err
			}
		}
		if err := emitter.EmitDecl(w, decl); err != nil {
			return nil, fmt.Errorf("failed to emit %s: %w", decl.DeclName().Name, err)
		}

		path := filePath(javaPackage, decl.DeclName().Name)
		content := w.Bytes()
		if err := opts.Sink.WriteFile(ctx, path, content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}

		result.Files = append(result.Files, OutputFile{Path: path, Size: int64(len(content))})
		result.DeclsGenerated++
	}

	return result, nil
}

// filePath maps a Java package and simple name to a source file path.
func filePath(javaPackage, name string) string {
	file := escapeReservedWord(name) + ".java"
	if javaPackage == "" {
		return file
	}
	return strings.ReplaceAll(javaPackage, ".", "/") + "/" + file
}
