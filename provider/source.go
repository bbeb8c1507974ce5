package provider

import (
	"context"
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"
	"reflect"
	"strings"

	set "github.com/hashicorp/go-set/v3"
	"golang.org/x/tools/go/packages"

	"github.com/javagen-io/javagen/ir"
)

// SourceProvider extracts types by analyzing Go source code. It is the
// semantic path: declarations are read from go/types, so generic type
// parameters and their declared bounds are visible in declaration order.
type SourceProvider struct{}

// SourceInputOptions configures source-based type extraction.
type SourceInputOptions struct {
	// Packages are the Go package patterns to analyze.
	Packages []string

	// RootTypes are the type names to extract. If empty, all exported
	// types in the packages are extracted.
	RootTypes []string
}

// TypeVarFromTypeParam returns the reference form of a semantic type
// parameter. Only the declared name is carried; bounds belong to the
// declaration site.
func TypeVarFromTypeParam(tp *types.TypeParam) (*ir.TypeVariableRef, error) {
	return ir.TypeVar(tp.Obj().Name())
}

// TypeVarDeclFromTypeParam returns the declaration form of a semantic type
// parameter: the declared name plus the declared bounds in constraint
// order, mapped to Java references and canonicalized. Constraint forms with
// no Java equivalent (unions, comparable) are elided; each elision is
// reported as a warning so callers can see that a bound was dropped.
func TypeVarDeclFromTypeParam(tp *types.TypeParam) (*ir.TypeVariableDecl, []ir.Warning, error) {
	bounds, warnings := boundsFromConstraint(tp)
	decl, err := ir.TypeVarDecl(tp.Obj().Name(), bounds...)
	if err != nil {
		return nil, warnings, err
	}
	return decl, warnings, nil
}

// boundsFromConstraint maps a type parameter's constraint to an ordered
// bound list. The `any` constraint maps to java.lang.Object, which the
// declaration constructor elides as the implicit bound.
func boundsFromConstraint(tp *types.TypeParam) ([]ir.TypeRef, []ir.Warning) {
	c := tp.Constraint()
	if c == nil {
		return nil, nil
	}
	c = types.Unalias(c)

	if iface, ok := c.Underlying().(*types.Interface); ok && iface.Empty() {
		return []ir.TypeRef{ir.Object()}, nil
	}

	switch ct := c.(type) {
	case *types.Named:
		obj := ct.Obj()
		if obj.Pkg() == nil && obj.Name() == "comparable" {
			return nil, []ir.Warning{{
				Code:     "UNREPRESENTABLE_CONSTRAINT",
				Message:  fmt.Sprintf("type parameter %s: comparable has no Java bound equivalent; bound elided", tp.Obj().Name()),
				TypeName: tp.Obj().Name(),
			}}
		}
		return []ir.TypeRef{ir.Class("", obj.Name())}, nil

	case *types.Interface:
		var bounds []ir.TypeRef
		var warnings []ir.Warning
		for i := 0; i < ct.NumEmbeddeds(); i++ {
			embedded := types.Unalias(ct.EmbeddedType(i))
			if _, isUnion := embedded.(*types.Union); isUnion {
				warnings = append(warnings, ir.Warning{
					Code:     "UNREPRESENTABLE_CONSTRAINT",
					Message:  fmt.Sprintf("type parameter %s: union constraint has no Java bound equivalent; bound elided", tp.Obj().Name()),
					TypeName: tp.Obj().Name(),
				})
				continue
			}
			ref, err := javaTypeOf(embedded)
			if err != nil {
				warnings = append(warnings, ir.Warning{
					Code:     "UNREPRESENTABLE_CONSTRAINT",
					Message:  fmt.Sprintf("type parameter %s: %v", tp.Obj().Name(), err),
					TypeName: tp.Obj().Name(),
				})
				continue
			}
			bounds = append(bounds, boxed(ref))
		}
		return bounds, warnings
	}

	return nil, nil
}

// javaTypeOf is the semantic type-reference adapter: it maps a go/types
// type to a Java reference.
func javaTypeOf(t types.Type) (ir.TypeRef, error) {
	t = types.Unalias(t)

	switch typ := t.(type) {
	case *types.Basic:
		return basicJavaType(typ)

	case *types.Named:
		obj := typ.Obj()
		if obj.Pkg() != nil {
			if obj.Pkg().Path() == "time" && obj.Name() == "Time" {
				return instantRef(), nil
			}
			if obj.Pkg().Path() == "time" && obj.Name() == "Duration" {
				return durationRef(), nil
			}
		}
		return ir.Class("", obj.Name()), nil

	case *types.Pointer:
		elem, err := javaTypeOf(typ.Elem())
		if err != nil {
			return nil, err
		}
		return boxed(elem), nil

	case *types.Slice:
		if basic, ok := types.Unalias(typ.Elem()).(*types.Basic); ok && basic.Kind() == types.Byte {
			return ir.Array(ir.Byte()), nil
		}
		elem, err := javaTypeOf(typ.Elem())
		if err != nil {
			return nil, err
		}
		return ir.Parameterized(listRef(), boxed(elem)), nil

	case *types.Array:
		elem, err := javaTypeOf(typ.Elem())
		if err != nil {
			return nil, err
		}
		return ir.Array(elem), nil

	case *types.Map:
		key, err := javaTypeOf(typ.Key())
		if err != nil {
			return nil, err
		}
		value, err := javaTypeOf(typ.Elem())
		if err != nil {
			return nil, err
		}
		return ir.Parameterized(mapRef(), boxed(key), boxed(value)), nil

	case *types.Interface:
		// Anonymous interfaces, including any, flatten to Object.
		// Named interfaces are handled above as class references.
		return ir.Object(), nil

	case *types.TypeParam:
		return ir.TypeVar(typ.Obj().Name())

	default:
		return nil, fmt.Errorf("unsupported type: %s", t.String())
	}
}

// basicJavaType maps a Go basic type to a Java primitive or String.
func basicJavaType(b *types.Basic) (ir.TypeRef, error) {
	switch b.Kind() {
	case types.Bool:
		return ir.Boolean(), nil
	case types.Int8:
		return ir.Byte(), nil
	case types.Int16:
		return ir.Short(), nil
	case types.Int32:
		return ir.Int(), nil
	case types.Int, types.Int64:
		return ir.Long(), nil
	case types.Uint8:
		return ir.Short(), nil
	case types.Uint16, types.Uint32:
		return ir.Long(), nil
	case types.Uint, types.Uint64, types.Uintptr:
		return ir.Long(), nil
	case types.Float32:
		return ir.Float(), nil
	case types.Float64:
		return ir.Double(), nil
	case types.String:
		return stringRef(), nil
	case types.UntypedNil:
		return nil, fmt.Errorf("untyped nil has no Java type")
	default:
		return nil, fmt.Errorf("unsupported basic type: %s", b.Name())
	}
}

// BuildSchema analyzes source code and returns a Schema. Extraction is
// recursive: named struct types reachable from the roots are extracted too.
func (p *SourceProvider) BuildSchema(ctx context.Context, opts SourceInputOptions) (*ir.Schema, error) {
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, opts.Packages...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}

	b := &sourceBuilder{
		pkgs:   pkgs,
		schema: &ir.Schema{},
		seen:   set.New[string](16),
	}

	mainPkg := pkgs[0]
	for _, pkg := range pkgs {
		if pkg.PkgPath == opts.Packages[0] {
			mainPkg = pkg
			break
		}
	}
	b.schema.Package = ir.PackageInfo{Path: mainPkg.PkgPath, Name: mainPkg.Name}

	if len(opts.RootTypes) > 0 {
		roots := set.New[string](len(opts.RootTypes))
		for _, root := range opts.RootTypes {
			if !roots.Insert(root) {
				continue // duplicate root
			}
			if err := b.extractRootType(root); err != nil {
				return nil, fmt.Errorf("failed to extract root type %s: %w", root, err)
			}
		}
	} else {
		if err := b.extractAllExportedTypes(); err != nil {
			return nil, fmt.Errorf("failed to extract exported types: %w", err)
		}
	}

	return b.schema, nil
}

// sourceBuilder accumulates declarations during extraction.
type sourceBuilder struct {
	pkgs   []*packages.Package
	schema *ir.Schema
	seen   *set.Set[string]
}

// extractRootType finds and extracts a named type by simple name.
func (b *sourceBuilder) extractRootType(name string) error {
	for _, pkg := range b.pkgs {
		obj := pkg.Types.Scope().Lookup(name)
		if obj == nil {
			continue
		}
		tn, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}
		return b.extractNamedType(pkg, tn)
	}
	return fmt.Errorf("type %s not found in any package", name)
}

// extractAllExportedTypes extracts every exported type in every package.
func (b *sourceBuilder) extractAllExportedTypes() error {
	for _, pkg := range b.pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			if !obj.Exported() {
				continue
			}
			tn, ok := obj.(*types.TypeName)
			if !ok {
				continue
			}
			if err := b.extractNamedType(pkg, tn); err != nil {
				return err
			}
		}
	}
	return nil
}

// extractNamedType extracts a named type and recursively processes the
// struct types it references.
func (b *sourceBuilder) extractNamedType(pkg *packages.Package, tn *types.TypeName) error {
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil
	}

	key := b.typeKey(named)
	if b.seen.Contains(key) {
		return nil
	}
	b.seen.Insert(key)

	doc := b.extractDocumentation(pkg, tn.Name())

	if consts := b.enumConstants(named); len(consts) > 0 {
		b.schema.AddDecl(&ir.EnumDecl{
			Name:          ir.JavaIdentifier{Name: tn.Name()},
			Constants:     consts,
			Documentation: doc,
		})
		return nil
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		b.schema.AddWarning(ir.Warning{
			Code:     "SKIPPED_TYPE",
			Message:  fmt.Sprintf("type %s is not a struct or enum; skipped", tn.Name()),
			TypeName: tn.Name(),
		})
		return nil
	}

	decl, err := b.buildClassDecl(pkg, named, st, tn.Name(), doc)
	if err != nil {
		return err
	}
	b.schema.AddDecl(decl)
	return nil
}

// buildClassDecl converts a Go struct to a Java class declaration.
func (b *sourceBuilder) buildClassDecl(pkg *packages.Package, named *types.Named, st *types.Struct, name string, doc ir.Documentation) (*ir.ClassDecl, error) {
	decl := &ir.ClassDecl{
		Name:          ir.JavaIdentifier{Name: name},
		Documentation: doc,
	}

	if tparams := named.TypeParams(); tparams != nil {
		for i := 0; i < tparams.Len(); i++ {
			tp := tparams.At(i)
			bounds, warnings := boundsFromConstraint(tp)
			for _, w := range warnings {
				b.schema.AddWarning(w)
			}
			tv, err := ir.TypeVarDecl(tp.Obj().Name(), bounds...)
			if err != nil {
				return nil, fmt.Errorf("type parameter %s of %s: %w", tp.Obj().Name(), name, err)
			}
			decl.TypeParams = append(decl.TypeParams, tv)
		}
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}
		if tag := reflect.StructTag(st.Tag(i)).Get("json"); tag == "-" {
			continue
		}

		nullable := false
		fieldType := field.Type()
		if ptr, ok := types.Unalias(fieldType).(*types.Pointer); ok {
			nullable = true
			fieldType = ptr.Elem()
		}

		ref, err := javaTypeOf(fieldType)
		if err != nil {
			b.schema.AddWarning(ir.Warning{
				Code:     "UNSUPPORTED_FIELD",
				Message:  fmt.Sprintf("field %s.%s: %v", name, field.Name(), err),
				TypeName: name,
			})
			continue
		}

		fd := ir.FieldDecl{Name: field.Name(), Type: ref}
		if nullable {
			fd.Type = boxed(ref)
			fd.Annotations = []ir.AnnotationRef{nullableAnnotation()}
		}
		decl.Fields = append(decl.Fields, fd)

		b.extractReferenced(pkg, fieldType)
	}

	return decl, nil
}

// extractReferenced recursively extracts named struct types used by fields.
func (b *sourceBuilder) extractReferenced(pkg *packages.Package, t types.Type) {
	switch typ := types.Unalias(t).(type) {
	case *types.Named:
		if obj := typ.Obj(); obj.Pkg() != nil && obj.Pkg().Path() != "time" {
			_ = b.extractNamedType(pkg, obj)
		}
	case *types.Pointer:
		b.extractReferenced(pkg, typ.Elem())
	case *types.Slice:
		b.extractReferenced(pkg, typ.Elem())
	case *types.Array:
		b.extractReferenced(pkg, typ.Elem())
	case *types.Map:
		b.extractReferenced(pkg, typ.Key())
		b.extractReferenced(pkg, typ.Elem())
	}
}

// enumConstants returns the constants of the named type's const group, in
// declaration order, or nil when the type is not an enum candidate.
func (b *sourceBuilder) enumConstants(named *types.Named) []ir.EnumConstant {
	if _, ok := named.Underlying().(*types.Basic); !ok {
		return nil
	}

	var consts []ir.EnumConstant
	for _, pkg := range b.pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			c, ok := scope.Lookup(name).(*types.Const)
			if !ok || !c.Exported() {
				continue
			}
			if !types.Identical(c.Type(), named) {
				continue
			}
			consts = append(consts, ir.EnumConstant{
				Name:  c.Name(),
				Value: formatConstValue(c.Val()),
			})
		}
	}
	return consts
}

// formatConstValue renders a constant value for the enum comment.
func formatConstValue(v constant.Value) string {
	if v == nil {
		return ""
	}
	return v.ExactString()
}

// extractDocumentation looks up the doc comment for a type declaration.
func (b *sourceBuilder) extractDocumentation(pkg *packages.Package, name string) ir.Documentation {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name.Name != name {
					continue
				}
				text := ts.Doc.Text()
				if text == "" {
					text = gen.Doc.Text()
				}
				if text == "" {
					return ir.Documentation{}
				}
				return docFromText(text)
			}
		}
	}
	return ir.Documentation{}
}

// docFromText splits raw comment text into summary and body, detecting
// Deprecated: paragraphs.
func docFromText(text string) ir.Documentation {
	text = strings.TrimSpace(text)
	doc := ir.Documentation{Body: text}

	if i := strings.Index(text, ". "); i >= 0 {
		doc.Summary = text[:i+1]
	} else if i := strings.IndexByte(text, '\n'); i >= 0 {
		doc.Summary = text[:i]
	} else {
		doc.Summary = text
	}

	for _, para := range strings.Split(text, "\n\n") {
		if strings.HasPrefix(para, "Deprecated:") {
			msg := strings.TrimSpace(strings.TrimPrefix(para, "Deprecated:"))
			doc.Deprecated = &msg
		}
	}
	return doc
}

// typeKey generates a unique key for a named type.
func (b *sourceBuilder) typeKey(named *types.Named) string {
	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil {
		return named.String()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}
