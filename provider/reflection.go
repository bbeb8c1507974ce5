package provider

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	set "github.com/hashicorp/go-set/v3"

	"github.com/javagen-io/javagen/ir"
)

// ReflectionProvider extracts types using runtime reflection. This is the
// reflective path: the runtime only sees instantiated generics, so generic
// definitions surface as synthetically named concrete classes. The source
// provider should be preferred when declared type parameters matter.
type ReflectionProvider struct{}

// ReflectionInputOptions configures reflection-based type extraction.
type ReflectionInputOptions struct {
	// RootTypes are the types to extract.
	RootTypes []reflect.Type
}

// TypeVariable describes a runtime type variable: a declared name plus its
// declared bounds. Go's runtime has no first-class representation of an
// uninstantiated type parameter, so sources that do track them (registries,
// generated metadata) satisfy this interface to feed the adapters.
type TypeVariable interface {
	// Name returns the declared simple name, e.g. "T".
	Name() string

	// Bounds returns the declared bounds in declaration order.
	Bounds() []reflect.Type
}

// TypeVarFromTypeVariable returns the reference form of a reflective type
// variable. Only the name is carried; bounds belong to the declaration.
func TypeVarFromTypeVariable(tv TypeVariable) (*ir.TypeVariableRef, error) {
	return ir.TypeVar(tv.Name())
}

// TypeVarDeclFromTypeVariable returns the declaration form of a reflective
// type variable: the declared name plus the declared bounds in order, each
// mapped through the reflective type-reference adapter and canonicalized.
func TypeVarDeclFromTypeVariable(tv TypeVariable) (*ir.TypeVariableDecl, error) {
	raw := tv.Bounds()
	bounds := make([]ir.TypeRef, 0, len(raw))
	for _, bt := range raw {
		ref, err := FromReflectType(bt)
		if err != nil {
			return nil, fmt.Errorf("type variable %s: %w", tv.Name(), err)
		}
		bounds = append(bounds, boxed(ref))
	}
	return ir.TypeVarDecl(tv.Name(), bounds...)
}

// FromReflectType is the reflective type-reference adapter: it maps a
// reflect.Type to a Java reference.
func FromReflectType(t reflect.Type) (ir.TypeRef, error) {
	if t == nil {
		return nil, fmt.Errorf("nil type")
	}

	if t.PkgPath() == "time" {
		switch t.Name() {
		case "Time":
			return instantRef(), nil
		case "Duration":
			return durationRef(), nil
		}
	}

	switch t.Kind() {
	case reflect.Bool:
		return ir.Boolean(), nil
	case reflect.Int8:
		return ir.Byte(), nil
	case reflect.Int16:
		return ir.Short(), nil
	case reflect.Int32:
		return ir.Int(), nil
	case reflect.Int, reflect.Int64:
		return ir.Long(), nil
	case reflect.Uint8:
		return ir.Short(), nil
	case reflect.Uint16, reflect.Uint32, reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return ir.Long(), nil
	case reflect.Float32:
		return ir.Float(), nil
	case reflect.Float64:
		return ir.Double(), nil
	case reflect.String:
		return stringRef(), nil

	case reflect.Pointer:
		elem, err := FromReflectType(t.Elem())
		if err != nil {
			return nil, err
		}
		return boxed(elem), nil

	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return ir.Array(ir.Byte()), nil
		}
		elem, err := FromReflectType(t.Elem())
		if err != nil {
			return nil, err
		}
		return ir.Parameterized(listRef(), boxed(elem)), nil

	case reflect.Array:
		elem, err := FromReflectType(t.Elem())
		if err != nil {
			return nil, err
		}
		return ir.Array(elem), nil

	case reflect.Map:
		key, err := FromReflectType(t.Key())
		if err != nil {
			return nil, err
		}
		value, err := FromReflectType(t.Elem())
		if err != nil {
			return nil, err
		}
		return ir.Parameterized(mapRef(), boxed(key), boxed(value)), nil

	case reflect.Interface:
		if t.NumMethod() == 0 || t.Name() == "" {
			return ir.Object(), nil
		}
		return ir.Class("", t.Name()), nil

	case reflect.Struct:
		if t.Name() == "" {
			return nil, fmt.Errorf("anonymous struct has no Java reference")
		}
		return ir.Class("", sanitizeTypeName(t.Name())), nil

	default:
		return nil, fmt.Errorf("unsupported kind: %s", t.Kind())
	}
}

// BuildSchema extracts struct types and returns a Schema.
func (p *ReflectionProvider) BuildSchema(ctx context.Context, opts ReflectionInputOptions) (*ir.Schema, error) {
	if len(opts.RootTypes) == 0 {
		return nil, fmt.Errorf("no root types provided")
	}

	b := &reflectionBuilder{
		schema:  &ir.Schema{},
		visited: set.New[reflect.Type](len(opts.RootTypes)),
	}
	for _, t := range opts.RootTypes {
		if err := b.extractType(ctx, t); err != nil {
			return nil, err
		}
	}
	return b.schema, nil
}

// reflectionBuilder maintains state during schema construction.
type reflectionBuilder struct {
	schema  *ir.Schema
	visited *set.Set[reflect.Type]
}

// extractType processes a type and adds its declaration to the schema.
func (b *reflectionBuilder) extractType(ctx context.Context, t reflect.Type) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.Name() == "" {
		return fmt.Errorf("root type must be a named struct, got %s", t)
	}
	if !b.visited.Insert(t) {
		return nil
	}

	decl := &ir.ClassDecl{
		Name: ir.JavaIdentifier{Name: sanitizeTypeName(t.Name())},
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Tag.Get("json") == "-" {
			continue
		}

		nullable := false
		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			nullable = true
			fieldType = fieldType.Elem()
		}

		ref, err := FromReflectType(fieldType)
		if err != nil {
			b.schema.AddWarning(ir.Warning{
				Code:     "UNSUPPORTED_FIELD",
				Message:  fmt.Sprintf("field %s.%s: %v", t.Name(), field.Name, err),
				TypeName: t.Name(),
			})
			continue
		}

		fd := ir.FieldDecl{Name: field.Name, Type: ref}
		if nullable {
			fd.Type = boxed(ref)
			fd.Annotations = []ir.AnnotationRef{nullableAnnotation()}
		}
		decl.Fields = append(decl.Fields, fd)

		b.extractReferenced(ctx, fieldType)
	}

	b.schema.AddDecl(decl)
	return nil
}

// extractReferenced recursively extracts named struct types used by fields.
func (b *reflectionBuilder) extractReferenced(ctx context.Context, t reflect.Type) {
	switch t.Kind() {
	case reflect.Struct:
		if t.Name() != "" && t.PkgPath() != "time" {
			_ = b.extractType(ctx, t)
		}
	case reflect.Pointer, reflect.Slice, reflect.Array:
		b.extractReferenced(ctx, t.Elem())
	case reflect.Map:
		b.extractReferenced(ctx, t.Key())
		b.extractReferenced(ctx, t.Elem())
	}
}

// sanitizeTypeName flattens generic instantiation names like
// "Response[example.com/api.User]" into valid Java identifiers.
func sanitizeTypeName(name string) string {
	r := strings.NewReplacer(
		".", "_",
		"/", "_",
		"[", "_",
		"]", "",
		",", "_",
		" ", "",
		"*", "Ptr",
	)
	return r.Replace(name)
}
