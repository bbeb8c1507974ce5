package provider

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/javagen-io/javagen/ir"
)

type reflectAddress struct {
	City string
	Zip  string
}

type reflectUser struct {
	ID        int64
	Name      string
	Email     *string
	Tags      []string
	Scores    map[string]float64
	CreatedAt time.Time
	Address   reflectAddress
	secret    string
	Skipped   string `json:"-"`
}

type reflectBad struct {
	Ch chan int
}

type labeled interface {
	Label() string
}

func TestFromReflectType(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"bool", reflect.TypeOf(true), "boolean"},
		{"int8", reflect.TypeOf(int8(0)), "byte"},
		{"int32", reflect.TypeOf(int32(0)), "int"},
		{"int", reflect.TypeOf(0), "long"},
		{"int64", reflect.TypeOf(int64(0)), "long"},
		{"uint8", reflect.TypeOf(uint8(0)), "short"},
		{"float32", reflect.TypeOf(float32(0)), "float"},
		{"float64", reflect.TypeOf(float64(0)), "double"},
		{"string", reflect.TypeOf(""), "String"},
		{"byte slice", reflect.TypeOf([]byte(nil)), "byte[]"},
		{"string slice", reflect.TypeOf([]string(nil)), "java.util.List<String>"},
		{"int slice", reflect.TypeOf([]int(nil)), "java.util.List<Long>"},
		{"map", reflect.TypeOf(map[string]int(nil)), "java.util.Map<String, Long>"},
		{"array", reflect.TypeOf([4]int32{}), "int[]"},
		{"pointer", reflect.TypeOf((*string)(nil)), "String"},
		{"time", reflect.TypeOf(time.Time{}), "java.time.Instant"},
		{"duration", reflect.TypeOf(time.Duration(0)), "java.time.Duration"},
		{"any", reflect.TypeOf((*any)(nil)).Elem(), "java.lang.Object"},
		{"named interface", reflect.TypeOf((*labeled)(nil)).Elem(), "labeled"},
		{"named struct", reflect.TypeOf(reflectAddress{}), "reflectAddress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := FromReflectType(tt.typ)
			if err != nil {
				t.Fatalf("FromReflectType(%v): %v", tt.typ, err)
			}
			if got := ref.String(); got != tt.want {
				t.Errorf("FromReflectType(%v) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestFromReflectType_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
	}{
		{"nil", nil},
		{"chan", reflect.TypeOf(make(chan int))},
		{"func", reflect.TypeOf(func() {})},
		{"anonymous struct", reflect.TypeOf(struct{ X int }{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromReflectType(tt.typ); err == nil {
				t.Errorf("FromReflectType(%v) expected error", tt.typ)
			}
		})
	}
}

// testTypeVariable is a TypeVariable backed by static data.
type testTypeVariable struct {
	name   string
	bounds []reflect.Type
}

func (v testTypeVariable) Name() string           { return v.name }
func (v testTypeVariable) Bounds() []reflect.Type { return v.bounds }

func TestTypeVarFromTypeVariable(t *testing.T) {
	ref, err := TypeVarFromTypeVariable(testTypeVariable{name: "T"})
	if err != nil {
		t.Fatalf("TypeVarFromTypeVariable: %v", err)
	}
	if got := ref.String(); got != "T" {
		t.Errorf("String() = %q, want %q", got, "T")
	}
}

func TestTypeVarDeclFromTypeVariable(t *testing.T) {
	tests := []struct {
		name   string
		tv     testTypeVariable
		want   string
	}{
		{
			"no bounds",
			testTypeVariable{name: "T"},
			"T",
		},
		{
			"object bound elided",
			testTypeVariable{name: "T", bounds: []reflect.Type{reflect.TypeOf((*any)(nil)).Elem()}},
			"T",
		},
		{
			"interface bound",
			testTypeVariable{name: "T", bounds: []reflect.Type{reflect.TypeOf((*labeled)(nil)).Elem()}},
			"T extends labeled",
		},
		{
			"primitive bound boxed",
			testTypeVariable{name: "N", bounds: []reflect.Type{reflect.TypeOf(0)}},
			"N extends Long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl, err := TypeVarDeclFromTypeVariable(tt.tv)
			if err != nil {
				t.Fatalf("TypeVarDeclFromTypeVariable: %v", err)
			}
			if got := decl.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeVarDeclFromTypeVariable_BadBound(t *testing.T) {
	tv := testTypeVariable{name: "T", bounds: []reflect.Type{reflect.TypeOf(make(chan int))}}
	if _, err := TypeVarDeclFromTypeVariable(tv); err == nil {
		t.Error("expected error for unmappable bound")
	}
}

func TestReflectionProvider_BuildSchema(t *testing.T) {
	p := &ReflectionProvider{}
	schema, err := p.BuildSchema(context.Background(), ReflectionInputOptions{
		RootTypes: []reflect.Type{reflect.TypeOf(reflectUser{})},
	})
	if err != nil {
		t.Fatalf("BuildSchema: %v", err)
	}

	decl, ok := schema.FindDecl("reflectUser").(*ir.ClassDecl)
	if !ok {
		t.Fatal("reflectUser declaration not found")
	}

	fields := map[string]string{}
	for _, f := range decl.Fields {
		fields[f.Name] = f.Type.String()
	}

	want := map[string]string{
		"ID":        "long",
		"Name":      "String",
		"Email":     "String",
		"Tags":      "java.util.List<String>",
		"Scores":    "java.util.Map<String, Double>",
		"CreatedAt": "java.time.Instant",
		"Address":   "reflectAddress",
	}
	for name, typ := range want {
		if got := fields[name]; got != typ {
			t.Errorf("field %s has type %q, want %q", name, got, typ)
		}
	}
	if _, ok := fields["secret"]; ok {
		t.Error("unexported field was extracted")
	}
	if _, ok := fields["Skipped"]; ok {
		t.Error(`field tagged json:"-" was extracted`)
	}

	// Pointer fields carry the nullability annotation.
	for _, f := range decl.Fields {
		if f.Name == "Email" {
			if len(f.Annotations) != 1 || f.Annotations[0].String() != "@Nullable" {
				t.Errorf("Email annotations = %v, want [@Nullable]", f.Annotations)
			}
		}
	}

	// Referenced structs are extracted recursively.
	if schema.FindDecl("reflectAddress") == nil {
		t.Error("referenced struct reflectAddress was not extracted")
	}
}

func TestReflectionProvider_PointerRoot(t *testing.T) {
	p := &ReflectionProvider{}
	schema, err := p.BuildSchema(context.Background(), ReflectionInputOptions{
		RootTypes: []reflect.Type{reflect.TypeOf(&reflectAddress{})},
	})
	if err != nil {
		t.Fatalf("BuildSchema: %v", err)
	}
	if schema.FindDecl("reflectAddress") == nil {
		t.Error("pointer root was not dereferenced")
	}
}

func TestReflectionProvider_DuplicateRoots(t *testing.T) {
	p := &ReflectionProvider{}
	schema, err := p.BuildSchema(context.Background(), ReflectionInputOptions{
		RootTypes: []reflect.Type{reflect.TypeOf(reflectAddress{}), reflect.TypeOf(reflectAddress{})},
	})
	if err != nil {
		t.Fatalf("BuildSchema: %v", err)
	}
	if len(schema.Decls) != 1 {
		t.Errorf("len(Decls) = %d, want 1", len(schema.Decls))
	}
}

func TestReflectionProvider_UnsupportedField(t *testing.T) {
	p := &ReflectionProvider{}
	schema, err := p.BuildSchema(context.Background(), ReflectionInputOptions{
		RootTypes: []reflect.Type{reflect.TypeOf(reflectBad{})},
	})
	if err != nil {
		t.Fatalf("BuildSchema: %v", err)
	}

	decl, ok := schema.FindDecl("reflectBad").(*ir.ClassDecl)
	if !ok {
		t.Fatal("reflectBad declaration not found")
	}
	if len(decl.Fields) != 0 {
		t.Errorf("unsupported field was kept: %+v", decl.Fields)
	}
	if len(schema.Warnings) != 1 || schema.Warnings[0].Code != "UNSUPPORTED_FIELD" {
		t.Errorf("Warnings = %+v, want one UNSUPPORTED_FIELD", schema.Warnings)
	}
}

func TestReflectionProvider_Errors(t *testing.T) {
	p := &ReflectionProvider{}
	ctx := context.Background()

	if _, err := p.BuildSchema(ctx, ReflectionInputOptions{}); err == nil {
		t.Error("expected error for empty root types")
	}
	if _, err := p.BuildSchema(ctx, ReflectionInputOptions{
		RootTypes: []reflect.Type{reflect.TypeOf(0)},
	}); err == nil {
		t.Error("expected error for non-struct root")
	}
}

func TestSanitizeTypeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"User", "User"},
		{"Response[example.com/api.User]", "Response_example_com_api_User"},
		{"Pair[int,string]", "Pair_int_string"},
		{"Box[*api.User]", "Box_Ptrapi_User"},
	}

	for _, tt := range tests {
		if got := sanitizeTypeName(tt.in); got != tt.want {
			t.Errorf("sanitizeTypeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
