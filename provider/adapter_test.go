package provider

import (
	"go/types"
	"reflect"
	"testing"
)

// The semantic and reflective adapters must agree: the same declared name
// and bound list produce identical canonical values regardless of which
// path built them.

type loader interface {
	Load()
}

type flusher interface {
	Flush()
}

func semanticDeclString(t *testing.T, name string, constraint types.Type) string {
	t.Helper()
	tp := newTypeParam(testPkg(), name, constraint)
	decl, _, err := TypeVarDeclFromTypeParam(tp)
	if err != nil {
		t.Fatalf("TypeVarDeclFromTypeParam: %v", err)
	}
	return decl.String()
}

func reflectiveDeclString(t *testing.T, name string, bounds ...reflect.Type) string {
	t.Helper()
	decl, err := TypeVarDeclFromTypeVariable(testTypeVariable{name: name, bounds: bounds})
	if err != nil {
		t.Fatalf("TypeVarDeclFromTypeVariable: %v", err)
	}
	return decl.String()
}

func TestAdapters_AgreeOnReferenceForm(t *testing.T) {
	tp := newTypeParam(testPkg(), "T", types.Universe.Lookup("any").Type())
	semantic, err := TypeVarFromTypeParam(tp)
	if err != nil {
		t.Fatal(err)
	}
	reflective, err := TypeVarFromTypeVariable(testTypeVariable{name: "T"})
	if err != nil {
		t.Fatal(err)
	}
	if semantic.String() != reflective.String() {
		t.Errorf("semantic %q != reflective %q", semantic.String(), reflective.String())
	}
}

func TestAdapters_AgreeOnUnbounded(t *testing.T) {
	semantic := semanticDeclString(t, "T", types.Universe.Lookup("any").Type())
	reflective := reflectiveDeclString(t, "T", reflect.TypeOf((*any)(nil)).Elem())

	if semantic != reflective {
		t.Errorf("semantic %q != reflective %q", semantic, reflective)
	}
	if semantic != "T" {
		t.Errorf("unbounded declaration = %q, want %q", semantic, "T")
	}
}

func TestAdapters_AgreeOnSingleBound(t *testing.T) {
	pkg := testPkg()
	semantic := semanticDeclString(t, "T", namedInterface(pkg, "loader", "Load"))
	reflective := reflectiveDeclString(t, "T", reflect.TypeOf((*loader)(nil)).Elem())

	if semantic != reflective {
		t.Errorf("semantic %q != reflective %q", semantic, reflective)
	}
	if semantic != "T extends loader" {
		t.Errorf("declaration = %q, want %q", semantic, "T extends loader")
	}
}

func TestAdapters_AgreeOnBoundOrder(t *testing.T) {
	pkg := testPkg()
	constraint := types.NewInterfaceType(nil, []types.Type{
		namedInterface(pkg, "loader", "Load"),
		namedInterface(pkg, "flusher", "Flush"),
	})
	semantic := semanticDeclString(t, "T", constraint)
	reflective := reflectiveDeclString(t, "T",
		reflect.TypeOf((*loader)(nil)).Elem(),
		reflect.TypeOf((*flusher)(nil)).Elem(),
	)

	if semantic != reflective {
		t.Errorf("semantic %q != reflective %q", semantic, reflective)
	}
	if semantic != "T extends loader & flusher" {
		t.Errorf("declaration = %q, want %q", semantic, "T extends loader & flusher")
	}
}
