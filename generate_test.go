package javagen

import (
	"context"
	"strings"
	"testing"

	"github.com/javagen-io/javagen/sink"
)

type Account struct {
	ID      int64
	Name    string
	Balance float64
	Owner   *Owner
}

type Owner struct {
	Email string
}

func TestFromTypes_EndToEnd(t *testing.T) {
	out := sink.NewMemorySink()

	result, err := FromTypes(Account{}).
		JavaPackage("com.example").
		ToSink(out)
	if err != nil {
		t.Fatalf("ToSink: %v", err)
	}
	if result.DeclsGenerated != 2 {
		t.Errorf("DeclsGenerated = %d, want 2", result.DeclsGenerated)
	}

	account := string(out.Get("com/example/Account.java"))
	if account == "" {
		t.Fatal("com/example/Account.java was not written")
	}
	for _, fragment := range []string{
		"package com.example;",
		"public class Account {",
		"public long ID;",
		"public String Name;",
		"public double Balance;",
		"public @Nullable Owner Owner;",
	} {
		if !strings.Contains(account, fragment) {
			t.Errorf("Account.java missing %q:\n%s", fragment, account)
		}
	}

	if out.Get("com/example/Owner.java") == nil {
		t.Error("referenced type Owner was not generated")
	}
}

func TestFromTypes_FieldModifier(t *testing.T) {
	out := sink.NewMemorySink()

	_, err := FromTypes(Owner{}).
		JavaPackage("com.example").
		FieldModifier("private").
		ToSink(out)
	if err != nil {
		t.Fatalf("ToSink: %v", err)
	}

	content := string(out.Get("com/example/Owner.java"))
	if !strings.Contains(content, "private String Email;") {
		t.Errorf("modifier not applied:\n%s", content)
	}
}

func TestFromTypes_Frontmatter(t *testing.T) {
	out := sink.NewMemorySink()

	_, err := FromTypes(Owner{}).
		JavaPackage("com.example").
		Frontmatter("import javax.annotation.Nullable;").
		ToSink(out)
	if err != nil {
		t.Fatalf("ToSink: %v", err)
	}

	content := string(out.Get("com/example/Owner.java"))
	if !strings.HasPrefix(content, "package com.example;\n\nimport javax.annotation.Nullable;\n\n") {
		t.Errorf("frontmatter misplaced:\n%s", content)
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	out := sink.NewMemorySink()
	cfg := &Config{Provider: "bogus"}

	_, err := Generate(context.Background(), nil, cfg, out)
	if err == nil {
		t.Fatal("expected error for invalid provider")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("error = %v, want config validation failure", err)
	}
}

func TestGenerate_ReflectionRequiresTypes(t *testing.T) {
	out := sink.NewMemorySink()
	cfg := &Config{Provider: "reflection"}

	if _, err := Generate(context.Background(), nil, cfg, out); err == nil {
		t.Error("expected error when no type values are given")
	}
}

func TestGenerate_UntypedNil(t *testing.T) {
	out := sink.NewMemorySink()
	cfg := &Config{Provider: "reflection"}

	if _, err := Generate(context.Background(), []any{nil}, cfg, out); err == nil {
		t.Error("expected error for untyped nil root")
	}
}

func TestGenerate_SourceRequiresPackages(t *testing.T) {
	out := sink.NewMemorySink()
	cfg := &Config{Provider: "source"}

	if _, err := Generate(context.Background(), nil, cfg, out); err == nil {
		t.Error("expected error when no packages are given")
	}
}
