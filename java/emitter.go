package java

import (
	"fmt"
	"strings"

	"github.com/javagen-io/javagen/ir"
)

// Emitter renders top-level ir declarations as Java source.
type Emitter struct {
	config Config
}

// NewEmitter returns an emitter for the given config.
func NewEmitter(config Config) *Emitter {
	return &Emitter{config: config.withDefaults()}
}

// EmitDecl emits a complete top-level declaration into the writer.
func (e *Emitter) EmitDecl(w *CodeWriter, decl ir.Decl) error {
	if e.config.EmitComments && !decl.Doc().IsZero() {
		if err := e.emitJavadoc(w, decl.Doc()); err != nil {
			return err
		}
	}

	switch d := decl.(type) {
	case *ir.ClassDecl:
		return e.emitClass(w, d)
	case *ir.EnumDecl:
		return e.emitEnum(w, d)
	default:
		return fmt.Errorf("unsupported declaration kind: %s", decl.DeclKind())
	}
}

// emitClass emits a class or interface declaration.
func (e *Emitter) emitClass(w *CodeWriter, d *ir.ClassDecl) error {
	keyword := "class"
	if d.Interface {
		keyword = "interface"
	}
	if err := w.WriteLiteral("public " + keyword + " " + escapeReservedWord(d.Name.Name)); err != nil {
		return err
	}

	if err := e.emitTypeParams(w, d.TypeParams); err != nil {
		return err
	}

	if len(d.Implements) > 0 {
		if err := w.WriteLiteral(" implements "); err != nil {
			return err
		}
		for i, impl := range d.Implements {
			if i > 0 {
				if err := w.WriteLiteral(", "); err != nil {
					return err
				}
			}
			if err := w.Emit(impl); err != nil {
				return err
			}
		}
	}

	if err := w.WriteLiteral(" {\n"); err != nil {
		return err
	}
	w.Indent()

	for _, field := range d.Fields {
		if err := e.emitField(w, field); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}

	w.Outdent()
	return w.WriteLiteral("}\n")
}

// emitTypeParams emits the bracketed type parameter list. Each declaration
// renders itself, bounds included, through the emission contract.
func (e *Emitter) emitTypeParams(w *CodeWriter, params []*ir.TypeVariableDecl) error {
	if len(params) == 0 {
		return nil
	}
	if err := w.WriteLiteral("<"); err != nil {
		return err
	}
	for i, p := range params {
		if i > 0 {
			if err := w.WriteLiteral(", "); err != nil {
				return err
			}
		}
		if err := w.Emit(p); err != nil {
			return err
		}
	}
	return w.WriteLiteral(">")
}

// emitField emits one field declaration line.
func (e *Emitter) emitField(w *CodeWriter, f ir.FieldDecl) error {
	if e.config.EmitComments && !f.Documentation.IsZero() {
		if err := e.emitJavadoc(w, f.Documentation); err != nil {
			return err
		}
	}

	if err := w.WriteLiteral(e.config.FieldModifier + " "); err != nil {
		return err
	}
	if f.Final {
		if err := w.WriteLiteral("final "); err != nil {
			return err
		}
	}
	for _, a := range f.Annotations {
		if err := w.Emit(a); err != nil {
			return err
		}
		if err := w.WriteLiteral(" "); err != nil {
			return err
		}
	}
	if err := w.Emit(f.Type); err != nil {
		return err
	}
	return w.WriteLiteral(" " + sanitizeIdentifier(f.Name) + ";\n")
}

// emitEnum emits an enum declaration.
func (e *Emitter) emitEnum(w *CodeWriter, d *ir.EnumDecl) error {
	if err := w.WriteLiteral("public enum " + escapeReservedWord(d.Name.Name) + " {\n"); err != nil {
		return err
	}
	w.Indent()

	for i, c := range d.Constants {
		if e.config.EmitComments && !c.Documentation.IsZero() {
			if err := e.emitJavadoc(w, c.Documentation); err != nil {
				return err
			}
		}
		line := sanitizeIdentifier(c.Name)
		if i < len(d.Constants)-1 {
			line += ","
		}
		if c.Value != "" {
			line += " // " + c.Value
		}
		if err := w.WriteLiteral(line + "\n"); err != nil {
			return err
		}
	}

	w.Outdent()
	return w.WriteLiteral("}\n")
}

// emitJavadoc emits a Javadoc block for the given documentation.
func (e *Emitter) emitJavadoc(w *CodeWriter, doc ir.Documentation) error {
	lines := strings.Split(strings.TrimSpace(doc.Body), "\n")
	if len(lines) == 1 && lines[0] != "" && doc.Deprecated == nil {
		return w.WriteLiteral("/** " + strings.TrimSpace(lines[0]) + " */\n")
	}

	if err := w.WriteLiteral("/**\n"); err != nil {
		return err
	}
	for _, line := range lines {
		text := " *\n"
		if line != "" {
			text = " * " + strings.TrimSpace(line) + "\n"
		}
		if err := w.WriteLiteral(text); err != nil {
			return err
		}
	}
	if doc.Deprecated != nil {
		msg := " * @deprecated"
		if *doc.Deprecated != "" {
			msg += " " + *doc.Deprecated
		}
		if err := w.WriteLiteral(msg + "\n"); err != nil {
			return err
		}
	}
	return w.WriteLiteral(" */\n")
}
