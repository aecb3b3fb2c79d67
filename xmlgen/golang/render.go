package golang

import (
	"bytes"
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"github.com/signadot/xmlgen/model"
	"github.com/signadot/xmlgen/xmlgen"
	"golang.org/x/tools/imports"
)

// Config configures Render.
type Config struct {
	// Package is the package name of the generated file (default: the
	// schema package, else the lower cased model name)
	Package string

	// Types generates the struct types of the enabled classes
	Types bool

	// FileName is the name the file is formatted as (default xmlgen_gen.go)
	FileName string
}

// Render renders p as a formatted Go source file.
func Render(p *xmlgen.Program, cfg Config) ([]byte, error) {
	if cfg.FileName == "" {
		cfg.FileName = "xmlgen_gen.go"
	}
	if cfg.Package == "" {
		cfg.Package = p.Schema.Package
	}
	if cfg.Package == "" {
		cfg.Package = strings.ToLower(xmlgen.GoName(p.Schema.Name))
	}
	if !token.IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("%q is not a package name", cfg.Package)
	}
	r := &renderer{p: p, cfg: cfg, buf: bytes.NewBuffer(nil)}
	if err := r.file(); err != nil {
		return nil, err
	}
	src, err := imports.Process(cfg.FileName, r.buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("could not format generated code: %w", err)
	}
	return src, nil
}

type renderer struct {
	p   *xmlgen.Program
	cfg Config
	buf *bytes.Buffer
}

func (r *renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.buf, format, args...)
}

func (r *renderer) file() error {
	for _, proc := range r.p.Procedures {
		switch typeName(proc.Class) {
		case "Write", "PrettyPrint":
			if r.cfg.Types {
				return fmt.Errorf("class %s collides with the generated %s", proc.Class.Name, typeName(proc.Class))
			}
		}
	}
	name := r.p.Schema.Name
	if name == "" {
		name = r.p.Root.Class.Name
	}
	r.printf("// Code generated by xmlgen from model %s. DO NOT EDIT.\n\n", name)
	r.printf("package %s\n\n", r.cfg.Package)
	r.printf("import (\n")
	for _, imp := range []string{"errors", "fmt", "io", "maps", "reflect", "slices", "strconv", "time", "github.com/signadot/xmlgen/xmltree"} {
		r.printf("\t%q\n", imp)
	}
	r.printf(")\n\n")
	if r.cfg.Types {
		for _, proc := range r.p.Procedures {
			r.structType(proc.Class)
		}
	}
	r.entry()
	for _, proc := range r.p.Procedures {
		r.procedure(proc)
	}
	if usesText(r.p) {
		r.textHelper()
	}
	return nil
}

// usesText reports whether p writes an association as attribute text.
func usesText(p *xmlgen.Program) bool {
	for _, proc := range p.Procedures {
		for _, s := range proc.Steps {
			if a, ok := s.(*xmlgen.AttrStep); ok && a.Value.Text {
				return true
			}
		}
	}
	return false
}

// textHelper writes the function formatting associated values the way
// Program.Write does: String when available, else the pointed to value.
func (r *renderer) textHelper() {
	r.printf("func text(v any) string {\n")
	r.printf("if s, ok := v.(fmt.Stringer); ok {\nreturn s.String()\n}\n")
	r.printf("rv := reflect.ValueOf(v)\n")
	r.printf("for rv.Kind() == reflect.Pointer && !rv.IsNil() {\nrv = rv.Elem()\n}\n")
	r.printf("return fmt.Sprint(rv.Interface())\n")
	r.printf("}\n")
}

func (r *renderer) structType(c *model.Class) {
	r.printf("// %s is the model class %s.\n", typeName(c), c.Name)
	fields := c.AllFields(r.p.Version)
	if len(fields) == 0 {
		r.printf("type %s struct{}\n\n", typeName(c))
		return
	}
	r.printf("type %s struct {\n", typeName(c))
	for _, f := range fields {
		r.printf("\t%s %s\n", xmlgen.GoName(f.Name), fieldType(f))
	}
	r.printf("}\n\n")
}

func (r *renderer) entry() {
	pp := r.p.Pretty
	root := r.p.Root
	v := varName(root.Class)
	r.printf("// PrettyPrint is the serialization used by Write.\n")
	r.printf("var PrettyPrint = xmltree.PrettyPrint{Indent: %q, LineSeparator: %q, Declaration: %t, Compact: %t}\n\n",
		pp.Indent, pp.LineSeparator, pp.Declaration, pp.Compact)
	r.printf("// Write writes %s as an XML document to w.\n", v)
	r.printf("func Write(w io.Writer, %s *%s) error {\n", v, typeName(root.Class))
	r.printf("if %s == nil {\nreturn errors.New(%q)\n}\n", v, xmlgen.ErrAbsentRoot.Error())
	r.printf("doc := xmltree.NewDocument()\n")
	r.printf("%s(%s, %q, doc)\n", root.Name, v, r.p.RootTag)
	r.printf("return xmltree.Serialize(doc, w, PrettyPrint)\n")
	r.printf("}\n\n")
}

func (r *renderer) procedure(proc *xmlgen.Procedure) {
	v := varName(proc.Class)
	r.printf("func %s(%s *%s, tagName string, parent *xmltree.Node) {\n", proc.Name, v, typeName(proc.Class))
	r.printf("if %s == nil {\nreturn\n}\n", v)
	if len(proc.Steps) == 0 {
		r.printf("parent.AddElement(tagName)\n}\n\n")
		return
	}
	r.printf("element := parent.AddElement(tagName)\n")
	for _, s := range proc.Steps {
		x := v + "." + xmlgen.GoName(s.Field().Name)
		cond := condition(s, x)
		if cond != "" {
			r.printf("if %s {\n", cond)
		}
		r.step(s, x)
		if cond != "" {
			r.printf("}\n")
		}
	}
	r.printf("}\n\n")
}

func (r *renderer) step(s xmlgen.Step, x string) {
	nullable := false
	if sc, ok := s.Field().Kind.(*model.Scalar); ok {
		nullable = sc.Nullable
	}
	switch s := s.(type) {
	case *xmlgen.AttrStep:
		r.printf("element.SetAttr(%q, %s)\n", s.Name, valueExpr(s.Value, x, nullable))
	case *xmlgen.TextStep:
		r.printf("element.AddElement(%q).SetText(%s)\n", s.Tag, valueExpr(s.Value, x, nullable))
	case *xmlgen.FragmentStep:
		r.printf("xmltree.CopyFragment(%s, element)\n", x)
	case *xmlgen.CallStep:
		r.printf("%s(%s, %q, element)\n", xmlgen.ProcedureName(s.Target), x, s.Tag)
	case *xmlgen.ListStep:
		container := r.container(s.Wrapper, "listElement")
		if s.Target != nil {
			r.printf("for _, o := range %s {\n", x)
			r.printf("%s(o, %q, %s)\n", xmlgen.ProcedureName(s.Target), s.ItemTag, container)
		} else {
			r.printf("for _, item := range %s {\n", x)
			r.printf("%s.AddElement(%q).SetText(%s)\n", container, s.ItemTag, valueExpr(s.Item, "item", false))
		}
		r.printf("}\n")
	case *xmlgen.MapStep:
		container := r.container(s.Wrapper, "mapElement")
		r.printf("for _, key := range slices.Sorted(maps.Keys(%s)) {\n", x)
		value := valueExpr(s.Value, x+"[key]", false)
		if s.Exploded {
			r.printf("entry := %s.AddElement(%q)\n", container, s.EntryTag)
			r.printf("entry.AddElement(\"key\").SetText(key)\n")
			r.printf("entry.AddElement(\"value\").SetText(%s)\n", value)
		} else {
			r.printf("%s.AddElement(key).SetText(%s)\n", container, value)
		}
		r.printf("}\n")
	}
}

// container declares the wrapper element of a collection and returns the
// variable holding the element items are added to.
func (r *renderer) container(wrapper, name string) string {
	if wrapper == "" {
		return "element"
	}
	r.printf("%s := element.AddElement(%q)\n", name, wrapper)
	return name
}

// condition is the Go form of the presence check of s on x, empty when
// the value is always written.
func condition(s xmlgen.Step, x string) string {
	p := s.Presence()
	switch p.Check {
	case xmlgen.NonNil:
		return x + " != nil"
	case xmlgen.NonEmpty:
		return "len(" + x + ") > 0"
	case xmlgen.NonEmptyString:
		if p.HasDefault {
			return fmt.Sprintf("%s != \"\" && %s != %q", x, x, p.Default)
		}
		return x + ` != ""`
	case xmlgen.NonZeroDate:
		return "!" + x + ".IsZero()"
	case xmlgen.NotDefault:
		return x + " != " + literal(s.Field(), p.Default)
	}
	return ""
}

// literal is the Go constant for the default def of f.
func literal(f *model.Field, def string) string {
	sc, ok := f.Kind.(*model.Scalar)
	if ok && sc.Type == model.Boolean {
		b, _ := strconv.ParseBool(def)
		return strconv.FormatBool(b)
	}
	return def
}

// valueExpr is the Go expression formatting x with vf.
func valueExpr(vf xmlgen.ValueFormat, x string, nullable bool) string {
	if nullable {
		x = "*" + x
	}
	switch {
	case vf.Text:
		return "text(" + x + ")"
	case vf.Type == model.Date:
		return dateExpr(vf.Date, x)
	case vf.Type == model.Boolean:
		return "strconv.FormatBool(" + x + ")"
	case vf.Type == model.Number:
		switch vf.Number {
		case model.Int:
			return "strconv.Itoa(" + x + ")"
		case model.Long:
			return "strconv.FormatInt(" + x + ", 10)"
		case model.Short, model.Byte:
			return "strconv.FormatInt(int64(" + x + "), 10)"
		case model.Float:
			return "strconv.FormatFloat(float64(" + x + "), 'g', -1, 32)"
		case model.Double:
			return "strconv.FormatFloat(" + x + ", 'g', -1, 64)"
		}
	}
	return x
}

func dateExpr(df *xmlgen.DateFormat, x string) string {
	if layout, ok := df.Layout(); ok {
		return x + ".Format(" + strconv.Quote(layout) + ")"
	}
	var parts []string
	for _, c := range df.Chunks() {
		if c.Layout == "" {
			parts = append(parts, strconv.Quote(c.Literal))
			continue
		}
		parts = append(parts, x+".Format("+strconv.Quote(c.Layout)+")")
	}
	return strings.Join(parts, " + ")
}

// locals are the names generated functions declare themselves.
var locals = map[string]bool{
	"element": true, "tagName": true, "parent": true, "listElement": true,
	"mapElement": true, "entry": true, "key": true, "o": true, "item": true,
	"doc": true, "w": true, "text": true,
	"errors": true, "fmt": true, "io": true, "maps": true, "reflect": true, "slices": true,
	"strconv": true, "time": true, "xmltree": true,
}

// varName is the parameter name of the procedure of c.
func varName(c *model.Class) string {
	v := xmlgen.Uncapitalize(typeName(c))
	if locals[v] || token.IsKeyword(v) || isPredeclared(v) {
		v += "Value"
	}
	return v
}

func isPredeclared(s string) bool {
	switch s {
	case "bool", "byte", "complex64", "complex128", "error", "float32", "float64",
		"int", "int8", "int16", "int32", "int64", "rune", "string",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "any",
		"true", "false", "iota", "nil", "append", "cap", "clear", "close", "complex",
		"copy", "delete", "imag", "len", "make", "max", "min", "new", "panic",
		"print", "println", "real", "recover":
		return true
	}
	return false
}
