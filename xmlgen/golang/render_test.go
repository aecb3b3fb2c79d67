package golang

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/xmlgen/model"
	"github.com/signadot/xmlgen/xmlgen"
)

const projectModel = `
name: project
package: pom
classes:
  - name: Project
    rootElement: true
    fields:
      - {name: id, type: String, xml: {attribute: true}}
      - {name: modelVersion, type: String, defaultValue: "4.0.0"}
      - {name: count, type: int}
      - {name: retries, type: long, defaultValue: 3}
      - {name: ratio, type: float}
      - {name: enabled, type: Boolean}
      - {name: strict, type: boolean, defaultValue: "True"}
      - {name: created, type: Date}
      - {name: year, type: Date, xml: {format: "'FY' yyyy"}}
      - name: items
        association: {to: String, multiplicity: "*"}
      - name: widgets
        association: {to: Widget, multiplicity: "*"}
        xml: {listStyle: wrapped}
      - name: params
        association: {to: String, multiplicity: "*", container: Map}
        xml: {mapStyle: explode}
      - name: props
        association: {to: String, multiplicity: "*", container: Properties}
        xml: {listStyle: wrapped}
      - {name: owner, type: Widget}
      - {name: ownerRef, type: Widget, xml: {attribute: true}}
      - {name: configuration, type: DOM}
  - name: Widget
    fields:
      - {name: size, type: Short}
  - name: Empty
`

func program(t *testing.T, src string) *xmlgen.Program {
	t.Helper()
	s, err := model.Load([]byte(src))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p, err := xmlgen.Generate(s, xmlgen.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return p
}

func render(t *testing.T, src string, cfg Config) string {
	t.Helper()
	code, err := Render(program(t, src), cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "gen.go", code, 0); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, code)
	}
	return string(code)
}

// hasLine reports whether code has a line equal to want up to white space.
func hasLine(code, want string) bool {
	want = strings.Join(strings.Fields(want), " ")
	for _, line := range strings.Split(code, "\n") {
		if strings.Join(strings.Fields(line), " ") == want {
			return true
		}
	}
	return false
}

func TestRenderProcedures(t *testing.T) {
	code := render(t, projectModel, Config{})
	for _, want := range []string{
		"// Code generated by xmlgen from model project. DO NOT EDIT.",
		"package pom",
		"func writeProject(project *Project, tagName string, parent *xmltree.Node) {",
		"element := parent.AddElement(tagName)",
		`element.SetAttr("id", project.Id)`,
		`element.SetAttr("ownerRef", text(project.OwnerRef))`,
		"func text(v any) string {",
		`if project.ModelVersion != "" && project.ModelVersion != "4.0.0" {`,
		`element.AddElement("count").SetText(strconv.Itoa(project.Count))`,
		"if project.Retries != 3 {",
		`element.AddElement("retries").SetText(strconv.FormatInt(project.Retries, 10))`,
		`element.AddElement("ratio").SetText(strconv.FormatFloat(float64(project.Ratio), 'g', -1, 32))`,
		`element.AddElement("enabled").SetText(strconv.FormatBool(*project.Enabled))`,
		"if project.Strict != true {",
		"if !project.Created.IsZero() {",
		`project.Created.Format("Monday, January 2, 2006 3:04:05 PM MST")`,
		`element.AddElement("year").SetText(project.Year.Format("FY 2006"))`,
		"for _, item := range project.Items {",
		`element.AddElement("item").SetText(item)`,
		`listElement := element.AddElement("widgets")`,
		`writeWidget(o, "widget", listElement)`,
		"for _, key := range slices.Sorted(maps.Keys(project.Params)) {",
		`entry := element.AddElement("param")`,
		`entry.AddElement("value").SetText(project.Params[key])`,
		`mapElement := element.AddElement("props")`,
		"mapElement.AddElement(key).SetText(project.Props[key])",
		`writeWidget(project.Owner, "owner", element)`,
		"xmltree.CopyFragment(project.Configuration, element)",
		`element.AddElement("size").SetText(strconv.FormatInt(int64(*widget.Size), 10))`,
		"func writeEmpty(empty *Empty, tagName string, parent *xmltree.Node) {",
		"func Write(w io.Writer, project *Project) error {",
		`writeProject(project, "project", doc)`,
		"return xmltree.Serialize(doc, w, PrettyPrint)",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("missing %q in:\n%s", want, code)
		}
	}
	if strings.Contains(code, "type Project struct") {
		t.Errorf("types generated without Config.Types:\n%s", code)
	}
}

func TestRenderTypes(t *testing.T) {
	code := render(t, projectModel, Config{Types: true, Package: "model2"})
	if !strings.Contains(code, "package model2") {
		t.Errorf("package not overridden:\n%s", code)
	}
	for _, want := range []string{
		"type Project struct {",
		"Id string",
		"Count int",
		"Retries int64",
		"Ratio float32",
		"Enabled *bool",
		"Created time.Time",
		"Items []string",
		"Widgets []*Widget",
		"Params map[string]string",
		"Owner *Widget",
		"Configuration xmltree.Fragment",
		"Size *int16",
		"type Empty struct{}",
	} {
		if !hasLine(code, want) {
			t.Errorf("missing line %q in:\n%s", want, code)
		}
	}
}

func TestRenderVarNames(t *testing.T) {
	code := render(t, `
classes:
  - name: Type
    rootElement: true
    fields:
      - {name: element, type: Element}
  - name: Element
    fields:
      - {name: value, type: String}
`, Config{Package: "x"})
	for _, want := range []string{
		"func writeType(typeValue *Type, tagName string, parent *xmltree.Node) {",
		"func writeElement(elementValue *Element, tagName string, parent *xmltree.Node) {",
		`writeElement(typeValue.Element, "element", element)`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("missing %q in:\n%s", want, code)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	p := program(t, `
classes:
  - {name: Write, rootElement: true}
`)
	if _, err := Render(p, Config{Types: true, Package: "x"}); err == nil {
		t.Error("expected an error for a class named Write")
	}
	if _, err := Render(p, Config{Package: "not-a-name"}); err == nil {
		t.Error("expected an error for a bad package name")
	}
}

func TestVerify(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	dir := t.TempDir()
	files := map[string]string{
		"go.mod": "module example.com/shelf\n\ngo 1.21\n",
		"shelf.go": `package shelf

type Shelf struct {
	Label string
	Count int
	Books []*Book
}

type Book string
`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	p := program(t, `
classes:
  - name: Shelf
    rootElement: true
    fields:
      - {name: label, type: String}
      - {name: count, type: Integer}
      - name: books
        association: {to: Book, multiplicity: "*"}
      - name: tags
        association: {to: String, multiplicity: "*", container: Map}
  - name: Book
    fields:
      - {name: title, type: String}
`)
	problems, err := Verify(p, dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"Shelf.Count has type int, want *int",
		"Shelf.Tags is not declared",
		"type Book is not a struct",
	}
	if diff := cmp.Diff(want, problems); diff != "" {
		t.Errorf("problems (-want +got):\n%s", diff)
	}
}
