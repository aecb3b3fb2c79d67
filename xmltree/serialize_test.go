package xmltree

import (
	"bytes"
	"errors"
	"testing"
)

func sampleDoc() *Node {
	doc := NewDocument()
	p := doc.AddElement("project").SetAttr("id", "x")
	p.AddElement("name").SetText("demo")
	p.AddElement("empty")
	deps := p.AddElement("dependencies")
	deps.AddElement("dependency").SetText("a")
	return doc
}

func TestSerializePretty(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Serialize(sampleDoc(), buf, DefaultPrettyPrint()); err != nil {
		t.Fatal(err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>
<project id="x">
  <name>demo</name>
  <empty/>
  <dependencies>
    <dependency>a</dependency>
  </dependencies>
</project>
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestSerializeLineSeparator(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	pp := PrettyPrint{Indent: "\t", LineSeparator: "\r\n"}
	if err := Serialize(sampleDoc(), buf, pp); err != nil {
		t.Fatal(err)
	}
	want := "<project id=\"x\">\r\n\t<name>demo</name>\r\n\t<empty/>\r\n\t<dependencies>\r\n\t\t<dependency>a</dependency>\r\n\t</dependencies>\r\n</project>\r\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestSerializeEscapes(t *testing.T) {
	doc := NewDocument()
	doc.AddElement("a").SetAttr("q", `1 < "2"`).SetText("x & y > z")
	buf := bytes.NewBuffer(nil)
	if err := Serialize(doc, buf, PrettyPrint{}); err != nil {
		t.Fatal(err)
	}
	want := "<a q=\"1 &lt; &quot;2&quot;\">x &amp; y &gt; z</a>\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestSerializeCompact(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Serialize(sampleDoc(), buf, PrettyPrint{Compact: true}); err != nil {
		t.Fatal(err)
	}
	want := `<project id="x"><name>demo</name><empty></empty><dependencies><dependency>a</dependency></dependencies></project>`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestSerializeEmptyDocument(t *testing.T) {
	if err := Serialize(NewDocument(), &bytes.Buffer{}, PrettyPrint{}); err == nil {
		t.Fatal("expected an error for a document without root")
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestSerializeWriterErrorUnmodified(t *testing.T) {
	sinkErr := errors.New("disk full")
	for _, pp := range []PrettyPrint{DefaultPrettyPrint(), {Compact: true}} {
		err := Serialize(sampleDoc(), failWriter{sinkErr}, pp)
		if err != sinkErr {
			t.Errorf("compact=%v: got %v, want the sink error itself", pp.Compact, err)
		}
	}
}

func TestSerializeLeavesTreeUnchanged(t *testing.T) {
	doc := sampleDoc()
	first := bytes.NewBuffer(nil)
	if err := Serialize(doc, first, DefaultPrettyPrint()); err != nil {
		t.Fatal(err)
	}
	second := bytes.NewBuffer(nil)
	if err := Serialize(doc, second, DefaultPrettyPrint()); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("second serialization differs:\n%s\n%s", first, second)
	}
	if _, ok := doc.Root().Text(); ok {
		t.Error("indentation leaked into the tree as text")
	}
	if n := len(doc.Root().Elements()); n != 3 {
		t.Errorf("root has %d elements, want 3", n)
	}
}

func TestPrettyPrintValidate(t *testing.T) {
	cases := []struct {
		name string
		pp   PrettyPrint
		ok   bool
	}{
		{"default", DefaultPrettyPrint(), true},
		{"zero", PrettyPrint{}, true},
		{"crlf tab", PrettyPrint{Indent: "\t", LineSeparator: "\r\n"}, true},
		{"four spaces", PrettyPrint{Indent: "    "}, true},
		{"cr", PrettyPrint{LineSeparator: "\r"}, false},
		{"mixed indent", PrettyPrint{Indent: " \t"}, false},
		{"compact ignores layout", PrettyPrint{Compact: true, LineSeparator: "\r"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.pp.Validate()
			if (err == nil) != c.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, c.ok)
			}
			if c.ok || c.pp.Compact {
				return
			}
			if err := Serialize(sampleDoc(), &bytes.Buffer{}, c.pp); err == nil {
				t.Error("Serialize accepted an invalid layout")
			}
		})
	}
}

func TestSerializeQualifiedNames(t *testing.T) {
	doc := NewDocument()
	doc.AddElement("x:a").SetAttr("xml:lang", "en").SetText("t")
	root := doc.Root()
	if root.Name() != "x:a" || root.Attribute("xml:lang") != "en" {
		t.Fatalf("name %q lang %q", root.Name(), root.Attribute("xml:lang"))
	}
	buf := bytes.NewBuffer(nil)
	if err := Serialize(doc, buf, PrettyPrint{}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "<x:a xml:lang=\"en\">t</x:a>\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
