package xmltree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	smithyxml "github.com/aws/smithy-go/encoding/xml"
	"github.com/beevik/etree"
)

const (
	declaration     = `<?xml version="1.0" encoding="UTF-8"?>`
	declarationInst = `version="1.0" encoding="UTF-8"`
)

// PrettyPrint configures Serialize.
type PrettyPrint struct {
	// Indent is the per-level indentation, spaces or a single tab
	// (default two spaces)
	Indent string

	// LineSeparator ends every line, "\n" or "\r\n" (default "\n")
	LineSeparator string

	// Declaration writes the XML declaration first
	Declaration bool

	// Compact writes the tree without any line breaks or indentation
	Compact bool
}

// DefaultPrettyPrint is two space indentation, "\n" line separators and a
// declaration.
func DefaultPrettyPrint() PrettyPrint {
	return PrettyPrint{Indent: "  ", LineSeparator: "\n", Declaration: true}
}

func (pp PrettyPrint) withDefaults() PrettyPrint {
	if pp.Indent == "" {
		pp.Indent = "  "
	}
	if pp.LineSeparator == "" {
		pp.LineSeparator = "\n"
	}
	return pp
}

var errNotDocument = errors.New("xmltree: serialize needs a document with a root element")

// Serialize writes the document doc to w. Errors from w are returned
// unmodified.
func Serialize(doc *Node, w io.Writer, pp PrettyPrint) error {
	root := doc
	if doc.IsDocument() {
		root = doc.Root()
	}
	if root == nil {
		return errNotDocument
	}
	if pp.Compact {
		return serializeCompact(root, w, pp)
	}
	settings, err := pp.withDefaults().indentSettings()
	if err != nil {
		return err
	}
	// indenting adds whitespace to the tree, so a copy is indented
	out := etree.NewDocument()
	if pp.Declaration {
		out.CreateProcInst("xml", declarationInst)
	}
	out.AddChild(root.el.Copy())
	out.IndentWithSettings(settings)
	out.WriteSettings.CanonicalText = true
	out.WriteSettings.CanonicalAttrVal = true
	_, err = out.WriteTo(w)
	return err
}

// Validate reports indentation or line separators the serializer cannot
// write. Compact configurations are always valid.
func (pp PrettyPrint) Validate() error {
	if pp.Compact {
		return nil
	}
	_, err := pp.withDefaults().indentSettings()
	return err
}

func (pp PrettyPrint) indentSettings() (*etree.IndentSettings, error) {
	s := etree.NewIndentSettings()
	s.PreserveLeafWhitespace = true
	switch pp.LineSeparator {
	case "\n":
	case "\r\n":
		s.UseCRLF = true
	default:
		return nil, fmt.Errorf("xmltree: unsupported line separator %q", pp.LineSeparator)
	}
	switch {
	case strings.Trim(pp.Indent, " ") == "":
		s.Spaces = len(pp.Indent)
	case pp.Indent == "\t":
		s.UseTabs = true
	default:
		return nil, fmt.Errorf("xmltree: indent %q is neither spaces nor a tab", pp.Indent)
	}
	return s, nil
}

func serializeCompact(root *Node, w io.Writer, pp PrettyPrint) error {
	buf := bytes.NewBuffer(nil)
	if pp.Declaration {
		buf.WriteString(declaration)
	}
	enc := smithyxml.NewEncoder(buf)
	writeCompact(buf, enc.RootElement(startElement(root)), root)
	_, err := w.Write(buf.Bytes())
	return err
}

// writeCompact writes the content and end tag of n; the start tag has
// already been written by the encoder.
func writeCompact(buf *bytes.Buffer, v smithyxml.Value, n *Node) {
	text, hasText := n.Text()
	if len(n.children) == 0 {
		if hasText {
			v.String(text)
			return
		}
		v.Close()
		return
	}
	if hasText {
		// mixed content: the encoder only writes text as the last thing
		// before an end tag, so the text goes straight to the buffer.
		textEscaper.WriteString(buf, text)
	}
	for _, c := range n.children {
		writeCompact(buf, v.MemberElement(startElement(c)), c)
	}
	v.Close()
}

func startElement(n *Node) smithyxml.StartElement {
	el := smithyxml.StartElement{Name: smithyxml.Name{Local: n.Name()}}
	for _, a := range n.Attrs() {
		el.Attr = append(el.Attr, smithyxml.NewAttribute(a.Name, a.Value))
	}
	return el
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)
