// Package xmltree is a small in-memory XML tree built on
// github.com/beevik/etree: a document node, elements with ordered
// attributes and children, opaque fragments and a serializer.
//
// # Usage
//
//	doc := xmltree.NewDocument()
//	project := doc.AddElement("project").SetAttr("id", "x")
//	project.AddElement("name").SetText("demo")
//	err := xmltree.Serialize(doc, os.Stdout, xmltree.DefaultPrettyPrint())
//
// Pretty printing is etree indentation with the indent and line separator
// of PrettyPrint rather than the platform's: spaces or a tab, LF or CRLF.
// Compact output is written with the smithy XML encoder.
//
// # Related Packages
//
//   - github.com/signadot/xmlgen/xmlgen - Generated writers build these trees
package xmltree
