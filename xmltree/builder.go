package xmltree

import "io"

// Builder builds *Node trees and serializes them with Pretty. It is the
// tree-construction capability generated writers are executed against.
type Builder struct {
	Pretty PrettyPrint
}

// NewBuilder returns a Builder using pp.
func NewBuilder(pp PrettyPrint) *Builder {
	return &Builder{Pretty: pp}
}

func (b *Builder) NewDocument() *Node {
	return NewDocument()
}

func (b *Builder) AddChildElement(parent *Node, tagName string) *Node {
	return parent.AddElement(tagName)
}

func (b *Builder) AddAttribute(el *Node, name, text string) {
	el.SetAttr(name, text)
}

func (b *Builder) SetText(el *Node, text string) {
	el.SetText(text)
}

func (b *Builder) Serialize(doc *Node, w io.Writer) error {
	return Serialize(doc, w, b.Pretty)
}
