package xmltree

import (
	"github.com/beevik/etree"
)

// NodeKind distinguishes the document node from elements.
type NodeKind int

const (
	ElementNode NodeKind = iota
	DocumentNode
)

// Attr is one attribute of an element.
type Attr struct {
	Name  string
	Value string
}

// Node is a document or element node of an in-memory XML tree. The tree
// itself is an etree tree; Node keeps the child order of the element
// structure and whether text was set, which etree does not record for
// empty text.
//
// A *Node is also a Fragment, so trees built here can be passed through
// generated writers as opaque DOM values.
type Node struct {
	doc      *etree.Document
	el       *etree.Element
	hasText  bool
	children []*Node
}

// NewDocument returns an empty document node.
func NewDocument() *Node {
	d := etree.NewDocument()
	return &Node{doc: d, el: &d.Element}
}

// NewElement returns a detached element named name.
func NewElement(name string) *Node {
	return &Node{el: etree.NewElement(name)}
}

// AddElement appends a new child element named name and returns it.
func (n *Node) AddElement(name string) *Node {
	c := &Node{el: n.el.CreateElement(name)}
	n.children = append(n.children, c)
	return c
}

// AddChild appends c to the children of n.
func (n *Node) AddChild(c *Node) *Node {
	n.el.AddChild(c.el)
	n.children = append(n.children, c)
	return n
}

// SetAttr sets attribute name, replacing an existing value in place.
func (n *Node) SetAttr(name, value string) *Node {
	n.el.CreateAttr(name, value)
	return n
}

// SetText sets the text content of n.
func (n *Node) SetText(text string) *Node {
	n.el.SetText(text)
	n.hasText = true
	return n
}

func (n *Node) Kind() NodeKind {
	if n.doc != nil {
		return DocumentNode
	}
	return ElementNode
}

func (n *Node) IsDocument() bool { return n.doc != nil }
func (n *Node) Name() string     { return n.el.FullTag() }

// Text returns the text content of n and whether any was set.
func (n *Node) Text() (string, bool) {
	if !n.hasText {
		return "", false
	}
	return n.el.Text(), true
}

// Attrs returns the attributes of n in insertion order.
func (n *Node) Attrs() []Attr {
	res := make([]Attr, len(n.el.Attr))
	for i := range n.el.Attr {
		a := &n.el.Attr[i]
		res[i] = Attr{Name: a.FullKey(), Value: a.Value}
	}
	return res
}

func (n *Node) AttributeNames() []string {
	res := make([]string, len(n.el.Attr))
	for i := range n.el.Attr {
		res[i] = n.el.Attr[i].FullKey()
	}
	return res
}

func (n *Node) Attribute(name string) string {
	return n.el.SelectAttrValue(name, "")
}

// Elements returns the child elements of n.
func (n *Node) Elements() []*Node {
	return n.children
}

// Element returns the first child element named name, or nil.
func (n *Node) Element(name string) *Node {
	for _, c := range n.children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func (n *Node) Children() []Fragment {
	res := make([]Fragment, len(n.children))
	for i, c := range n.children {
		res[i] = c
	}
	return res
}

// Root returns the document element of a document node, or nil.
func (n *Node) Root() *Node {
	if n.doc == nil || len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}
