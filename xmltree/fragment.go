package xmltree

// Fragment is a type-erased XML subtree carried through a model as an
// opaque value (a modello "DOM" field).
type Fragment interface {
	Name() string
	// Text returns the text content and whether there is any.
	Text() (string, bool)
	AttributeNames() []string
	Attribute(name string) string
	Children() []Fragment
}

// CopyFragment copies f as a new child of parent, preserving names, text,
// attributes and child order, and returns the copy.
func CopyFragment(f Fragment, parent *Node) *Node {
	el := parent.AddElement(f.Name())
	if text, ok := f.Text(); ok {
		el.SetText(text)
	}
	for _, name := range f.AttributeNames() {
		el.SetAttr(name, f.Attribute(name))
	}
	for _, c := range f.Children() {
		CopyFragment(c, el)
	}
	return el
}

// Clone returns a detached deep copy of f as a *Node.
func Clone(f Fragment) *Node {
	tmp := NewDocument()
	return CopyFragment(f, tmp)
}
