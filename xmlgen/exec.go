package xmlgen

import (
	"fmt"
	"io"

	"github.com/signadot/xmlgen/debug"
	"github.com/signadot/xmlgen/xmltree"
)

// TreeBuilder is the tree construction capability procedures are executed
// against. N is the node type of the tree.
type TreeBuilder[N any] interface {
	NewDocument() N
	AddChildElement(parent N, tagName string) N
	AddAttribute(el N, name, text string)
	SetText(el N, text string)
	Serialize(doc N, w io.Writer) error
}

// Write writes root as a document to w, using an xmltree.Builder with
// p.Pretty. Errors from w are returned unmodified.
func (p *Program) Write(w io.Writer, root any) error {
	return Execute[*xmltree.Node](p, xmltree.NewBuilder(p.Pretty), w, root)
}

// Execute is the entry procedure: it creates a document with b, writes
// root into it with the root procedure and serializes the document to w.
func Execute[N any](p *Program, b TreeBuilder[N], w io.Writer, root any) error {
	if isAbsent(root) {
		return &InstanceError{Class: p.Root.Class.Name, Err: ErrAbsentRoot}
	}
	doc := b.NewDocument()
	if err := WriteClass(p, b, p.Root.Class.Name, root, p.RootTag, doc); err != nil {
		return err
	}
	if debug.Exec() {
		debug.Logf("built %v\n", doc)
	}
	return b.Serialize(doc, w)
}

// WriteClass runs the procedure of class, writing inst as an element
// named tagName under parent. An absent inst writes nothing.
func WriteClass[N any](p *Program, b TreeBuilder[N], class string, inst any, tagName string, parent N) error {
	proc := p.Procedure(class)
	if proc == nil {
		return fmt.Errorf("no procedure for class %q", class)
	}
	x := &executor[N]{p: p, b: b}
	return x.run(proc, inst, tagName, parent)
}

type executor[N any] struct {
	p *Program
	b TreeBuilder[N]
}

func (x *executor[N]) run(proc *Procedure, inst any, tagName string, parent N) error {
	if isAbsent(inst) {
		return nil
	}
	if debug.Exec() {
		debug.Logf("%s(%T, %q)\n", proc.Name, inst, tagName)
	}
	el := x.b.AddChildElement(parent, tagName)
	for _, s := range proc.Steps {
		f := s.Field()
		v, err := fieldValue(inst, f.Name)
		if err != nil {
			return &InstanceError{Class: proc.Class.Name, Field: f.Name, Err: err}
		}
		if !s.Presence().Present(v) {
			continue
		}
		if err := x.step(s, v, el); err != nil {
			if _, ok := err.(*InstanceError); ok {
				return err
			}
			return &InstanceError{Class: proc.Class.Name, Field: f.Name, Err: err}
		}
	}
	return nil
}

func (x *executor[N]) step(s Step, v any, el N) error {
	switch s := s.(type) {
	case *AttrStep:
		text, err := s.Value.Format(v)
		if err != nil {
			return err
		}
		x.b.AddAttribute(el, s.Name, text)

	case *TextStep:
		text, err := s.Value.Format(v)
		if err != nil {
			return err
		}
		x.b.SetText(x.b.AddChildElement(el, s.Tag), text)

	case *FragmentStep:
		frag, err := asFragment(v)
		if err != nil {
			return err
		}
		copyFragment(x.b, frag, el)

	case *CallStep:
		return x.run(x.p.Procedure(s.Target.Name), v, s.Tag, el)

	case *ListStep:
		vs, err := items(v)
		if err != nil {
			return err
		}
		container := el
		if s.Wrapper != "" {
			container = x.b.AddChildElement(el, s.Wrapper)
		}
		for _, item := range vs {
			if s.Target != nil {
				if err := x.run(x.p.Procedure(s.Target.Name), item, s.ItemTag, container); err != nil {
					return err
				}
				continue
			}
			if isAbsent(item) {
				continue
			}
			text, err := s.Item.Format(item)
			if err != nil {
				return err
			}
			x.b.SetText(x.b.AddChildElement(container, s.ItemTag), text)
		}

	case *MapStep:
		es, err := entries(v)
		if err != nil {
			return err
		}
		container := el
		if s.Wrapper != "" {
			container = x.b.AddChildElement(el, s.Wrapper)
		}
		for _, e := range es {
			text := ""
			if !isAbsent(e.Value) {
				if text, err = s.Value.Format(e.Value); err != nil {
					return err
				}
			}
			if !s.Exploded {
				x.b.SetText(x.b.AddChildElement(container, e.Key), text)
				continue
			}
			entry := x.b.AddChildElement(container, s.EntryTag)
			x.b.SetText(x.b.AddChildElement(entry, "key"), e.Key)
			x.b.SetText(x.b.AddChildElement(entry, "value"), text)
		}

	default:
		return fmt.Errorf("unknown step %T", s)
	}
	return nil
}

// copyFragment copies f under parent with b: name, text if any, every
// attribute and every child in order.
func copyFragment[N any](b TreeBuilder[N], f xmltree.Fragment, parent N) {
	el := b.AddChildElement(parent, f.Name())
	if text, ok := f.Text(); ok {
		b.SetText(el, text)
	}
	for _, name := range f.AttributeNames() {
		b.AddAttribute(el, name, f.Attribute(name))
	}
	for _, c := range f.Children() {
		copyFragment(b, c, el)
	}
}
