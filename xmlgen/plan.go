package xmlgen

import (
	"fmt"
	"strings"

	"github.com/signadot/xmlgen/model"
	"github.com/signadot/xmlgen/xmltree"
)

// Program is the generated serializer of a schema: one procedure per
// enabled class and the root procedure used by the entry point. A Program
// is immutable and may be executed concurrently.
type Program struct {
	Schema  *model.Schema
	Version string

	// Root writes the document element, named RootTag
	Root    *Procedure
	RootTag string

	// Procedures in schema order
	Procedures []*Procedure

	// Pretty is the serialization used by Write
	Pretty xmltree.PrettyPrint

	// Cycles are the association cycles of the schema
	Cycles []*Cycle

	byClass map[string]*Procedure
}

// Procedure returns the procedure writing class, or nil.
func (p *Program) Procedure(class string) *Procedure {
	return p.byClass[class]
}

func (p *Program) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "entry Write(w, %s) as <%s>\n", Uncapitalize(p.Root.Class.Name), p.RootTag)
	for _, proc := range p.Procedures {
		b.WriteString(proc.String())
	}
	return b.String()
}

// Procedure writes instances of one class: an element named by the
// caller, its attributes, then its content.
type Procedure struct {
	Class *model.Class
	Name  string

	// Steps in emission order, attribute steps first
	Steps []Step
}

func (p *Procedure) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s(%s, tagName, parent)\n", p.Name, Uncapitalize(p.Class.Name))
	for _, s := range p.Steps {
		fmt.Fprintf(b, "  %s <- %s %s\n", s, s.Field().Name, s.Presence())
	}
	return b.String()
}

// Step is one field emission. The set of steps is closed: *AttrStep,
// *TextStep, *FragmentStep, *CallStep, *ListStep and *MapStep.
type Step interface {
	Field() *model.Field
	Presence() Presence
	String() string
	step()
}

type stepBase struct {
	field    *model.Field
	presence Presence
}

func (s *stepBase) Field() *model.Field { return s.field }
func (s *stepBase) Presence() Presence  { return s.presence }
func (*stepBase) step()                 {}

// AttrStep adds an attribute to the class element.
type AttrStep struct {
	stepBase
	Name  string
	Value ValueFormat
}

func (s *AttrStep) String() string {
	return fmt.Sprintf("attribute %s (%s)", s.Name, s.Value)
}

// TextStep adds a child element holding the formatted value.
type TextStep struct {
	stepBase
	Tag   string
	Value ValueFormat
}

func (s *TextStep) String() string {
	return fmt.Sprintf("element <%s> (%s)", s.Tag, s.Value)
}

// FragmentStep copies a fragment under the class element.
type FragmentStep struct {
	stepBase
}

func (s *FragmentStep) String() string {
	return "fragment"
}

// CallStep writes a single association with the target procedure.
type CallStep struct {
	stepBase
	Tag    string
	Target *model.Class
}

func (s *CallStep) String() string {
	return fmt.Sprintf("%s as <%s>", ProcedureName(s.Target), s.Tag)
}

// ListStep writes the items of a list or set, inside a wrapper element
// when Wrapper is set.
type ListStep struct {
	stepBase
	Wrapper string
	ItemTag string

	// Target is the item class, nil for scalar items formatted with Item
	Target *model.Class
	Item   ValueFormat
}

func (s *ListStep) String() string {
	b := &strings.Builder{}
	b.WriteString("list ")
	if s.Wrapper != "" {
		fmt.Fprintf(b, "in <%s> ", s.Wrapper)
	}
	if s.Target != nil {
		fmt.Fprintf(b, "of %s as <%s>", ProcedureName(s.Target), s.ItemTag)
	} else {
		fmt.Fprintf(b, "of <%s> (%s)", s.ItemTag, s.Item)
	}
	return b.String()
}

// MapStep writes the entries of a map, inside a wrapper element when
// Wrapper is set. Exploded entries are EntryTag elements with key and
// value children; other entries are elements named by their key.
type MapStep struct {
	stepBase
	Wrapper  string
	Exploded bool
	EntryTag string
	Value    ValueFormat
}

func (s *MapStep) String() string {
	b := &strings.Builder{}
	b.WriteString("map ")
	if s.Wrapper != "" {
		fmt.Fprintf(b, "in <%s> ", s.Wrapper)
	}
	if s.Exploded {
		fmt.Fprintf(b, "of <%s><key/><value/></%s> (%s)", s.EntryTag, s.EntryTag, s.Value)
	} else {
		fmt.Fprintf(b, "of <key> (%s)", s.Value)
	}
	return b.String()
}

// emitted is the element name a step adds to the class element, empty
// when the name depends on the instance.
func emitted(s Step) string {
	switch s := s.(type) {
	case *TextStep:
		return s.Tag
	case *CallStep:
		return s.Tag
	case *ListStep:
		if s.Wrapper != "" {
			return s.Wrapper
		}
		return s.ItemTag
	case *MapStep:
		if s.Wrapper != "" {
			return s.Wrapper
		}
		if s.Exploded {
			return s.EntryTag
		}
	}
	return ""
}
