package model

import "fmt"

// Schema is a resolved object model: an ordered list of classes together
// with their XML mapping metadata.
type Schema struct {
	// Name is the model name, used for diagnostics and the generated file header
	Name string

	// Package is the Go package name for generated code (optional)
	Package string

	// Classes in declaration order
	Classes []*Class
}

// Class is one modeled class.
type Class struct {
	// Name is the class name, e.g. "Dependency"
	Name string

	// SuperClass is the class whose fields are inherited (optional)
	SuperClass *Class

	// Fields in declaration order, which is also emission order
	Fields []*Field

	// RootElement marks the class as the document root candidate
	RootElement bool

	// TagName overrides the document element name of a root class (optional)
	TagName string

	// Enabled is false for classes that are skipped by generation
	Enabled bool

	// Version restricts the versions of the model the class exists in
	Version VersionRange
}

// Field is one field of a class.
type Field struct {
	// Name is the model field name
	Name string

	// Kind is the resolved field kind: *Scalar, *Single or *Many
	Kind Kind

	// Attribute emits the field as an XML attribute of its class element
	Attribute bool

	// TagName overrides the element or attribute name (optional)
	TagName string

	// AssociationTagName overrides the singular item tag of a collection (optional)
	AssociationTagName string

	// ListStyle selects wrapped or inline collections
	ListStyle ListStyle

	// MapStyle selects exploded or inline map entries
	MapStyle MapStyle

	// DateFormat is a date pattern such as "yyyy-MM-dd" (optional)
	DateFormat string

	// Default is the declared default value, meaningful when HasDefault is set
	Default    string
	HasDefault bool

	// Version restricts the versions of the model the field exists in
	Version VersionRange
}

// Kind is the closed set of field kinds.
type Kind interface {
	kind()
	String() string
}

// ScalarType enumerates the scalar field types.
type ScalarType int

const (
	String ScalarType = iota
	Date
	Number
	Boolean
	Fragment
)

func (t ScalarType) String() string {
	switch t {
	case String:
		return "String"
	case Date:
		return "Date"
	case Number:
		return "Number"
	case Boolean:
		return "Boolean"
	case Fragment:
		return "DOM"
	default:
		return fmt.Sprintf("ScalarType(%d)", int(t))
	}
}

// NumberType refines Number scalars with their width.
type NumberType int

const (
	Int NumberType = iota
	Long
	Short
	Byte
	Float
	Double
)

func (n NumberType) String() string {
	switch n {
	case Int:
		return "int"
	case Long:
		return "long"
	case Short:
		return "short"
	case Byte:
		return "byte"
	case Float:
		return "float"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("NumberType(%d)", int(n))
	}
}

// IsFloat reports whether n is a floating point type.
func (n NumberType) IsFloat() bool {
	return n == Float || n == Double
}

// Container enumerates the collection kinds of a many-association.
type Container int

const (
	List Container = iota
	Set
	Map
)

func (c Container) String() string {
	switch c {
	case List:
		return "List"
	case Set:
		return "Set"
	case Map:
		return "Map"
	default:
		return fmt.Sprintf("Container(%d)", int(c))
	}
}

// ListStyle controls whether collection items get a wrapper element.
type ListStyle int

const (
	Inline ListStyle = iota
	Wrapped
)

func (s ListStyle) String() string {
	if s == Wrapped {
		return "wrapped"
	}
	return "inline"
}

// MapStyle controls how map entries are emitted.
type MapStyle int

const (
	InlineMap MapStyle = iota
	Exploded
)

func (s MapStyle) String() string {
	if s == Exploded {
		return "explode"
	}
	return "inline"
}

// Scalar is a field holding a single scalar value.
type Scalar struct {
	Type ScalarType

	// Number is the width of Number scalars
	Number NumberType

	// Nullable marks boxed numbers and booleans, which are absent when nil
	Nullable bool
}

// Single is a one-to-one association.
type Single struct {
	Target *Class
}

// Many is a one-to-many association.
type Many struct {
	// Target is the item class, nil when items are scalars
	Target *Class

	// Item is the scalar item type, used when Target is nil
	Item Scalar

	Container Container
}

func (*Scalar) kind() {}
func (*Single) kind() {}
func (*Many) kind()   {}

func (s *Scalar) String() string {
	if s.Type == Number {
		return s.Number.String()
	}
	return s.Type.String()
}

func (s *Single) String() string {
	return "association(" + s.Target.Name + ")"
}

func (m *Many) String() string {
	item := m.Item.String()
	if m.Target != nil {
		item = m.Target.Name
	}
	return m.Container.String() + "(" + item + ")"
}

// Class returns the class named name, or nil.
func (s *Schema) Class(name string) *Class {
	for _, c := range s.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IsModeled reports whether c is one of the schema's classes.
func (s *Schema) IsModeled(c *Class) bool {
	if c == nil {
		return false
	}
	for _, sc := range s.Classes {
		if sc == c {
			return true
		}
	}
	return false
}
