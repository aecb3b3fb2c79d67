package model

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/xmlgen/format"
)

// The on-disk model document. Field names follow the modello vocabulary
// so existing models translate line by line.
type schemaDoc struct {
	Name    string     `yaml:"name"`
	Package string     `yaml:"package"`
	Classes []classDoc `yaml:"classes"`
}

type classDoc struct {
	Name        string     `yaml:"name"`
	SuperClass  string     `yaml:"superClass"`
	RootElement bool       `yaml:"rootElement"`
	Enabled     *bool      `yaml:"enabled"`
	Version     string     `yaml:"version"`
	Fields      []fieldDoc `yaml:"fields"`
	XML         struct {
		TagName string `yaml:"tagName"`
	} `yaml:"xml"`
}

type fieldDoc struct {
	Name         string          `yaml:"name"`
	Type         string          `yaml:"type"`
	Version      string          `yaml:"version"`
	DefaultValue any             `yaml:"defaultValue"`
	Association  *associationDoc `yaml:"association"`
	XML          xmlDoc          `yaml:"xml"`
}

type associationDoc struct {
	To           string `yaml:"to"`
	Multiplicity string `yaml:"multiplicity"`
	Container    string `yaml:"container"`
}

type xmlDoc struct {
	Attribute          bool   `yaml:"attribute"`
	TagName            string `yaml:"tagName"`
	AssociationTagName string `yaml:"associationTagName"`
	ListStyle          string `yaml:"listStyle"`
	MapStyle           string `yaml:"mapStyle"`
	Format             string `yaml:"format"`
}

var scalarTypes = map[string]Scalar{
	"String":  {Type: String},
	"Date":    {Type: Date},
	"DOM":     {Type: Fragment},
	"boolean": {Type: Boolean},
	"Boolean": {Type: Boolean, Nullable: true},
	"int":     {Type: Number, Number: Int},
	"Integer": {Type: Number, Number: Int, Nullable: true},
	"long":    {Type: Number, Number: Long},
	"Long":    {Type: Number, Number: Long, Nullable: true},
	"short":   {Type: Number, Number: Short},
	"Short":   {Type: Number, Number: Short, Nullable: true},
	"byte":    {Type: Number, Number: Byte},
	"Byte":    {Type: Number, Number: Byte, Nullable: true},
	"float":   {Type: Number, Number: Float},
	"Float":   {Type: Number, Number: Float, Nullable: true},
	"double":  {Type: Number, Number: Double},
	"Double":  {Type: Number, Number: Double, Nullable: true},
}

var containers = map[string]Container{
	"":           List,
	"List":       List,
	"Set":        Set,
	"Map":        Map,
	"Properties": Map,
}

// LoadOption configures Load.
type LoadOption func(*loadState)

type loadState struct {
	format   format.Format
	overlays [][]byte
}

// LoadFormat sets the format of the model document (default YAML).
func LoadFormat(f format.Format) LoadOption {
	return func(ls *loadState) { ls.format = f }
}

// LoadOverlay adds a patch applied to the model document before it is
// decoded. See ApplyOverlay.
func LoadOverlay(patch []byte) LoadOption {
	return func(ls *loadState) { ls.overlays = append(ls.overlays, patch) }
}

// LoadFile reads and resolves the model at path. The format is taken from
// the file suffix unless given by an option.
func LoadFile(path string, opts ...LoadOption) (*Schema, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if f, ok := format.FromPath(path); ok {
		opts = append([]LoadOption{LoadFormat(f)}, opts...)
	}
	s, err := Load(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Load decodes and resolves a model document.
func Load(d []byte, opts ...LoadOption) (*Schema, error) {
	ls := &loadState{format: format.YAMLFormat}
	for _, opt := range opts {
		opt(ls)
	}
	if len(ls.overlays) > 0 {
		var err error
		d, err = applyOverlays(d, ls.format, ls.overlays)
		if err != nil {
			return nil, err
		}
	}
	doc := &schemaDoc{}
	if err := yaml.UnmarshalWithOptions(d, doc, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("could not decode model: %w", err)
	}
	return doc.resolve()
}

func (doc *schemaDoc) resolve() (*Schema, error) {
	s := &Schema{Name: doc.Name, Package: doc.Package}
	for i := range doc.Classes {
		cd := &doc.Classes[i]
		c := &Class{Name: cd.Name, RootElement: cd.RootElement, TagName: cd.XML.TagName, Enabled: true}
		if cd.Enabled != nil {
			c.Enabled = *cd.Enabled
		}
		vr, err := ParseVersionRange(cd.Version)
		if err != nil {
			return nil, &ConfigurationError{Class: cd.Name, Message: "bad version range", Err: err}
		}
		c.Version = vr
		s.Classes = append(s.Classes, c)
	}
	for i := range doc.Classes {
		cd := &doc.Classes[i]
		c := s.Classes[i]
		if cd.SuperClass != "" {
			c.SuperClass = s.Class(cd.SuperClass)
			if c.SuperClass == nil {
				return nil, configErr(c, nil, "unknown superclass %s", cd.SuperClass)
			}
		}
		for j := range cd.Fields {
			f, err := s.resolveField(c, &cd.Fields[j])
			if err != nil {
				return nil, err
			}
			c.Fields = append(c.Fields, f)
		}
	}
	return s, nil
}

func (s *Schema) resolveField(c *Class, fd *fieldDoc) (*Field, error) {
	f := &Field{
		Name:               fd.Name,
		Attribute:          fd.XML.Attribute,
		TagName:            fd.XML.TagName,
		AssociationTagName: fd.XML.AssociationTagName,
		DateFormat:         fd.XML.Format,
	}
	vr, err := ParseVersionRange(fd.Version)
	if err != nil {
		return nil, &ConfigurationError{Class: c.Name, Field: fd.Name, Message: "bad version range", Err: err}
	}
	f.Version = vr
	if fd.DefaultValue != nil {
		f.Default = fmt.Sprint(fd.DefaultValue)
		f.HasDefault = true
	}
	switch strings.ToLower(fd.XML.ListStyle) {
	case "", "inline", "flat":
		f.ListStyle = Inline
	case "wrapped":
		f.ListStyle = Wrapped
	default:
		return nil, configErr(c, f, "unknown list style %q", fd.XML.ListStyle)
	}
	switch strings.ToLower(fd.XML.MapStyle) {
	case "", "inline":
		f.MapStyle = InlineMap
	case "explode", "exploded":
		f.MapStyle = Exploded
	default:
		return nil, configErr(c, f, "unknown map style %q", fd.XML.MapStyle)
	}
	kind, err := s.resolveKind(c, fd)
	if err != nil {
		return nil, err
	}
	f.Kind = kind
	return f, nil
}

func (s *Schema) resolveKind(c *Class, fd *fieldDoc) (Kind, error) {
	unsupported := func(t string) error {
		return &UnsupportedFieldTypeError{Class: c.Name, Field: fd.Name, Type: t}
	}
	a := fd.Association
	if a == nil {
		if sc, ok := scalarTypes[fd.Type]; ok {
			return &sc, nil
		}
		if target := s.Class(fd.Type); target != nil {
			return &Single{Target: target}, nil
		}
		if fd.Type == "" {
			return nil, &ConfigurationError{Class: c.Name, Field: fd.Name, Message: "field without a type"}
		}
		return nil, unsupported(fd.Type)
	}
	target := s.Class(a.To)
	switch a.Multiplicity {
	case "", "1":
		if target == nil {
			return nil, &ConfigurationError{Class: c.Name, Field: fd.Name, Message: fmt.Sprintf("unknown association target %q", a.To)}
		}
		return &Single{Target: target}, nil
	case "*":
	default:
		return nil, &ConfigurationError{Class: c.Name, Field: fd.Name, Message: fmt.Sprintf("bad multiplicity %q", a.Multiplicity)}
	}
	cname := a.Container
	if cname == "" {
		cname = fd.Type
	}
	cont, ok := containers[cname]
	if !ok {
		return nil, unsupported(cname)
	}
	m := &Many{Target: target, Container: cont}
	if target == nil {
		to := a.To
		if to == "" {
			to = "String"
		}
		sc, ok := scalarTypes[to]
		if !ok {
			return nil, unsupported(to)
		}
		m.Item = sc
	}
	return m, nil
}
