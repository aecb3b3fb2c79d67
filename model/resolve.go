package model

import (
	"strconv"
	"strings"
)

// EnabledClasses returns the enabled classes present in version, in
// schema order.
func (s *Schema) EnabledClasses(version string) []*Class {
	var res []*Class
	for _, c := range s.Classes {
		if c.Enabled && c.Version.Contains(version) {
			res = append(res, c)
		}
	}
	return res
}

// Root returns the single root class of version.
func (s *Schema) Root(version string) (*Class, error) {
	var roots []*Class
	for _, c := range s.EnabledClasses(version) {
		if c.RootElement {
			roots = append(roots, c)
		}
	}
	switch len(roots) {
	case 1:
		return roots[0], nil
	case 0:
		if version == "" {
			return nil, configErr(nil, nil, "no root class")
		}
		return nil, configErr(nil, nil, "no root class for version %s", version)
	default:
		names := make([]string, len(roots))
		for i, r := range roots {
			names[i] = r.Name
		}
		return nil, configErr(nil, nil, "multiple root classes: %s", strings.Join(names, ", "))
	}
}

// AllFields returns the fields of c present in version, inherited fields
// first.
func (c *Class) AllFields(version string) []*Field {
	var res []*Field
	if c.SuperClass != nil {
		res = c.SuperClass.AllFields(version)
	}
	for _, f := range c.Fields {
		if f.Version.Contains(version) {
			res = append(res, f)
		}
	}
	return res
}

// Validate checks the structural invariants of the schema for version.
// It does not check emitted names; that needs the naming rules of the
// generator.
func (s *Schema) Validate(version string) error {
	seen := map[string]bool{}
	for _, c := range s.Classes {
		if c.Name == "" {
			return configErr(nil, nil, "class without a name")
		}
		if seen[c.Name] {
			return configErr(c, nil, "duplicate class name")
		}
		seen[c.Name] = true
	}
	for _, c := range s.Classes {
		if err := s.checkInheritance(c); err != nil {
			return err
		}
	}
	for _, c := range s.EnabledClasses(version) {
		names := map[string]bool{}
		for _, f := range c.AllFields(version) {
			if names[f.Name] {
				return configErr(c, f, "duplicate field name")
			}
			names[f.Name] = true
			if err := s.validateField(c, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Schema) checkInheritance(c *Class) error {
	visited := map[*Class]bool{}
	for sc := c; sc != nil; sc = sc.SuperClass {
		if visited[sc] {
			return configErr(c, nil, "inheritance cycle through %s", sc.Name)
		}
		visited[sc] = true
		if sc != c && !s.IsModeled(sc) {
			return configErr(c, nil, "superclass %s is not in the model", sc.Name)
		}
	}
	return nil
}

func (s *Schema) validateField(c *Class, f *Field) error {
	if f.Name == "" {
		return configErr(c, nil, "field without a name")
	}
	switch k := f.Kind.(type) {
	case *Scalar:
		if k.Type == Fragment {
			if f.Attribute {
				return &UnsupportedFieldTypeError{Class: c.Name, Field: f.Name, Type: "DOM attribute"}
			}
			if f.HasDefault {
				return configErr(c, f, "DOM fields cannot declare a default")
			}
		}
		if f.HasDefault {
			if err := checkDefault(c, f, k); err != nil {
				return err
			}
		}
	case *Single:
		if k.Target == nil {
			return configErr(c, f, "association without a target")
		}
		if !s.IsModeled(k.Target) {
			return configErr(c, f, "association target %s is not in the model", k.Target.Name)
		}
		if f.HasDefault {
			return configErr(c, f, "associations cannot declare a default")
		}
	case *Many:
		if f.Attribute {
			return configErr(c, f, "a many-valued association cannot be an attribute")
		}
		if f.HasDefault {
			return configErr(c, f, "associations cannot declare a default")
		}
		if k.Target != nil && !s.IsModeled(k.Target) {
			return configErr(c, f, "association target %s is not in the model", k.Target.Name)
		}
		if k.Container == Map && k.Target != nil {
			return &UnsupportedFieldTypeError{Class: c.Name, Field: f.Name, Type: "Map of " + k.Target.Name}
		}
		if k.Target == nil && k.Item.Type == Fragment {
			return &UnsupportedFieldTypeError{Class: c.Name, Field: f.Name, Type: k.String()}
		}
	case nil:
		return configErr(c, f, "field without a type")
	default:
		return &UnsupportedFieldTypeError{Class: c.Name, Field: f.Name, Type: k.String()}
	}
	return nil
}

func checkDefault(c *Class, f *Field, k *Scalar) error {
	switch k.Type {
	case Boolean:
		if _, err := strconv.ParseBool(f.Default); err != nil {
			return configErr(c, f, "default %q is not a boolean", f.Default)
		}
	case Number:
		if k.Number.IsFloat() {
			if _, err := strconv.ParseFloat(f.Default, 64); err != nil {
				return configErr(c, f, "default %q is not a number", f.Default)
			}
			break
		}
		if _, err := strconv.ParseInt(f.Default, 10, 64); err != nil {
			return configErr(c, f, "default %q is not an integer", f.Default)
		}
	case Date:
		return configErr(c, f, "Date fields cannot declare a default")
	}
	return nil
}
