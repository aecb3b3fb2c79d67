package xmlgen

import (
	"github.com/signadot/xmlgen/model"
)

// planField decides how field f of class c is written.
func (g *generator) planField(c *model.Class, f *model.Field) (Step, error) {
	base := stepBase{field: f, presence: presenceOf(f)}
	switch k := f.Kind.(type) {
	case *model.Scalar:
		if k.Type == model.Fragment {
			if f.Attribute {
				return nil, &model.UnsupportedFieldTypeError{Class: c.Name, Field: f.Name, Type: "DOM attribute"}
			}
			return &FragmentStep{stepBase: base}, nil
		}
		vf, err := valueFormat(c, f, k)
		if err != nil {
			return nil, err
		}
		if f.Attribute {
			return &AttrStep{stepBase: base, Name: TagName(f), Value: vf}, nil
		}
		return &TextStep{stepBase: base, Tag: TagName(f), Value: vf}, nil

	case *model.Single:
		if err := g.checkTarget(c, f, k.Target); err != nil {
			return nil, err
		}
		if f.Attribute {
			return &AttrStep{stepBase: base, Name: TagName(f), Value: ValueFormat{Type: model.String, Text: true}}, nil
		}
		return &CallStep{stepBase: base, Tag: TagName(f), Target: k.Target}, nil

	case *model.Many:
		if f.Attribute {
			return nil, configError(c, f, nil, "a many-valued association cannot be an attribute")
		}
		wrapper := ""
		if f.ListStyle == model.Wrapped {
			wrapper = TagName(f)
		}
		if k.Container == model.Map {
			if k.Target != nil {
				return nil, &model.UnsupportedFieldTypeError{Class: c.Name, Field: f.Name, Type: k.String()}
			}
			vf, err := valueFormat(c, f, &k.Item)
			if err != nil {
				return nil, err
			}
			return &MapStep{
				stepBase: base,
				Wrapper:  wrapper,
				Exploded: f.MapStyle == model.Exploded,
				EntryTag: Singular(f.Name),
				Value:    vf,
			}, nil
		}
		step := &ListStep{stepBase: base, Wrapper: wrapper, ItemTag: SingularTag(f)}
		if k.Target != nil {
			if err := g.checkTarget(c, f, k.Target); err != nil {
				return nil, err
			}
			step.Target = k.Target
			return step, nil
		}
		if k.Item.Type == model.Fragment {
			return nil, &model.UnsupportedFieldTypeError{Class: c.Name, Field: f.Name, Type: k.String()}
		}
		vf, err := valueFormat(c, f, &k.Item)
		if err != nil {
			return nil, err
		}
		step.Item = vf
		return step, nil

	case nil:
		return nil, configError(c, f, nil, "field without a type")
	}
	return nil, &model.UnsupportedFieldTypeError{Class: c.Name, Field: f.Name, Type: f.Kind.String()}
}

func valueFormat(c *model.Class, f *model.Field, sc *model.Scalar) (ValueFormat, error) {
	vf := ValueFormat{Type: sc.Type, Number: sc.Number}
	if sc.Type == model.Date {
		df, err := CompileDateFormat(f.DateFormat)
		if err != nil {
			return vf, configError(c, f, err, "bad date format")
		}
		vf.Date = df
	}
	return vf, nil
}

// checkTarget makes sure a procedure exists for the association target.
func (g *generator) checkTarget(c *model.Class, f *model.Field, target *model.Class) error {
	if !g.enabled[target] {
		return configError(c, f, nil, "association target %s is not enabled in this version", target.Name)
	}
	return nil
}
