package xmlgen

import (
	"github.com/signadot/xmlgen/model"
)

// buildClass assembles the procedure of c: attribute steps first, then
// element steps, each in declared order with inherited fields leading.
func (g *generator) buildClass(c *model.Class) (*Procedure, error) {
	proc := &Procedure{Class: c, Name: ProcedureName(c)}
	fields := c.AllFields(g.version)
	names := map[string]*model.Field{}
	for _, f := range fields {
		name := GoName(f.Name)
		if prev, ok := names[name]; ok {
			return nil, configError(c, f, nil, "Go name %s is also used by field %s", name, prev.Name)
		}
		names[name] = f
	}
	attrs := map[string]*model.Field{}
	for _, f := range fields {
		if !f.Attribute {
			continue
		}
		s, err := g.planField(c, f)
		if err != nil {
			return nil, err
		}
		name := s.(*AttrStep).Name
		if prev, ok := attrs[name]; ok {
			return nil, configError(c, f, nil, "attribute %q is also written by %s", name, prev.Name)
		}
		attrs[name] = f
		proc.Steps = append(proc.Steps, s)
	}
	elems := map[string]*model.Field{}
	for _, f := range fields {
		if f.Attribute {
			continue
		}
		s, err := g.planField(c, f)
		if err != nil {
			return nil, err
		}
		if name := emitted(s); name != "" {
			if prev, ok := elems[name]; ok {
				return nil, configError(c, f, nil, "element <%s> is also written by %s", name, prev.Name)
			}
			elems[name] = f
		}
		proc.Steps = append(proc.Steps, s)
	}
	return proc, nil
}
