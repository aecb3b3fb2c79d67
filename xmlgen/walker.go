package xmlgen

import (
	"github.com/signadot/xmlgen/debug"
	"github.com/signadot/xmlgen/model"
)

type generator struct {
	schema  *model.Schema
	version string
	enabled map[*model.Class]bool
}

// Generate validates s and plans one procedure per class enabled in
// opts.Version, in schema order. Every configuration problem is reported
// before any procedure is produced.
func Generate(s *model.Schema, opts Options) (*Program, error) {
	opts = opts.withDefaults()
	if err := opts.Pretty.Validate(); err != nil {
		return nil, configError(nil, nil, err, "bad pretty print configuration")
	}
	if err := s.Validate(opts.Version); err != nil {
		return nil, err
	}
	root, err := s.Root(opts.Version)
	if err != nil {
		return nil, err
	}
	classes := s.EnabledClasses(opts.Version)
	g := &generator{schema: s, version: opts.Version, enabled: map[*model.Class]bool{}}
	names := map[string]*model.Class{}
	for _, c := range classes {
		g.enabled[c] = true
		name := GoName(c.Name)
		if prev, ok := names[name]; ok {
			return nil, configError(c, nil, nil, "Go name %s is also used by class %s", name, prev.Name)
		}
		names[name] = c
	}

	cycles := DetectCycles(BuildDependencyGraph(classes, opts.Version))
	if len(cycles) > 0 {
		if opts.RejectCycles {
			return nil, configError(nil, nil, nil, "%s", FormatCycles(cycles))
		}
		paths := make([]string, len(cycles))
		for i, c := range cycles {
			paths[i] = c.String()
		}
		opts.Log.Warn("schema has association cycles, instances must not", "model", s.Name, "cycles", paths)
	}

	p := &Program{
		Schema:  s,
		Version: opts.Version,
		Pretty:  opts.Pretty,
		Cycles:  cycles,
		byClass: map[string]*Procedure{},
	}
	for _, c := range classes {
		proc, err := g.buildClass(c)
		if err != nil {
			return nil, err
		}
		p.Procedures = append(p.Procedures, proc)
		p.byClass[c.Name] = proc
	}
	p.Root = p.byClass[root.Name]
	p.RootTag = RootTag(root)
	if debug.Plan() {
		debug.Logf("plan for %s:\n%s", s.Name, p)
	}
	return p, nil
}
