package golang

import (
	"fmt"
	"go/types"

	"github.com/signadot/xmlgen/xmlgen"
	"golang.org/x/tools/go/packages"
)

// Verify loads the Go package in dir and checks that it declares the
// types the generated code of p refers to: one struct per procedure with a
// field of the expected type per model field. It returns one message per
// problem found.
func Verify(p *xmlgen.Program, dir string) ([]string, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %q: %w", dir, err)
	}
	if len(pkgs) == 0 || pkgs[0].Types == nil {
		return nil, fmt.Errorf("no Go package in %q", dir)
	}
	pkg := pkgs[0]
	// Errors in the package are expected while the generated file is out
	// of date, so only the declarations are checked.
	qual := func(other *types.Package) string {
		if other == pkg.Types {
			return ""
		}
		return other.Name()
	}

	var problems []string
	for _, proc := range p.Procedures {
		name := typeName(proc.Class)
		tn, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName)
		if !ok {
			problems = append(problems, fmt.Sprintf("type %s is not declared", name))
			continue
		}
		st, ok := tn.Type().Underlying().(*types.Struct)
		if !ok {
			problems = append(problems, fmt.Sprintf("type %s is not a struct", name))
			continue
		}
		fields := map[string]types.Type{}
		for i := 0; i < st.NumFields(); i++ {
			fields[st.Field(i).Name()] = st.Field(i).Type()
		}
		for _, f := range proc.Class.AllFields(p.Version) {
			fn := xmlgen.GoName(f.Name)
			ft, ok := fields[fn]
			if !ok {
				problems = append(problems, fmt.Sprintf("%s.%s is not declared", name, fn))
				continue
			}
			if got, want := types.TypeString(ft, qual), fieldType(f); got != want {
				problems = append(problems, fmt.Sprintf("%s.%s has type %s, want %s", name, fn, got, want))
			}
		}
	}
	return problems, nil
}
