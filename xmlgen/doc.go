// Package xmlgen turns a [model.Schema] into a Program: one serialization
// procedure per enabled class plus an entry procedure that writes a whole
// document.
//
// A procedure is a list of steps, planned once from the schema. Each step
// knows the field it reads, the name it emits, how it formats the value and
// when the value counts as absent. Programs are executed against Go values
// by [Execute], or rendered to Go source by package
// [github.com/signadot/xmlgen/xmlgen/golang].
//
// Usage:
//
//	s, err := model.LoadFile("pom.yaml")
//	if err != nil {
//		return err
//	}
//	p, err := xmlgen.Generate(s, xmlgen.Options{Version: "4.0.0"})
//	if err != nil {
//		return err
//	}
//	return p.Write(os.Stdout, project)
//
// Instances may be structs (fields matched by exported name or by an xml
// struct tag), map[string]any, [Pairs] or anything implementing
// [FieldGetter].
package xmlgen
