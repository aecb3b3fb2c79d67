// Package golang renders an [xmlgen.Program] as Go source.
//
// The generated file holds one unexported write<Class> function per
// procedure and an exported Write entry point, written against
// [github.com/signadot/xmlgen/xmltree]. With Config.Types the struct types
// of the model are generated as well; otherwise the package must declare
// them, one struct per class with a field per model field named as
// [xmlgen.GoName] does. [Verify] checks such hand written types.
package golang
