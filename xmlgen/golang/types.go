package golang

import (
	"github.com/signadot/xmlgen/model"
	"github.com/signadot/xmlgen/xmlgen"
)

// typeName is the Go type of class c.
func typeName(c *model.Class) string {
	return xmlgen.GoName(c.Name)
}

// fieldType is the Go type of field f.
func fieldType(f *model.Field) string {
	switch k := f.Kind.(type) {
	case *model.Scalar:
		return scalarType(k.Type, k.Number, k.Nullable)
	case *model.Single:
		return "*" + typeName(k.Target)
	case *model.Many:
		item := "*"
		if k.Target != nil {
			item += typeName(k.Target)
		} else {
			item = scalarType(k.Item.Type, k.Item.Number, false)
		}
		if k.Container == model.Map {
			return "map[string]" + item
		}
		return "[]" + item
	}
	return "any"
}

func scalarType(t model.ScalarType, n model.NumberType, nullable bool) string {
	var res string
	switch t {
	case model.String:
		res = "string"
	case model.Date:
		res = "time.Time"
	case model.Fragment:
		return "xmltree.Fragment"
	case model.Boolean:
		res = "bool"
	case model.Number:
		res = numberType(n)
	}
	if nullable {
		return "*" + res
	}
	return res
}

func numberType(n model.NumberType) string {
	switch n {
	case model.Long:
		return "int64"
	case model.Short:
		return "int16"
	case model.Byte:
		return "int8"
	case model.Float:
		return "float32"
	case model.Double:
		return "float64"
	}
	return "int"
}
