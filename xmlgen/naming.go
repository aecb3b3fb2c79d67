package xmlgen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/xmlgen/model"
)

// TagName is the element or attribute name of f.
func TagName(f *model.Field) string {
	if f.TagName != "" {
		return f.TagName
	}
	return f.Name
}

// SingularTag is the name of one item of the collection field f.
func SingularTag(f *model.Field) string {
	if f.AssociationTagName != "" {
		return f.AssociationTagName
	}
	return Singular(TagName(f))
}

// Singular strips one trailing "s" from name.
func Singular(name string) string {
	if len(name) > 1 && strings.HasSuffix(name, "s") {
		return name[:len(name)-1]
	}
	return name
}

// ProcedureName is the name of the procedure writing instances of c.
func ProcedureName(c *model.Class) string {
	return "write" + GoName(c.Name)
}

// RootTag is the document element name used for the root class c.
func RootTag(c *model.Class) string {
	if c.TagName != "" {
		return c.TagName
	}
	return Uncapitalize(c.Name)
}

// Uncapitalize lower cases the first rune of s.
func Uncapitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

// GoName is the exported Go identifier for the model name s: the first
// rune upper cased, runes that cannot appear in an identifier dropped and
// the following rune upper cased.
func GoName(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			upper = true
			continue
		}
		if b.Len() == 0 && unicode.IsDigit(r) {
			b.WriteByte('X')
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "X"
	}
	return b.String()
}
