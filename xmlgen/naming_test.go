package xmlgen

import (
	"testing"

	"github.com/signadot/xmlgen/model"
)

func TestNaming(t *testing.T) {
	tests := []struct {
		field    model.Field
		tag      string
		singular string
	}{
		{model.Field{Name: "items"}, "items", "item"},
		{model.Field{Name: "items", TagName: "entries"}, "entries", "entrie"},
		{model.Field{Name: "children", AssociationTagName: "child"}, "children", "child"},
		{model.Field{Name: "data"}, "data", "data"},
		{model.Field{Name: "s"}, "s", "s"},
	}
	for _, tt := range tests {
		t.Run(tt.field.Name, func(t *testing.T) {
			if got := TagName(&tt.field); got != tt.tag {
				t.Errorf("TagName: got %q, want %q", got, tt.tag)
			}
			if got := SingularTag(&tt.field); got != tt.singular {
				t.Errorf("SingularTag: got %q, want %q", got, tt.singular)
			}
		})
	}
}

func TestClassNames(t *testing.T) {
	c := &model.Class{Name: "ProjectModel"}
	if got := ProcedureName(c); got != "writeProjectModel" {
		t.Errorf("ProcedureName: got %q", got)
	}
	if got := RootTag(c); got != "projectModel" {
		t.Errorf("RootTag: got %q", got)
	}
	if got := ProcedureName(&model.Class{Name: "build-plugin"}); got != "writeBuildPlugin" {
		t.Errorf("ProcedureName: got %q", got)
	}
	c.TagName = "project"
	if got := RootTag(c); got != "project" {
		t.Errorf("RootTag with override: got %q", got)
	}
}

func TestGoName(t *testing.T) {
	for in, want := range map[string]string{
		"name":         "Name",
		"modelVersion": "ModelVersion",
		"xml-lang":     "XmlLang",
		"a.b_c":        "AB_c",
		"2nd":          "X2nd",
		"":             "X",
	} {
		if got := GoName(in); got != want {
			t.Errorf("GoName(%q): got %q, want %q", in, got, want)
		}
	}
}
