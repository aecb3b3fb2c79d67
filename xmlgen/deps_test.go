package xmlgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/xmlgen/model"
)

func TestDetectCycles(t *testing.T) {
	a := &model.Class{Name: "A"}
	b := &model.Class{Name: "B"}
	c := &model.Class{Name: "C"}
	d := &model.Class{Name: "D"}
	a.Fields = []*model.Field{{Name: "b", Kind: &model.Single{Target: b}}}
	b.Fields = []*model.Field{{Name: "cs", Kind: &model.Many{Target: c}}}
	c.Fields = []*model.Field{
		{Name: "a", Kind: &model.Single{Target: a}},
		{Name: "ref", Kind: &model.Single{Target: d}, Attribute: true},
	}
	d.Fields = []*model.Field{{Name: "d", Kind: &model.Single{Target: d}}}

	tests := []struct {
		name    string
		classes []*model.Class
		want    []string
	}{
		{"three step cycle", []*model.Class{a, b, c}, []string{"A -> B -> C -> A"}},
		{"self reference", []*model.Class{d}, []string{"D -> D"}},
		{"outside edges ignored", []*model.Class{a, b}, nil},
		{"attribute references ignored", []*model.Class{c, d}, []string{"D -> D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, cy := range DetectCycles(BuildDependencyGraph(tt.classes, "")) {
				got = append(got, cy.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("cycles (-want +got):\n%s", diff)
			}
		})
	}
}
