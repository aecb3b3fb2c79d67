package golang

import (
	"testing"

	"github.com/signadot/xmlgen/model"
	"github.com/signadot/xmlgen/xmlgen"
)

func TestDateExpr(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"", `d.Format("Monday, January 2, 2006 3:04:05 PM MST")`},
		{"yyyy-MM-dd", `d.Format("2006-01-02")`},
		{"'Q1' yyyy", `"Q1 " + d.Format("2006")`},
		{"Ms", `d.Format("1") + d.Format("5")`},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			df, err := xmlgen.CompileDateFormat(tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			vf := xmlgen.ValueFormat{Type: model.Date, Date: df}
			if got := valueExpr(vf, "d", false); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
