package xmlgen

import (
	"testing"
	"time"

	"github.com/signadot/xmlgen/model"
)

func TestPresence(t *testing.T) {
	str := &model.Scalar{Type: model.String}
	num := &model.Scalar{Type: model.Number, Number: model.Int}
	dbl := &model.Scalar{Type: model.Number, Number: model.Float}
	boxed := &model.Scalar{Type: model.Number, Number: model.Int, Nullable: true}
	boolean := &model.Scalar{Type: model.Boolean}
	date := &model.Scalar{Type: model.Date}
	many := &model.Many{Item: model.Scalar{Type: model.String}}
	nullableStr := &model.Scalar{Type: model.String, Nullable: true}
	nullableDate := &model.Scalar{Type: model.Date, Nullable: true}
	zero, one := 0, 1
	emptyStr, zeroDate := "", time.Time{}
	var nilSlice []string

	tests := []struct {
		name  string
		field model.Field
		value any
		want  bool
	}{
		{"nil", model.Field{Kind: str}, nil, false},
		{"empty string", model.Field{Kind: str}, "", false},
		{"string", model.Field{Kind: str}, "x", true},
		{"string equal to default", model.Field{Kind: str, Default: "x", HasDefault: true}, "x", false},
		{"string differing from default", model.Field{Kind: str, Default: "x", HasDefault: true}, "y", true},
		{"zero int", model.Field{Kind: num}, 0, true},
		{"int equal to default", model.Field{Kind: num, Default: "1", HasDefault: true}, 1, false},
		{"uint equal to default", model.Field{Kind: num, Default: "1", HasDefault: true}, uint64(1), false},
		{"int differing from default", model.Field{Kind: num, Default: "1", HasDefault: true}, 2, true},
		{"float32 equal to default", model.Field{Kind: dbl, Default: "0.1", HasDefault: true}, float32(0.1), false},
		{"bool equal to default", model.Field{Kind: boolean, Default: "true", HasDefault: true}, true, false},
		{"bool differing from default", model.Field{Kind: boolean, Default: "true", HasDefault: true}, false, true},
		{"boxed nil", model.Field{Kind: boxed}, (*int)(nil), false},
		{"boxed zero", model.Field{Kind: boxed}, &zero, true},
		{"boxed ignores default", model.Field{Kind: boxed, Default: "1", HasDefault: true}, &one, true},
		{"zero date", model.Field{Kind: date}, time.Time{}, false},
		{"date", model.Field{Kind: date}, time.Now(), true},
		{"nullable empty string", model.Field{Kind: nullableStr}, &emptyStr, true},
		{"nullable zero date", model.Field{Kind: nullableDate}, &zeroDate, true},
		{"nil slice", model.Field{Kind: many}, nilSlice, false},
		{"empty slice", model.Field{Kind: many}, []string{}, false},
		{"slice", model.Field{Kind: many}, []string{"a"}, true},
		{"empty map", model.Field{Kind: many}, map[string]string{}, false},
		{"empty pairs", model.Field{Kind: many}, Pairs{}, false},
		{"single", model.Field{Kind: &model.Single{}}, &struct{}{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := presenceOf(&tt.field).Present(tt.value); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
