package xmlgen

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/signadot/xmlgen/model"
)

// Check is the test deciding whether a field value is written.
type Check int

const (
	// NonNil: objects, associations, fragments and nullable scalars
	NonNil Check = iota
	// NonEmpty: lists, sets and maps
	NonEmpty
	// NonEmptyString: strings, also compared against a declared default
	NonEmptyString
	// NonZeroDate: dates
	NonZeroDate
	// Always: primitives without a default
	Always
	// NotDefault: primitives with a declared default
	NotDefault
)

// Presence decides whether a field value is present.
type Presence struct {
	Check      Check
	Default    string
	HasDefault bool
}

func presenceOf(f *model.Field) Presence {
	switch k := f.Kind.(type) {
	case *model.Single:
		return Presence{Check: NonNil}
	case *model.Many:
		return Presence{Check: NonEmpty}
	case *model.Scalar:
		switch {
		case k.Type == model.Fragment || k.Nullable:
			return Presence{Check: NonNil}
		case k.Type == model.String:
			return Presence{Check: NonEmptyString, Default: f.Default, HasDefault: f.HasDefault}
		case k.Type == model.Date:
			return Presence{Check: NonZeroDate}
		case f.HasDefault:
			return Presence{Check: NotDefault, Default: f.Default, HasDefault: true}
		}
	}
	return Presence{Check: Always}
}

func (p Presence) String() string {
	switch p.Check {
	case NonNil:
		return "if not nil"
	case NonEmpty:
		return "if not empty"
	case NonEmptyString:
		if p.HasDefault {
			return fmt.Sprintf("if not empty and != %q", p.Default)
		}
		return "if not empty"
	case NonZeroDate:
		return "if not zero"
	case NotDefault:
		return "if != " + p.Default
	}
	return "always"
}

// Present reports whether v is written. A nil value is never present.
func (p Presence) Present(v any) bool {
	if isAbsent(v) {
		return false
	}
	v = indirect(v)
	switch p.Check {
	case NonEmpty:
		n, ok := length(v)
		return !ok || n > 0
	case NonEmptyString:
		s, ok := v.(string)
		if !ok {
			return true
		}
		return s != "" && !(p.HasDefault && s == p.Default)
	case NonZeroDate:
		switch t := v.(type) {
		case time.Time:
			return !t.IsZero()
		case string:
			return t != ""
		}
		return true
	case NotDefault:
		return !equalsDefault(v, p.Default)
	}
	return true
}

func equalsDefault(v any, def string) bool {
	switch x := v.(type) {
	case bool:
		b, err := strconv.ParseBool(def)
		return err == nil && x == b
	case string:
		return x == def
	}
	d, err := strconv.ParseFloat(def, 64)
	if err != nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()) == d
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()) == d
	case reflect.Float32:
		return float32(rv.Float()) == float32(d)
	case reflect.Float64:
		return rv.Float() == d
	}
	return false
}
