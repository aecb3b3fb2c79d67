package xmlgen

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/signadot/xmlgen/model"
)

// ValueFormat turns field values into text.
type ValueFormat struct {
	Type   model.ScalarType
	Number model.NumberType

	// Date is set for Date values
	Date *DateFormat

	// Text marks single associations written as attributes, which use the
	// canonical text of the associated value
	Text bool
}

func (vf ValueFormat) String() string {
	switch {
	case vf.Text:
		return "text"
	case vf.Type == model.Number:
		return vf.Number.String()
	case vf.Type == model.Date:
		if vf.Date.Pattern == "" {
			return "Date"
		}
		return fmt.Sprintf("Date %q", vf.Date.Pattern)
	}
	return vf.Type.String()
}

// Format returns the text of v, which must not be absent.
func (vf ValueFormat) Format(v any) (string, error) {
	if s, ok := v.(fmt.Stringer); ok && vf.Text {
		return s.String(), nil
	}
	v = indirect(v)
	if vf.Type == model.Date && !vf.Text {
		return vf.formatDate(v)
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		if vf.Type == model.String {
			return x.String(), nil
		}
	}
	if s, ok := canonical(v); ok {
		return s, nil
	}
	if vf.Type == model.String || vf.Text {
		return fmt.Sprint(v), nil
	}
	return "", fmt.Errorf("cannot format %T as %s", v, vf)
}

func (vf ValueFormat) formatDate(v any) (string, error) {
	switch x := v.(type) {
	case time.Time:
		return vf.Date.Format(x), nil
	case string:
		t, err := parseDate(x)
		if err != nil {
			return "", fmt.Errorf("cannot read date %q: %w", x, err)
		}
		return vf.Date.Format(t), nil
	}
	return "", fmt.Errorf("cannot format %T as a date", v)
}

// canonical is the strconv form of numbers and booleans.
func canonical(v any) (string, bool) {
	if n, ok := v.(json.Number); ok {
		return n.String(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	case reflect.String:
		return rv.String(), true
	}
	return "", false
}
