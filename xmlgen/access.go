package xmlgen

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/signadot/xmlgen/xmltree"
)

// FieldGetter is implemented by instances that look up model fields
// themselves.
type FieldGetter interface {
	Field(name string) (any, bool)
}

// OrderedMap is a map field value that iterates in its own order.
type OrderedMap interface {
	Keys() []string
	Get(key string) (any, bool)
}

// Pair is one entry of Pairs.
type Pair struct {
	Key   string
	Value any
}

// Pairs is an ordered map. It serves both as an instance, looked up by
// field name, and as the value of a map field.
type Pairs []Pair

func (p Pairs) Keys() []string {
	res := make([]string, len(p))
	for i := range p {
		res[i] = p[i].Key
	}
	return res
}

func (p Pairs) Get(key string) (any, bool) {
	for i := range p {
		if p[i].Key == key {
			return p[i].Value, true
		}
	}
	return nil, false
}

func (p Pairs) Field(name string) (any, bool) {
	return p.Get(name)
}

// fieldValue returns the value of the model field name of inst. Missing
// map entries read as nil; a struct without the field is an error.
func fieldValue(inst any, name string) (any, error) {
	if g, ok := inst.(FieldGetter); ok {
		v, _ := g.Field(name)
		return v, nil
	}
	rv := reflect.ValueOf(inst)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, fmt.Errorf("%s is not keyed by string", rv.Type())
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !mv.IsValid() {
			return nil, nil
		}
		return mv.Interface(), nil
	case reflect.Struct:
		index, ok := structField(rv.Type(), name)
		if !ok {
			return nil, fmt.Errorf("%s has no field for %q", rv.Type(), name)
		}
		fv, err := rv.FieldByIndexErr(index)
		if err != nil {
			return nil, nil
		}
		return fv.Interface(), nil
	}
	return nil, fmt.Errorf("%T cannot hold fields", inst)
}

var structFields sync.Map // reflect.Type -> map[string][]int

// structField finds the exported field of t holding the model field name:
// the field tagged xml:"name", else the field named GoName(name).
func structField(t reflect.Type, name string) ([]int, bool) {
	var m map[string][]int
	if v, ok := structFields.Load(t); ok {
		m = v.(map[string][]int)
	} else {
		m = map[string][]int{}
		for _, sf := range reflect.VisibleFields(t) {
			if !sf.IsExported() || sf.Anonymous {
				continue
			}
			if tag, _, _ := strings.Cut(sf.Tag.Get("xml"), ","); tag != "" && tag != "-" {
				m["tag:"+tag] = sf.Index
			}
			m[sf.Name] = sf.Index
		}
		structFields.Store(t, m)
	}
	if index, ok := m["tag:"+name]; ok {
		return index, true
	}
	index, ok := m[GoName(name)]
	return index, ok
}

// isAbsent reports whether v is nil, including typed nil pointers, maps,
// slices and interfaces.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// indirect strips pointers from v.
func indirect(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return v
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

// length is the number of items of a collection value.
func length(v any) (int, bool) {
	if om, ok := v.(OrderedMap); ok {
		return len(om.Keys()), true
	}
	rv := reflect.ValueOf(indirect(v))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// items lists the items of a list or set value. Sets held as Go maps
// iterate in key order.
func items(v any) ([]any, error) {
	rv := reflect.ValueOf(indirect(v))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		res := make([]any, rv.Len())
		for i := range res {
			res[i] = rv.Index(i).Interface()
		}
		return res, nil
	case reflect.Map:
		keys := rv.MapKeys()
		res := make([]any, len(keys))
		for i, k := range keys {
			res[i] = k.Interface()
		}
		sort.Slice(res, func(i, j int) bool {
			return fmt.Sprint(res[i]) < fmt.Sprint(res[j])
		})
		return res, nil
	}
	return nil, fmt.Errorf("%T is not a collection", v)
}

// entries lists the entries of a map value: ordered maps in their own
// order, Go maps sorted by key.
func entries(v any) ([]Pair, error) {
	if om, ok := v.(OrderedMap); ok {
		keys := om.Keys()
		res := make([]Pair, len(keys))
		for i, k := range keys {
			val, _ := om.Get(k)
			res[i] = Pair{Key: k, Value: val}
		}
		return res, nil
	}
	rv := reflect.ValueOf(indirect(v))
	if rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("%T is not a map", v)
	}
	res := make([]Pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		res = append(res, Pair{Key: fmt.Sprint(iter.Key().Interface()), Value: iter.Value().Interface()})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Key < res[j].Key })
	return res, nil
}

// asFragment returns v as a fragment. Besides xmltree.Fragment values it
// accepts data of the shape {name, text, attributes, children}.
func asFragment(v any) (xmltree.Fragment, error) {
	if f, ok := v.(xmltree.Fragment); ok {
		return f, nil
	}
	return fragmentFromData(v)
}

func fragmentFromData(v any) (*xmltree.Node, error) {
	name, err := fieldValue(v, "name")
	if err != nil {
		return nil, fmt.Errorf("fragment: %w", err)
	}
	s, ok := name.(string)
	if !ok || s == "" {
		return nil, fmt.Errorf("fragment %T has no name", v)
	}
	n := xmltree.NewElement(s)
	if text, err := fieldValue(v, "text"); err == nil && !isAbsent(text) {
		n.SetText(fmt.Sprint(text))
	}
	if attrs, err := fieldValue(v, "attributes"); err == nil && !isAbsent(attrs) {
		es, err := entries(attrs)
		if err != nil {
			return nil, fmt.Errorf("fragment %s attributes: %w", s, err)
		}
		for _, e := range es {
			n.SetAttr(e.Key, fmt.Sprint(e.Value))
		}
	}
	if children, err := fieldValue(v, "children"); err == nil && !isAbsent(children) {
		cs, err := items(children)
		if err != nil {
			return nil, fmt.Errorf("fragment %s children: %w", s, err)
		}
		for _, c := range cs {
			cn, err := fragmentFromData(c)
			if err != nil {
				return nil, err
			}
			n.AddChild(cn)
		}
	}
	return n, nil
}
