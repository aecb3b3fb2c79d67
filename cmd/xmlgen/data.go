package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/xmlgen/xmlgen"
)

// readData reads a yaml or json data document from path, or from r when
// path is "-".
func readData(path string, r io.Reader) (any, error) {
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v, err := decodeData(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return v, nil
}

// decodeData decodes a data document keeping the order of its mappings,
// which become xmlgen.Pairs.
func decodeData(d []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return toInstance(v)
}

func toInstance(v any) (any, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(xmlgen.Pairs, 0, len(x))
		for _, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				k = fmt.Sprint(item.Key)
			}
			iv, err := toInstance(item.Value)
			if err != nil {
				return nil, err
			}
			res = append(res, xmlgen.Pair{Key: k, Value: iv})
		}
		return res, nil
	case []any:
		res := make([]any, len(x))
		for i := range x {
			iv, err := toInstance(x[i])
			if err != nil {
				return nil, err
			}
			res[i] = iv
		}
		return res, nil
	case map[string]any:
		return nil, fmt.Errorf("unordered mapping %v", x)
	default:
		return v, nil
	}
}
