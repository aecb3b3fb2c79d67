package model

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/signadot/xmlgen/debug"
	"github.com/signadot/xmlgen/format"
)

// ApplyOverlay applies patch to the model document d and returns the
// patched document as JSON. A patch holding a list is an RFC 6902 JSON
// patch, a patch holding an object is an RFC 7386 merge patch. Both d and
// patch may be written in YAML.
func ApplyOverlay(d []byte, f format.Format, patch []byte) ([]byte, error) {
	doc, err := toJSON(d, f)
	if err != nil {
		return nil, fmt.Errorf("could not convert model to json: %w", err)
	}
	p, err := yaml.YAMLToJSON(patch)
	if err != nil {
		return nil, fmt.Errorf("could not read overlay: %w", err)
	}
	p = bytes.TrimSpace(p)
	if len(p) == 0 || string(p) == "null" {
		return doc, nil
	}
	if p[0] == '{' {
		res, err := jsonpatch.MergePatch(doc, p)
		if err != nil {
			return nil, fmt.Errorf("could not apply merge overlay: %w", err)
		}
		return res, nil
	}
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("could not decode overlay: %w", err)
	}
	res, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("could not apply overlay: %w", err)
	}
	return res, nil
}

func applyOverlays(d []byte, f format.Format, overlays [][]byte) ([]byte, error) {
	for _, o := range overlays {
		var err error
		d, err = ApplyOverlay(d, f, o)
		if err != nil {
			return nil, err
		}
		f = format.JSONFormat
	}
	if debug.Overlay() {
		debug.Logf("patched model:\n%s\n", d)
	}
	return d, nil
}

func toJSON(d []byte, f format.Format) ([]byte, error) {
	if f.IsJSON() {
		return d, nil
	}
	return yaml.YAMLToJSON(d)
}
