// Package format names the document formats accepted for model, overlay
// and data files.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	f, ok := format.FromPath("pom.yaml")
//
// # Related Packages
//
//   - github.com/signadot/xmlgen/model - Model loading
package format
