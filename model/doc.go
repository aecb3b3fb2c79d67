// Package model holds the object model consumed by the XML writer
// generator: classes, fields, associations and their XML mapping
// metadata.
//
// # Usage
//
//	s, err := model.LoadFile("pom.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := s.Validate("4.0.0"); err != nil {
//	    return err
//	}
//	root, err := s.Root("4.0.0")
//
// A model document looks like
//
//	name: pom
//	classes:
//	  - name: Model
//	    rootElement: true
//	    fields:
//	      - name: modelVersion
//	        type: String
//	      - name: dependencies
//	        association: {to: Dependency, multiplicity: "*"}
//	        xml: {listStyle: wrapped}
//
// Field kinds are resolved once, at load time, into *Scalar, *Single or
// *Many and never re-derived afterwards.
//
// # Related Packages
//
//   - github.com/signadot/xmlgen/xmlgen - Writer generation
package model
