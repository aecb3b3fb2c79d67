package xmlgen

import (
	"log/slog"

	"github.com/signadot/xmlgen/xmltree"
)

// Options configures Generate.
type Options struct {
	// Version selects the model version; empty includes every version
	Version string

	// Pretty is the serialization of Program.Write. The zero value selects
	// xmltree.DefaultPrettyPrint.
	Pretty xmltree.PrettyPrint

	// RejectCycles fails generation for schemas with association cycles
	// instead of logging a warning
	RejectCycles bool

	// Log receives warnings (default slog.Default())
	Log *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Pretty == (xmltree.PrettyPrint{}) {
		o.Pretty = xmltree.DefaultPrettyPrint()
	}
	if o.Log == nil {
		o.Log = slog.Default()
	}
	return o
}
