package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/xmlgen/xmltree"
)

// Logf writes a debug message to stderr. Trees are written as compact XML
// and decoded data (maps, slices) as indented JSON.
func Logf(msg string, args ...any) {
	for i, a := range args {
		switch x := a.(type) {
		case *xmltree.Node:
			buf := bytes.NewBuffer(nil)
			if err := xmltree.Serialize(x, buf, xmltree.PrettyPrint{Compact: true}); err != nil {
				args[i] = fmt.Sprintf("[partial tree <%s>]", x.Name())
				continue
			}
			args[i] = buf.String()
		case map[string]any, []any:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
