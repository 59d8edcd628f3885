package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/kvs-format/go-kvs/encode"
	"github.com/signadot/kvs-format/go-kvs/ir"
)

var out io.Writer = os.Stderr

type JSON any
type KVS struct{ *ir.Node }

func (y KVS) String() string {
	d, err := encode.Marshal(y.Node)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", err)
	}
	return string(d)
}

// Logf writes to stderr.  *ir.Node arguments are encoded as KVS text and
// JSON arguments as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = KVS{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
