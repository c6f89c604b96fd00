package debug

import (
	"fmt"
	"os"

	"github.com/metarhia/jstp-go/encode"
	"github.com/metarhia/jstp-go/ir"

	"github.com/sugawarayuuta/sonnet"
)

type JSON any
type JSTP struct{ *ir.Node }

func (y JSTP) String() string {
	x := y.Node
	s, err := encode.String(x)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return s
}

// Logf writes a formatted message to stderr. Nodes are rendered as JSTP text
// and Go maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, JSON:
			d, err := sonnet.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = JSTP{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
