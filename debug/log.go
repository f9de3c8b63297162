package debug

import (
	"fmt"
	"os"

	"github.com/naay-lang/naay/encode"
	"github.com/naay-lang/naay/ir"
)

// Node wraps an *ir.Node so that passing one to Logf pretty-prints it
// in naay's own text form rather than Go's default struct dump.
type Node struct{ *ir.Node }

func (n Node) String() string {
	d, err := encode.EncodeValue(n.Node)
	if err != nil {
		return fmt.Sprintf("[unencodable node] %v", n.Node)
	}
	return string(d)
}

// Logf writes a trace line to stderr, pretty-printing any *ir.Node
// argument via Node.String instead of Go's default verb formatting.
func Logf(msg string, args ...any) {
	for i, a := range args {
		if n, ok := a.(*ir.Node); ok {
			args[i] = Node{n}
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
