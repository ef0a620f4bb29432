package tree

import (
	"fmt"
	"io"
	"strings"
)

var newlineEscaper = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\n`)

// Dump writes one line per node to w, depth-first pre-order, indented
// two spaces per level. Each line shows the node's type and, when the
// node has a span, the source text it covers with line breaks rendered
// as a literal \n so multi-line spans stay on one line. Nodes without a
// span get no annotation at all.
func Dump(w io.Writer, source string, root *Node) {
	dumpNode(w, source, root, 0)
}

func dumpNode(w io.Writer, source string, n *Node, depth int) {
	if n == nil {
		return
	}

	// The grouped/optional family keeps its payload one level deeper:
	// display fields and descent both come from Option.
	display := n
	children := n.Children
	switch n.Family {
	case FamilyOptions:
		display = n.Option
		if display == nil {
			return
		}
		children = display.Children
	case FamilyPlain:
	}

	indent := strings.Repeat("  ", depth)
	if display.Span != nil {
		fmt.Fprintf(w, "%s%s: %s\n", indent, display.Type, newlineEscaper.Replace(display.Span.Text(source)))
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, display.Type)
	}

	for _, child := range children {
		dumpNode(w, source, child, depth+1)
	}
}
