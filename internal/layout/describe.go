package layout

import (
	"fmt"
	"strings"
)

// Describe renders a node tree as indented text, one node per line
func Describe(node Node) string {
	var b strings.Builder
	describe(&b, node, 0)
	return b.String()
}

func describe(b *strings.Builder, node Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case nil:
		b.WriteString(indent + "(empty)\n")
	case *Group:
		if n == nil {
			b.WriteString(indent + "(empty)\n")
			return
		}
		b.WriteString(fmt.Sprintf("%sgroup %s (%s)\n", indent, n.Name(), n.Orientation()))
		for _, child := range n.children {
			describe(b, child, depth+1)
		}
	case *Leaf:
		b.WriteString(fmt.Sprintf("%sview %s\n", indent, n.Name()))
	default:
		b.WriteString(fmt.Sprintf("%s%T\n", indent, node))
	}
}
