// Package dot renders a node.Node tree as Graphviz DOT source, the
// visualization counterpart to jsontree's wire format (spec.md §6). It is
// a pure consumer: it reads properties["color"]/properties["bgcolor"] if
// present and otherwise renders with Graphviz's own defaults, and never
// constructs or mutates a tree.
//
// No third-party Graphviz binding appears anywhere in the reference corpus,
// so this package builds DOT source directly with fmt/strings rather than
// reach for an out-of-pack dependency. cmd/asttreectl writes the DOT source
// to a file (diff --dot); turning it into SVG is left to an external run of
// the "dot" binary.
package dot

import (
	"fmt"
	"strings"

	"github.com/oxhq/asttree/node"
)

// Render walks n and returns a standalone DOT "digraph" source string
// suitable for piping into `dot -Tsvg`.
func Render(n node.Node, graphName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", quoteID(graphName))
	b.WriteString("  node [shape=box, fontname=\"monospace\"];\n")

	counter := 0
	walk(&b, n, &counter)

	b.WriteString("}\n")
	return b.String()
}

func walk(b *strings.Builder, n node.Node, counter *int) int {
	id := *counter
	*counter++

	label := n.Type().Name
	if n.Data() != "" {
		label += "\\n" + escapeLabel(n.Data())
	}

	attrs := fmt.Sprintf(`label="%s"`, label)
	props := n.Properties()
	if color, ok := props["color"]; ok && color != "" {
		attrs += fmt.Sprintf(", fillcolor=%q, style=filled", color)
	}
	if bgcolor, ok := props["bgcolor"]; ok && bgcolor != "" {
		attrs += fmt.Sprintf(", color=%q", bgcolor)
	}
	fmt.Fprintf(b, "  n%d [%s];\n", id, attrs)

	for i := 0; i < n.ChildCount(); i++ {
		childID := walk(b, n.Child(i), counter)
		fmt.Fprintf(b, "  n%d -> n%d;\n", id, childID)
	}

	return id
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

func quoteID(s string) string {
	if s == "" {
		return `"graph"`
	}
	return fmt.Sprintf("%q", s)
}
