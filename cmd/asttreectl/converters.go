package main

import "github.com/oxhq/asttree/node"

// stripComments deletes any child whose tree-sitter node kind is "comment",
// a minimal real-world Converter: it fires during post-order rebuild at
// every level of a parsed Go file, demonstrating the Transformer's
// Null-sentinel deletion path against an actual parse tree rather than a
// synthetic one.
type stripComments struct{}

func (stripComments) MinConsumed() int    { return 1 }
func (stripComments) IsRightToLeft() bool { return false }

func (stripComments) Convert(children []node.Node, start int, factory node.Factory) (node.Node, int, bool) {
	if children[start].Type().Name != "comment" {
		return nil, 0, false
	}
	return node.Null, 1, true
}
