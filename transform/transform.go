// Package transform implements the rule-driven rewriter of spec.md §4.7: an
// ordered list of Converters rewrites a tree bottom-up, each node's
// children scanned to a fixed point before the node itself is rebuilt.
package transform

import "github.com/oxhq/asttree/node"

// Converter is a single rewrite rule. MinConsumed is the minimum window
// size Convert ever accepts (≥1); IsRightToLeft picks the scan direction
// the Transformer uses when trying this converter at successive positions;
// Convert attempts a match starting at parentChildren[startIndex] and, on
// success, reports the replacement node and how many children it
// consumes — consumed may exceed MinConsumed when a rule matches a wider
// window.
type Converter interface {
	MinConsumed() int
	IsRightToLeft() bool
	Convert(parentChildren []node.Node, startIndex int, factory node.Factory) (newNode node.Node, consumed int, ok bool)
}

// Transformer rewrites a tree with an ordered list of Converters and a
// node.Factory used to rebuild parents whose children changed.
type Transformer struct {
	converters []Converter
	factory    node.Factory
}

// New binds a Transformer to converters (tried in the given order at every
// scan position) and factory (used to rebuild any node whose children
// change).
func New(converters []Converter, factory node.Factory) *Transformer {
	return &Transformer{converters: converters, factory: factory}
}

// Transform rewrites root post-order: every child is transformed first,
// then root's own (possibly already-rewritten) children are scanned to a
// fixed point. Per P7, re-running Transform on the result is a no-op.
func (t *Transformer) Transform(root node.Node) node.Node {
	original := node.Children(root)
	transformedChildren := make([]node.Node, len(original))
	childrenChanged := false
	for i, c := range original {
		transformedChildren[i] = t.Transform(c)
		if transformedChildren[i] != c {
			childrenChanged = true
		}
	}

	rewritten, scanChanged := t.fixedPoint(transformedChildren)
	if !childrenChanged && !scanChanged {
		return root
	}
	return rebuild(root, rewritten, t.factory)
}

// fixedPoint repeatedly scans children with every converter in order,
// applying the first match found in each converter's scan direction and
// then rescanning with the same converter from the start of its direction
// (index 0 for left-to-right, the last window for right-to-left); the scan
// does not resume at the replacement position. It stops when a full pass
// over all converters makes no change.
func (t *Transformer) fixedPoint(children []node.Node) ([]node.Node, bool) {
	anyChange := false
	for {
		passChanged := false
		for _, c := range t.converters {
			for {
				newChildren, ok := t.tryConverter(c, children)
				if !ok {
					break
				}
				children = newChildren
				passChanged = true
				anyChange = true
			}
		}
		if !passChanged {
			break
		}
	}
	return children, anyChange
}

// tryConverter scans children once with c, in c's declared direction,
// committing at the first successful position it finds.
func (t *Transformer) tryConverter(c Converter, children []node.Node) ([]node.Node, bool) {
	min := c.MinConsumed()
	if min < 1 {
		min = 1
	}
	if len(children) < min {
		return nil, false
	}

	if c.IsRightToLeft() {
		for start := len(children) - min; start >= 0; start-- {
			if newChildren, ok := t.applyAt(c, children, start); ok {
				return newChildren, true
			}
		}
		return nil, false
	}

	for start := 0; start+min <= len(children); start++ {
		if newChildren, ok := t.applyAt(c, children, start); ok {
			return newChildren, true
		}
	}
	return nil, false
}

func (t *Transformer) applyAt(c Converter, children []node.Node, start int) ([]node.Node, bool) {
	newNode, consumed, ok := c.Convert(children, start, t.factory)
	if !ok {
		return nil, false
	}
	if consumed <= 0 {
		consumed = c.MinConsumed()
	}
	end := start + consumed
	if end > len(children) {
		end = len(children)
	}

	var out []node.Node
	out = append(out, children[:start]...)
	if !node.IsNull(newNode) {
		out = append(out, newNode)
	}
	out = append(out, children[end:]...)
	return out, true
}

func rebuild(original node.Node, children []node.Node, factory node.Factory) node.Node {
	b, ok := factory.NewBuilder(original.Type().Name)
	if !ok {
		return node.Dummy
	}
	if !b.SetData(original.Data()) {
		return node.Dummy
	}
	if !b.SetChildren(children) {
		return node.Dummy
	}
	b.SetFragment(original.Fragment())
	return b.CreateNode()
}
