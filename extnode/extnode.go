// Package extnode builds a read-only extended decoration of a plain tree:
// each extended node additionally carries its prototype, parent, sequence
// index, left/right siblings and absolute hash. It is built once in a
// single post-order pass and used only by the top-down mapper's
// node-pair-finder and Section abstraction (§4.4).
package extnode

import (
	"github.com/oxhq/asttree/hash"
	"github.com/oxhq/asttree/node"
)

// ExtNode is the PrototypeBased overlay described in spec.md §4.4. It never
// mutates its prototype; back-edges (Parent/LeftSibling/RightSibling) are
// non-owning references valid only for the lifetime of the owning Tree.
type ExtNode struct {
	prototype node.Node
	parent    *ExtNode
	index     int
	children  []*ExtNode
	absHash   uint64
}

func (e *ExtNode) Type() node.Type { return e.prototype.Type() }
func (e *ExtNode) Data() string    { return e.prototype.Data() }
func (e *ExtNode) ChildCount() int { return len(e.children) }

func (e *ExtNode) Child(i int) node.Node {
	if i < 0 || i >= len(e.children) {
		return node.Null
	}
	return e.children[i]
}

func (e *ExtNode) Properties() map[string]string { return e.prototype.Properties() }
func (e *ExtNode) Fragment() any                 { return e.prototype.Fragment() }
func (e *ExtNode) Prototype() node.Node          { return e.prototype }

// Parent returns the extended parent, or nil for the root.
func (e *ExtNode) Parent() *ExtNode { return e.parent }

// Index returns e's 0-based position among its parent's children.
func (e *ExtNode) Index() int { return e.index }

// ChildAt returns the i-th extended child, or nil if out of range — unlike
// Child (which satisfies node.Node and must return node.Null), callers
// walking the extended tree itself want a typed *ExtNode or nil.
func (e *ExtNode) ChildAt(i int) *ExtNode {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

// LeftSibling returns the extended node immediately preceding e among its
// parent's children, or nil if e is the first child or the root.
func (e *ExtNode) LeftSibling() *ExtNode {
	if e.parent == nil || e.index == 0 {
		return nil
	}
	return e.parent.children[e.index-1]
}

// RightSibling returns the extended node immediately following e, or nil if
// e is the last child or the root.
func (e *ExtNode) RightSibling() *ExtNode {
	if e.parent == nil || e.index+1 >= len(e.parent.children) {
		return nil
	}
	return e.parent.children[e.index+1]
}

// AbsHash returns e's memoized absolute hash, computed once while building
// the extended tree.
func (e *ExtNode) AbsHash() uint64 { return e.absHash }

// Build decorates root into an extended tree in one post-order pass,
// computing absolute hashes with cache along the way.
func Build(root node.Node, cache *hash.Cache) *ExtNode {
	return build(root, nil, 0, cache)
}

func build(n node.Node, parent *ExtNode, index int, cache *hash.Cache) *ExtNode {
	e := &ExtNode{prototype: n, parent: parent, index: index}
	count := n.ChildCount()
	e.children = make([]*ExtNode, count)
	for i := 0; i < count; i++ {
		e.children[i] = build(n.Child(i), e, i, cache)
	}
	e.absHash = cache.Absolute(n)
	return e
}
