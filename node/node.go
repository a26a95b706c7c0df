package node

// Node is the universal, read-only interface implemented by every node
// variant in the system: plain domain nodes, action markers, holes, and
// the prototype-based overlays (extended nodes, diff nodes, pattern nodes).
//
// Equality between two nodes is always structural (see DeepCompare); Node
// values are compared by identity only through Go's ordinary interface
// comparison (same dynamic pointer), which the mapper and diff builder use
// to key their internal maps.
type Node interface {
	// Type returns the node's type descriptor.
	Type() Type

	// Data returns the node's scalar payload, possibly empty.
	Data() string

	// ChildCount returns the number of children, always equal to
	// len(children) for the underlying representation (invariant I1).
	ChildCount() int

	// Child returns the i-th child, or Null if i is out of range. Child
	// never panics for an out-of-range index (invariant I1).
	Child(i int) Node

	// Properties returns the union of the node's Type properties and any
	// node-local overrides (e.g. an action's "color").
	Properties() map[string]string

	// Fragment returns the opaque source-position metadata passed through
	// from construction, or nil. The core never inspects its contents.
	Fragment() any
}

// Overlay is implemented by every node that wraps a prototype Node and
// shares (without owning) its subtree: the extended node view, diff nodes,
// pattern nodes and the other PrototypeBased variants in spec.md §3.
type Overlay interface {
	Node
	Prototype() Node
}

// Children returns a freshly built slice of n's children, a convenience for
// algorithms that want to iterate with range.
func Children(n Node) []Node {
	cs := make([]Node, n.ChildCount())
	for i := range cs {
		cs[i] = n.Child(i)
	}
	return cs
}

// DeepCompare reports full structural equality: same type name, same data,
// same number of children, each deeply equal in order. Fragments are never
// compared (they are opaque source-position metadata).
func DeepCompare(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type().Name != b.Type().Name || a.Data() != b.Data() {
		return false
	}
	if a.ChildCount() != b.ChildCount() {
		return false
	}
	for i := 0; i < a.ChildCount(); i++ {
		if !DeepCompare(a.Child(i), b.Child(i)) {
			return false
		}
	}
	return true
}

// SameIdentity reports whether a and b are the very same node instance,
// used where the spec calls for identity rather than structural comparison
// (matched-pair bookkeeping in the mapper and diff builder).
func SameIdentity(a, b Node) bool {
	return a == b
}

type nullNode struct{}

func (nullNode) Type() Type              { return Type{Name: "Null"} }
func (nullNode) Data() string            { return "" }
func (nullNode) ChildCount() int         { return 0 }
func (nullNode) Child(int) Node          { return Null }
func (nullNode) Properties() map[string]string { return nil }
func (nullNode) Fragment() any           { return nil }

// Null is the absent-child sentinel returned by Child when the index is out
// of range. It is never equal (by identity) to any other node; two
// dereferences of Null are DeepCompare-equal to each other since they share
// the same empty "Null" type and no children.
var Null Node = nullNode{}

type dummyNode struct{}

func (dummyNode) Type() Type              { return Type{Name: "Dummy"} }
func (dummyNode) Data() string            { return "" }
func (dummyNode) ChildCount() int         { return 0 }
func (dummyNode) Child(int) Node          { return Null }
func (dummyNode) Properties() map[string]string { return nil }
func (dummyNode) Fragment() any           { return nil }

// Dummy is the sentinel returned in place of a real node when an operation
// fails but the caller's signature must still produce a Node (e.g. the
// Transformer when a rebuilt node's Builder rejects the new children, or
// JSON/text deserialization of a completely malformed document with no
// Factory to fall back to).
var Dummy Node = dummyNode{}

// IsNull reports whether n is the Null sentinel.
func IsNull(n Node) bool { return n == Null }

// IsDummy reports whether n is the Dummy sentinel.
func IsDummy(n Node) bool { return n == Dummy }
