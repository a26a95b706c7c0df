// Package difftree implements the differential tree of spec.md §4.5: a
// decoration of the "before" tree in which some child slots are ordinary
// recursive DiffNodes and others carry an action.Action (Insert, Replace, or
// Delete) describing how that slot changed on the way to "after".
package difftree

import (
	"github.com/oxhq/asttree/action"
	"github.com/oxhq/asttree/node"
)

// DiffNode is the PrototypeBased overlay: it reports the same Type, Data,
// Properties and Fragment as its prototype, but its children are diff-tree
// items — either further *DiffNodes or action.Actions — rather than the
// prototype's own children.
type DiffNode struct {
	prototype node.Node
	items     []node.Node
}

func (d *DiffNode) Type() node.Type               { return d.prototype.Type() }
func (d *DiffNode) Data() string                  { return d.prototype.Data() }
func (d *DiffNode) ChildCount() int               { return len(d.items) }
func (d *DiffNode) Properties() map[string]string { return d.prototype.Properties() }
func (d *DiffNode) Fragment() any                 { return d.prototype.Fragment() }
func (d *DiffNode) Prototype() node.Node          { return d.prototype }

func (d *DiffNode) Child(i int) node.Node {
	if i < 0 || i >= len(d.items) {
		return node.Null
	}
	return d.items[i]
}

// GetBefore projects D back onto a tree equal to its original prototype:
// Insert items vanish, and every other slot (Replace/Delete's Before, or a
// nested DiffNode) recurses. Per spec.md §4.5 / invariant I3, deep_compare of
// this result against the tree the DiffNode was built from is always true.
func GetBefore(n node.Node) node.Node {
	dn, ok := n.(*DiffNode)
	if !ok {
		return n
	}
	var children []node.Node
	for _, item := range dn.items {
		if a, ok := action.AsAction(item); ok {
			before := a.Before()
			if before == nil {
				continue
			}
			children = append(children, GetBefore(before))
			continue
		}
		children = append(children, GetBefore(item))
	}
	return node.Compose(dn.prototype.Type(), dn.prototype.Data(), children, dn.prototype.Fragment())
}

// GetAfter projects D onto the edited tree: Delete items vanish, Insert and
// Replace items materialize their After() payload, and DiffNode items
// recurse. Per invariant I3 / P3, this always equals (deep_compare) the
// tree the edits were computed against.
func GetAfter(n node.Node) node.Node {
	dn, ok := n.(*DiffNode)
	if !ok {
		return n
	}
	var children []node.Node
	for _, item := range dn.items {
		if a, ok := action.AsAction(item); ok {
			after := a.After()
			if after == nil {
				continue
			}
			children = append(children, GetAfter(after))
			continue
		}
		children = append(children, GetAfter(item))
	}
	return node.Compose(dn.prototype.Type(), dn.prototype.Data(), children, dn.prototype.Fragment())
}
