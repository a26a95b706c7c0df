package difftree

import (
	"github.com/oxhq/asttree/action"
	"github.com/oxhq/asttree/mapper"
	"github.com/oxhq/asttree/node"
)

// entry locates one prototype node within a Builder's in-progress diff
// tree: wrapper is the DiffNode standing in for that exact node, and parent
// is the DiffNode one level up whose items slice currently holds wrapper (nil
// for the prototype root, which has no parent slot to splice into).
type entry struct {
	wrapper *DiffNode
	parent  *DiffNode
}

// Builder incrementally turns a prototype tree into a DiffNode tree by
// applying InsertNode/ReplaceNode/DeleteNode at located positions, per
// spec.md §4.5.
type Builder struct {
	root  *DiffNode
	index map[node.Node]*entry
}

// NewBuilder wraps every node of prototype in its own DiffNode, one level
// per original level, with no edits applied yet — GetBefore and GetAfter
// both equal prototype until operations are applied.
func NewBuilder(prototype node.Node) *Builder {
	b := &Builder{index: make(map[node.Node]*entry)}
	b.root = b.wrap(prototype, nil)
	return b
}

func (b *Builder) wrap(n node.Node, parent *DiffNode) *DiffNode {
	dn := &DiffNode{prototype: n}
	count := n.ChildCount()
	dn.items = make([]node.Node, count)
	for i := 0; i < count; i++ {
		dn.items[i] = b.wrap(n.Child(i), dn)
	}
	b.index[n] = &entry{wrapper: dn, parent: parent}
	return dn
}

// Root returns the Builder's current DiffNode tree.
func (b *Builder) Root() *DiffNode { return b.root }

func findSlot(items []node.Node, target node.Node) int {
	for i, it := range items {
		if it == target {
			return i
		}
	}
	return -1
}

// InsertNode splices an Insert action for newNode into parentL's child
// list, immediately after anchorL (or at index 0 if anchorL is nil).
// parentL nil means "the diff tree's own root". It reports false if
// parentL is not a node of the prototype, or if a non-nil anchorL is not a
// node of the prototype or no longer sits in parentL's item list (e.g. its
// slot was already converted to a Delete or Replace). A parentL whose own
// slot was already converted is still found, and the insert lands in its
// detached DiffNode.
func (b *Builder) InsertNode(parentL, anchorL, newNode node.Node) bool {
	parentDN := b.root
	if parentL != nil {
		e, ok := b.index[parentL]
		if !ok {
			return false
		}
		parentDN = e.wrapper
	}

	at := 0
	if anchorL != nil {
		ae, ok := b.index[anchorL]
		if !ok {
			return false
		}
		slot := findSlot(parentDN.items, ae.wrapper)
		if slot < 0 {
			return false
		}
		at = slot + 1
	}

	ins := action.NewInsert(newNode)
	items := make([]node.Node, 0, len(parentDN.items)+1)
	items = append(items, parentDN.items[:at]...)
	items = append(items, ins)
	items = append(items, parentDN.items[at:]...)
	parentDN.items = items
	return true
}

// ReplaceNode swaps beforeL's slot for a Replace action carrying beforeL
// and afterR. It reports false if beforeL is the prototype root (which has
// no enclosing slot to replace) or cannot be located.
func (b *Builder) ReplaceNode(beforeL, afterR node.Node) bool {
	return b.SetSlot(beforeL, action.NewReplace(beforeL, afterR))
}

// DeleteNode swaps beforeL's slot for a Delete action. It reports false if
// beforeL is the prototype root or cannot be located.
func (b *Builder) DeleteNode(beforeL node.Node) bool {
	return b.SetSlot(beforeL, action.NewDelete(beforeL))
}

// SetSlot replaces targetL's own slot in its enclosing DiffNode with item,
// whatever item is — an Action (ReplaceNode/DeleteNode's case) or a pattern
// Hole (pattern.Builder's MakeHole). It reports false if targetL is the
// prototype root or has already been consumed by an earlier SetSlot call
// (idempotence: a slot converted away from a DiffNode can't be found again
// by identity).
func (b *Builder) SetSlot(targetL node.Node, item node.Node) bool {
	e, ok := b.index[targetL]
	if !ok || e.parent == nil {
		return false
	}
	slot := findSlot(e.parent.items, e.wrapper)
	if slot < 0 {
		return false
	}
	e.parent.items[slot] = item
	return true
}

// Build applies a Mapping's Inserted, Replaced and Deleted sets to a fresh
// Builder over prototype, in that order, and returns the resulting DiffNode
// root. Per §7's batch propagation policy, a single operation's failure
// (its target already consumed by an enclosing edit) doesn't abort the
// rest of the batch.
func Build(prototype node.Node, m *mapper.Mapping) *DiffNode {
	b := NewBuilder(prototype)

	for _, ins := range m.Inserted {
		var anchorL node.Node
		if ins.Anchor != nil {
			if al, ok := m.MatchInv[ins.Anchor]; ok {
				anchorL = al
			}
		}
		b.InsertNode(ins.Parent, anchorL, ins.New)
	}
	for _, p := range m.Replaced {
		b.ReplaceNode(p.Before, p.After)
	}
	for _, ln := range m.Deleted {
		b.DeleteNode(ln)
	}

	return b.root
}
