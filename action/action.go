// Package action defines the three edit-action node variants (Insert,
// Replace, Delete) and the Hole pattern-placeholder variant. All four
// implement node.Node, so algorithms that walk a tree uniformly (hashing,
// DeepCompare) never need to special-case them; algorithms that must
// distinguish an action from a plain node type-assert against the Action or
// Hole interfaces below.
package action

import "github.com/oxhq/asttree/node"

// Kind discriminates the three action variants.
type Kind uint8

const (
	KindInsert Kind = iota
	KindReplace
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "Insert"
	case KindReplace:
		return "Replace"
	case KindDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// color is a static, per-variant property (§9: "Property maps computed
// from inheritance... become static per-variant accessors on the variant
// discriminant, not per-type properties tables").
func (k Kind) color() string {
	switch k {
	case KindInsert:
		return "green"
	case KindReplace:
		return "orange"
	case KindDelete:
		return "red"
	default:
		return ""
	}
}

// Action is implemented by Insert, Replace and Delete. Before/After project
// the node's pre- and post-action state, per the child-arity table in
// spec.md §3: Insert has no Before, Delete has no After, Replace has both.
type Action interface {
	node.Node
	ActionKind() Kind
	Before() node.Node
	After() node.Node
}

type baseAction struct {
	kind Kind
}

func (a baseAction) Type() node.Type {
	return node.Type{Name: a.kind.String(), Properties: map[string]string{"color": a.kind.color()}}
}

func (baseAction) Data() string { return "" }

func (a baseAction) Properties() map[string]string {
	return map[string]string{"color": a.kind.color()}
}

func (baseAction) Fragment() any { return nil }

func (a baseAction) ActionKind() Kind { return a.kind }

// Insert carries the new node and, implicitly through the diff tree slot it
// occupies, its anchor (the previous sibling it follows). children() = [n];
// before() = null; after() = n.
type Insert struct {
	baseAction
	New node.Node
}

// NewInsert constructs an Insert action wrapping newNode.
func NewInsert(newNode node.Node) *Insert {
	return &Insert{baseAction: baseAction{kind: KindInsert}, New: newNode}
}

func (a *Insert) ChildCount() int { return 1 }
func (a *Insert) Child(i int) node.Node {
	if i == 0 {
		return a.New
	}
	return node.Null
}
func (a *Insert) Before() node.Node { return nil }
func (a *Insert) After() node.Node  { return a.New }

// Delete carries the removed node. children() = [n]; before() = n;
// after() = null.
type Delete struct {
	baseAction
	Target node.Node
}

// NewDelete constructs a Delete action wrapping target.
func NewDelete(target node.Node) *Delete {
	return &Delete{baseAction: baseAction{kind: KindDelete}, Target: target}
}

func (a *Delete) ChildCount() int { return 1 }
func (a *Delete) Child(i int) node.Node {
	if i == 0 {
		return a.Target
	}
	return node.Null
}
func (a *Delete) Before() node.Node { return a.Target }
func (a *Delete) After() node.Node  { return nil }

// Replace carries both the old and new node. children() = [before, after].
type Replace struct {
	baseAction
	Old node.Node
	New node.Node
}

// NewReplace constructs a Replace action from before to after.
func NewReplace(before, after node.Node) *Replace {
	return &Replace{baseAction: baseAction{kind: KindReplace}, Old: before, New: after}
}

func (a *Replace) ChildCount() int { return 2 }
func (a *Replace) Child(i int) node.Node {
	switch i {
	case 0:
		return a.Old
	case 1:
		return a.New
	default:
		return node.Null
	}
}
func (a *Replace) Before() node.Node { return a.Old }
func (a *Replace) After() node.Node  { return a.New }

// AsAction type-asserts n against the Action interface.
func AsAction(n node.Node) (Action, bool) {
	a, ok := n.(Action)
	return a, ok
}
