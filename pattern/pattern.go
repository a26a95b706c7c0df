// Package pattern implements the pattern matcher and patcher of spec.md
// §4.6: a Pattern is a difftree.DiffNode whose leaves may be action.Holes,
// and matching it against a subject tree yields the actions needed to
// rewrite every site where the whole pattern structurally matches.
package pattern

import (
	"github.com/oxhq/asttree/action"
	"github.com/oxhq/asttree/difftree"
	"github.com/oxhq/asttree/node"
)

// Builder wraps a difftree.Builder and additionally supports turning a
// prototype's slot into a Hole placeholder, per PatternBuilder.make_hole.
type Builder struct {
	*difftree.Builder
}

// NewBuilder wraps prototype in a fresh pattern-in-progress, identical to a
// plain difftree.Builder until MakeHole or an Insert/Replace/Delete
// operation is applied to one of its slots.
func NewBuilder(prototype node.Node) *Builder {
	return &Builder{Builder: difftree.NewBuilder(prototype)}
}

// MakeHole replaces prototype's slot with a Hole carrying prototype's type
// and number. It reports false if prototype is the pattern root (no
// enclosing slot) or its slot was already converted to an action/hole.
func (b *Builder) MakeHole(prototype node.Node, number uint32) bool {
	return b.SetSlot(prototype, action.NewHole(prototype, number))
}

// Pattern returns the built DiffNode tree, ready to hand to a Matcher.
func (b *Builder) Pattern() *difftree.DiffNode { return b.Root() }

// MatchedAction is one rewrite step a successful match site produced: Kind
// discriminates Insert/Replace/Delete; Before/After name the subject node
// being replaced or deleted and the new node to insert or substitute;
// Parent/Anchor locate an Insert within its subject parent's child list.
type MatchedAction struct {
	Kind   action.Kind
	Parent node.Node
	Anchor node.Node
	Before node.Node
	After  node.Node
}

// Matcher locates every subject-tree position where a Pattern fully
// matches and collects the actions it prescribes at each such site.
type Matcher struct {
	pattern *difftree.DiffNode
}

// NewMatcher binds a Matcher to pattern.
func NewMatcher(pattern *difftree.DiffNode) *Matcher {
	return &Matcher{pattern: pattern}
}

// Match walks every node of subject (pre-order) and, at each one, attempts
// a full structural match of the pattern rooted there. Per §4.6, "the
// Matcher must commit actions only if the entire pattern matches": a
// failed attempt at one site contributes nothing, and matching continues
// into that node's children and across the rest of the tree regardless.
func (m *Matcher) Match(subject node.Node) []MatchedAction {
	var all []MatchedAction
	var walk func(node.Node)
	walk = func(n node.Node) {
		bindings := make(map[uint32]node.Node)
		var site []MatchedAction
		if matchNode(m.pattern, n, bindings, &site) {
			all = append(all, site...)
		}
		for i := 0; i < n.ChildCount(); i++ {
			walk(n.Child(i))
		}
	}
	walk(subject)
	return all
}

// matchNode attempts to match one pattern item against one subject node,
// appending any actions the successful match prescribes to acts.
func matchNode(item, subject node.Node, bindings map[uint32]node.Node, acts *[]MatchedAction) bool {
	if h, ok := action.AsHole(item); ok {
		if subject.Type().Name != h.HolePrototypeType().Name {
			return false
		}
		if bound, ok := bindings[h.HoleNumber()]; ok {
			return node.DeepCompare(bound, subject)
		}
		bindings[h.HoleNumber()] = subject
		return true
	}

	if a, ok := action.AsAction(item); ok {
		switch a.ActionKind() {
		case action.KindReplace:
			if !node.DeepCompare(subject, a.Before()) {
				return false
			}
			*acts = append(*acts, MatchedAction{Kind: action.KindReplace, Before: subject, After: a.After()})
			return true
		case action.KindDelete:
			if !node.DeepCompare(subject, a.Before()) {
				return false
			}
			*acts = append(*acts, MatchedAction{Kind: action.KindDelete, Before: subject})
			return true
		default:
			// An Insert can only occur as a children-list item (handled by
			// matchChildren below); encountered here, it cannot match a
			// single subject node.
			return false
		}
	}

	dn, ok := item.(*difftree.DiffNode)
	if !ok {
		return node.DeepCompare(item, subject)
	}
	if subject.Type().Name != dn.Type().Name || subject.Data() != dn.Data() {
		return false
	}
	return matchChildren(node.Children(dn), node.Children(subject), subject, bindings, acts)
}

// matchChildren walks a pattern DiffNode's items against a subject's
// children in lockstep: Insert items consume no subject child (they only
// advance the pattern cursor, per §4.6), every other item consumes exactly
// one. The two lists must exhaust together for the site to match.
func matchChildren(patternItems, subjectChildren []node.Node, subjectParent node.Node, bindings map[uint32]node.Node, acts *[]MatchedAction) bool {
	pi, si := 0, 0
	var anchor node.Node

	for pi < len(patternItems) {
		item := patternItems[pi]

		if ins, ok := item.(*action.Insert); ok {
			*acts = append(*acts, MatchedAction{
				Kind:   action.KindInsert,
				Parent: subjectParent,
				Anchor: anchor,
				After:  ins.After(),
			})
			pi++
			continue
		}

		if si >= len(subjectChildren) {
			return false
		}
		sc := subjectChildren[si]
		if !matchNode(item, sc, bindings, acts) {
			return false
		}
		anchor = sc
		pi++
		si++
	}

	return si == len(subjectChildren)
}
