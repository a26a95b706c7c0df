// Package mapper implements the tree-mapping algorithms of spec.md §4.3:
// given two tree roots L and R, produce a Mapping — a partial bijection
// between L's and R's nodes plus three disjoint sets (Inserted, Replaced,
// Deleted).
//
// Grounded on qri-io/deepdiff's hash-first subtree matching (compute a
// content hash per subtree, group the other tree's subtrees by hash, match
// unique hashes starting with the heaviest subtrees) generalized from
// deepdiff's flat "exact match list" to the spec's full reconciliation of
// partially-mapped parents (insert/delete/replace at the divergent
// children), and on the Cobéna & Marian top-down algorithm deepdiff's own
// doc comment cites for the alternative TopDown entry point.
package mapper

import "github.com/oxhq/asttree/node"

// Insertion records one Insert action the mapper produced: New is the
// inserted R subtree's root, Anchor is the previous already-mapped right
// sibling it follows (nil means "insert at the start of its parent"), and
// Parent is the L-side node whose child list the insertion belongs to (nil
// only for the degenerate whole-tree-replaced case).
type Insertion struct {
	Parent node.Node
	Anchor node.Node
	New    node.Node
}

// Pair is one Replace action: a pair of same-type L/R leaves aligned by
// position whose data differ. An aligned pair whose types differ is not a
// Pair; the mapper records it as a Delete of the L node plus an Insertion
// of the R node.
type Pair struct {
	Before node.Node
	After  node.Node
}

// Mapping is the quadruple (bijection, inserted, replaced, deleted)
// described in spec.md §3 and the GLOSSARY. Match/MatchInv hold the
// bijection in either direction: every node of an isomorphic L/R subtree
// pair, plus same-type parents whose differing children were reconciled
// one level down; Inserted/Replaced/Deleted record the edit script
// needed to turn L into R at the positions where the two trees diverge.
type Mapping struct {
	Match    map[node.Node]node.Node
	MatchInv map[node.Node]node.Node
	Inserted []Insertion
	Replaced []Pair
	Deleted  []node.Node
}

func newMapping() *Mapping {
	return &Mapping{
		Match:    make(map[node.Node]node.Node),
		MatchInv: make(map[node.Node]node.Node),
	}
}

// MatchOf returns the R node l maps to, and whether a match exists.
func (m *Mapping) MatchOf(l node.Node) (node.Node, bool) {
	r, ok := m.Match[l]
	return r, ok
}

// MatchedL reports whether l is part of the bijection's domain.
func (m *Mapping) MatchedL(l node.Node) bool {
	_, ok := m.Match[l]
	return ok
}

// MatchedR reports whether r is part of the bijection's range.
func (m *Mapping) MatchedR(r node.Node) bool {
	_, ok := m.MatchInv[r]
	return ok
}

// deletedSet/insertedSet materialize the node identities covered by
// Deleted/Inserted, including every node in the subtrees those boundary
// actions cover — used by the invariant P4 checks CoversL/CoversR.
func (m *Mapping) deletedSet() map[node.Node]bool {
	set := make(map[node.Node]bool)
	for _, d := range m.Deleted {
		markSubtree(d, set)
	}
	return set
}

func (m *Mapping) insertedSet() map[node.Node]bool {
	set := make(map[node.Node]bool)
	for _, ins := range m.Inserted {
		markSubtree(ins.New, set)
	}
	return set
}

func markSubtree(n node.Node, set map[node.Node]bool) {
	set[n] = true
	for i := 0; i < n.ChildCount(); i++ {
		markSubtree(n.Child(i), set)
	}
}

// CoversL reports whether every node reachable from l is accounted for by
// the mapping (mapped, a Replaced "before", or within a Deleted subtree) —
// invariant P4's left-hand clause.
func (m *Mapping) CoversL(l node.Node) bool {
	deleted := m.deletedSet()
	var walk func(node.Node) bool
	walk = func(n node.Node) bool {
		if m.MatchedL(n) || deleted[n] {
			return true
		}
		for _, p := range m.Replaced {
			if p.Before == n {
				return true
			}
		}
		return false
	}
	ok := true
	var visit func(node.Node)
	visit = func(n node.Node) {
		if !walk(n) {
			ok = false
		}
		for i := 0; i < n.ChildCount(); i++ {
			visit(n.Child(i))
		}
	}
	visit(l)
	return ok
}

// CoversR is CoversL's mirror for R (invariant P4's right-hand clause).
func (m *Mapping) CoversR(r node.Node) bool {
	inserted := m.insertedSet()
	var walk func(node.Node) bool
	walk = func(n node.Node) bool {
		if m.MatchedR(n) || inserted[n] {
			return true
		}
		for _, p := range m.Replaced {
			if p.After == n {
				return true
			}
		}
		return false
	}
	ok := true
	var visit func(node.Node)
	visit = func(n node.Node) {
		if !walk(n) {
			ok = false
		}
		for i := 0; i < n.ChildCount(); i++ {
			visit(n.Child(i))
		}
	}
	visit(r)
	return ok
}
