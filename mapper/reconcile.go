package mapper

import (
	"github.com/oxhq/asttree/hash"
	"github.com/oxhq/asttree/node"
)

// matchIsomorphic pairs ln and rn and recursively pairs their children by
// index — step 3 of the bottom-up algorithm: once two subtrees are known
// to share an absolute hash, they are (for the mapper's purposes) already
// isomorphic, so no further comparison is needed below this point.
func matchIsomorphic(ln, rn node.Node, m *Mapping, matchedL, matchedR map[node.Node]bool) {
	if matchedL[ln] || matchedR[rn] {
		return
	}
	m.Match[ln] = rn
	m.MatchInv[rn] = ln
	matchedL[ln] = true
	matchedR[rn] = true
	n := ln.ChildCount()
	for i := 0; i < n; i++ {
		matchIsomorphic(ln.Child(i), rn.Child(i), m, matchedL, matchedR)
	}
}

func markDeletedSubtree(ln node.Node, m *Mapping, matchedL map[node.Node]bool) {
	m.Deleted = append(m.Deleted, ln)
	var mark func(node.Node)
	mark = func(n node.Node) {
		matchedL[n] = true
		for i := 0; i < n.ChildCount(); i++ {
			mark(n.Child(i))
		}
	}
	mark(ln)
}

func markInsertedSubtree(rn, parent, anchor node.Node, m *Mapping, matchedR map[node.Node]bool) {
	m.Inserted = append(m.Inserted, Insertion{Parent: parent, Anchor: anchor, New: rn})
	var mark func(node.Node)
	mark = func(n node.Node) {
		matchedR[n] = true
		for i := 0; i < n.ChildCount(); i++ {
			mark(n.Child(i))
		}
	}
	mark(rn)
}

// alignFunc is how reconcileChildren settles one (lc, rc) position once it
// has run out of already-matched neighbors to anchor on. BottomUp's callers
// pass alignPair, recursing with the same naive positional strategy;
// TopDown's callers pass topDownAlign, recursing through sectionAlign so a
// child shifted by a sibling insert/delete is still found by FindNodePair
// instead of being desynced by this function's own two-pointer walk.
type alignFunc func(
	lc, rc node.Node,
	parent, anchor node.Node,
	m *Mapping,
	matchedL, matchedR map[node.Node]bool,
	cache *hash.Cache,
)

// reconcileChildren implements step 4 of the bottom-up algorithm at one
// parent level: lChildren and rChildren are the (already partially
// matched, via the caller's earlier hash pass) child lists of parent and
// its matched R counterpart. It walks both lists left to right, advancing
// past already matched pairs and emitting Insert/Delete/Replace for the
// divergent remainder, keeping insertion anchors pinned to the previous
// already placed right-hand child. Positions where neither side is already
// matched are settled by align, not hardcoded to alignPair, so a caller
// doing section-based reconciliation can keep using its own strategy one
// level deeper.
func reconcileChildren(
	lChildren, rChildren []node.Node,
	parent node.Node,
	m *Mapping,
	matchedL, matchedR map[node.Node]bool,
	cache *hash.Cache,
	align alignFunc,
) {
	i, j := 0, 0
	var anchor node.Node

	for i < len(lChildren) || j < len(rChildren) {
		switch {
		case i < len(lChildren) && j < len(rChildren) &&
			matchedL[lChildren[i]] && m.Match[lChildren[i]] == rChildren[j]:
			anchor = rChildren[j]
			i++
			j++

		case i < len(lChildren) && matchedL[lChildren[i]]:
			// lChildren[i] is matched to something other than rChildren[j]:
			// its counterpart lies further along rChildren. If rChildren[j]
			// is itself unmatched, it must be a fresh insertion at this
			// position; otherwise skip lChildren[i] (its turn will come).
			if j < len(rChildren) && !matchedR[rChildren[j]] {
				markInsertedSubtree(rChildren[j], parent, anchor, m, matchedR)
				anchor = rChildren[j]
				j++
			} else {
				i++
			}

		case j < len(rChildren) && matchedR[rChildren[j]]:
			if i < len(lChildren) && !matchedL[lChildren[i]] {
				markDeletedSubtree(lChildren[i], m, matchedL)
				i++
			} else {
				j++
			}

		case i < len(lChildren) && j < len(rChildren):
			lc, rc := lChildren[i], rChildren[j]
			align(lc, rc, parent, anchor, m, matchedL, matchedR, cache)
			anchor = rc
			i++
			j++

		case i < len(lChildren):
			markDeletedSubtree(lChildren[i], m, matchedL)
			i++

		default:
			markInsertedSubtree(rChildren[j], parent, anchor, m, matchedR)
			anchor = rChildren[j]
			j++
		}
	}
}

func preorder(n node.Node) []node.Node {
	out := []node.Node{n}
	for i := 0; i < n.ChildCount(); i++ {
		out = append(out, preorder(n.Child(i))...)
	}
	return out
}
