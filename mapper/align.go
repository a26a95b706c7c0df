package mapper

import (
	"github.com/oxhq/asttree/hash"
	"github.com/oxhq/asttree/node"
)

// alignPair decides how to reconcile one (lc, rc) position once a caller
// has established they occupy corresponding slots: identical subtrees
// match wholesale; same-type leaves with differing data become a Replace;
// same-type containers recurse one level via reconcileChildren; anything
// else is a Delete of lc paired with an Insert of rc anchored at anchor.
func alignPair(
	lc, rc node.Node,
	parent, anchor node.Node,
	m *Mapping,
	matchedL, matchedR map[node.Node]bool,
	cache *hash.Cache,
) {
	switch {
	case cache.Absolute(lc) == cache.Absolute(rc):
		matchIsomorphic(lc, rc, m, matchedL, matchedR)
	case lc.Type().Name != rc.Type().Name:
		markDeletedSubtree(lc, m, matchedL)
		markInsertedSubtree(rc, parent, anchor, m, matchedR)
	case lc.ChildCount() == 0 && rc.ChildCount() == 0:
		m.Replaced = append(m.Replaced, Pair{Before: lc, After: rc})
		matchedL[lc], matchedR[rc] = true, true
	default:
		matchedL[lc], matchedR[rc] = true, true
		m.Match[lc], m.MatchInv[rc] = rc, lc
		reconcileChildren(node.Children(lc), node.Children(rc), lc, m, matchedL, matchedR, cache, alignPair)
	}
}
