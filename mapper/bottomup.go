package mapper

import (
	"sort"

	"github.com/oxhq/asttree/hash"
	"github.com/oxhq/asttree/node"
)

// BottomUp is the "fast" default mapping algorithm of spec.md §4.3:
//
//  1. Compute absolute hashes of every node in L and R.
//  2. Group R's nodes by absolute hash; for each L node whose hash appears
//     exactly once in R and is still unmatched, match it with the unique R
//     node, processing L nodes heaviest (deepest subtree) first so large
//     shared subtrees are absorbed before their descendants are considered
//     individually.
//  3. Matched pairs recursively pair their children by index (they are
//     already isomorphic).
//  4. Whatever remains unmatched is reconciled top-down from the roots,
//     emitting Insert/Replace/Delete at the positions where the two trees
//     still diverge.
//
// BottomUp never fails. When the two roots' type names differ (and their
// hashes do not match), the result has an empty bijection, L's root in
// Deleted and R's root in Inserted with a nil Parent and nil Anchor; R's
// top-level children are not inserted one by one under L's root. Roots of
// the same type are matched to each other and their children reconciled.
func BottomUp(l, r node.Node) *Mapping {
	cache := hash.NewCache()
	m := newMapping()
	matchedL := make(map[node.Node]bool)
	matchedR := make(map[node.Node]bool)

	lNodes := preorder(l)
	rNodes := preorder(r)

	rGroups := make(map[uint64][]node.Node)
	for _, rn := range rNodes {
		h := cache.Absolute(rn)
		rGroups[h] = append(rGroups[h], rn)
	}

	sort.SliceStable(lNodes, func(i, j int) bool {
		return hash.Weight(lNodes[i]) > hash.Weight(lNodes[j])
	})

	for _, ln := range lNodes {
		if matchedL[ln] {
			continue
		}
		h := cache.Absolute(ln)
		group := rGroups[h]
		if len(group) != 1 {
			continue
		}
		rn := group[0]
		if matchedR[rn] {
			continue
		}
		matchIsomorphic(ln, rn, m, matchedL, matchedR)
	}

	if !matchedL[l] && !matchedR[r] {
		alignPair(l, r, nil, nil, m, matchedL, matchedR, cache)
	}

	for _, ln := range lNodes {
		if !matchedL[ln] {
			markDeletedSubtree(ln, m, matchedL)
		}
	}
	for _, rn := range rNodes {
		if !matchedR[rn] {
			markInsertedSubtree(rn, nil, nil, m, matchedR)
		}
	}

	return m
}
