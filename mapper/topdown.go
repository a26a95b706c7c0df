package mapper

import (
	"github.com/oxhq/asttree/extnode"
	"github.com/oxhq/asttree/hash"
	"github.com/oxhq/asttree/node"
)

// Section is a paired subsequence (left children, right children) the
// top-down mapper still needs to align, per the GLOSSARY.
type Section struct {
	Left  []node.Node
	Right []node.Node
}

// FindNodePair is the top-down mapper's node-pair finder: among all
// (i, j) offsets into left/right with equal absolute hash, it returns the
// offset (iL, iR) and run length k maximizing k — the longest contiguous
// matching child run — breaking ties by the smaller iL, then the smaller
// iR (§4.3).
func FindNodePair(left, right []node.Node, cache *hash.Cache) (iL, iR, k int) {
	bestK := 0
	bestIL, bestIR := -1, -1
	for i := 0; i < len(left); i++ {
		for j := 0; j < len(right); j++ {
			if cache.Absolute(left[i]) != cache.Absolute(right[j]) {
				continue
			}
			run := 0
			for i+run < len(left) && j+run < len(right) &&
				cache.Absolute(left[i+run]) == cache.Absolute(right[j+run]) {
				run++
			}
			if run > bestK || (run == bestK && bestIL >= 0 && (i < bestIL || (i == bestIL && j < bestIR))) {
				bestK, bestIL, bestIR = run, i, j
			}
		}
	}
	if bestIL < 0 {
		return 0, 0, 0
	}
	return bestIL, bestIR, bestK
}

// TopDown is the alternative mapping algorithm of spec.md §4.3: it walks
// both roots simultaneously, matches identical prefixes, and on
// divergence uses FindNodePair to locate the longest matching contiguous
// child run, recursing on the unmatched Sections to either side.
//
// Grounded on the extended node view (§4.4), which TopDown uses only to
// precompute absolute hashes uniformly for both trees before the
// sectioning walk — the view's parent/sibling back-edges aren't needed by
// this particular walk but are what a Section-based implementation reaches
// for once it must relate a run back to its position in the original tree.
func TopDown(l, r node.Node) *Mapping {
	cache := hash.NewCache()
	_ = extnode.Build(l, cache)
	_ = extnode.Build(r, cache)

	m := newMapping()
	matchedL := make(map[node.Node]bool)
	matchedR := make(map[node.Node]bool)

	topDownAlign(l, r, nil, nil, m, matchedL, matchedR, cache)

	for _, ln := range preorder(l) {
		if !matchedL[ln] {
			markDeletedSubtree(ln, m, matchedL)
		}
	}
	for _, rn := range preorder(r) {
		if !matchedR[rn] {
			markInsertedSubtree(rn, nil, nil, m, matchedR)
		}
	}
	return m
}

// topDownAlign is alignPair's counterpart for the top-down algorithm. Its
// default case — same type, both non-leaf, not already isomorphic — hands
// the child lists to sectionAlign instead of reconcileChildren's naive
// two-pointer merge, so FindNodePair gets a chance to localize a shifted
// child before any position-indexed fallback can desync around it.
func topDownAlign(
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
		sectionAlign(lc, Section{Left: node.Children(lc), Right: node.Children(rc)}, m, matchedL, matchedR, cache)
	}
}

func sectionAlign(parent node.Node, s Section, m *Mapping, matchedL, matchedR map[node.Node]bool, cache *hash.Cache) {
	left, right := s.Left, s.Right

	// Match an identical prefix.
	i := 0
	for i < len(left) && i < len(right) && !matchedL[left[i]] && !matchedR[right[i]] &&
		cache.Absolute(left[i]) == cache.Absolute(right[i]) {
		matchIsomorphic(left[i], right[i], m, matchedL, matchedR)
		i++
	}
	left, right = left[i:], right[i:]

	if len(left) == 0 || len(right) == 0 {
		return
	}

	iL, iR, k := FindNodePair(left, right, cache)
	if k == 0 {
		reconcileChildren(left, right, parent, m, matchedL, matchedR, cache, topDownAlign)
		return
	}

	sectionAlign(parent, Section{Left: left[:iL], Right: right[:iR]}, m, matchedL, matchedR, cache)
	for t := 0; t < k; t++ {
		matchIsomorphic(left[iL+t], right[iR+t], m, matchedL, matchedR)
	}
	sectionAlign(parent, Section{Left: left[iL+k:], Right: right[iR+k:]}, m, matchedL, matchedR, cache)
}
