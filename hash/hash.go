// Package hash implements the two structural-hash functions the mapper and
// diff builder rely on to detect isomorphic subtrees in O(size): local_hash
// (type name + data) and absolute_hash (local hash folded with children's
// absolute hashes).
//
// Grounded on qri-io/deepdiff's tree-building walk, which computes a
// hash.Hash per subtree by writing each child's hash into the parent's
// hasher in order; asttree generalizes that from a fixed JSON value walk to
// an arbitrary node.Node tree, and widens deepdiff's 32-bit FNV-1 to 64-bit
// FNV-1a for a larger collision-free range (§4.2 only requires the hash
// reduce collisions enough for the "unique absolute hash" optimization to
// typically fire, not that it be collision-resistant).
package hash

import (
	"hash/fnv"

	"github.com/oxhq/asttree/node"
)

// Cache memoizes local and absolute hashes per node identity. A Cache is
// never safe for concurrent use and must not be shared across goroutines;
// each mapper.BottomUp / mapper.TopDown call creates its own, per §5 and
// §9's "isolated per-algorithm instance, never global" guidance — this is a
// deliberate departure from the teacher's package-level matcher cache.
type Cache struct {
	local map[node.Node]uint64
	abs   map[node.Node]uint64
}

// NewCache returns an empty, ready-to-use Cache.
func NewCache() *Cache {
	return &Cache{
		local: make(map[node.Node]uint64),
		abs:   make(map[node.Node]uint64),
	}
}

// Local returns mix(type name, data) for n, memoized by n's identity.
func (c *Cache) Local(n node.Node) uint64 {
	if v, ok := c.local[n]; ok {
		return v
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(n.Type().Name))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(n.Data()))
	v := h.Sum64()
	c.local[n] = v
	return v
}

// Absolute returns fold(local_hash(n), absolute_hash(children)...), the
// content-addressed fingerprint of n's whole reachable subtree. It is total
// over finite trees and stable: equal subtrees (per DeepCompare) always
// fold to the same value, since folding only depends on the local hashes
// and the recursively folded child hashes, never on fragment or identity.
func (c *Cache) Absolute(n node.Node) uint64 {
	if v, ok := c.abs[n]; ok {
		return v
	}
	h := fnv.New64a()
	var buf [8]byte
	putUint64(buf[:], c.Local(n))
	_, _ = h.Write(buf[:])
	for i := 0; i < n.ChildCount(); i++ {
		putUint64(buf[:], c.Absolute(n.Child(i)))
		_, _ = h.Write(buf[:])
	}
	v := h.Sum64()
	c.abs[n] = v
	return v
}

// Weight returns the subtree's node count (1 + sum of children's weight),
// the same quantity deepdiff calls Weight and the bottom-up mapper sorts
// candidates by — descending weight absorbs large shared subtrees first.
func Weight(n node.Node) int {
	w := 1
	for i := 0; i < n.ChildCount(); i++ {
		w += Weight(n.Child(i))
	}
	return w
}

func putUint64(buf []byte, v uint64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * uint(i)))
	}
}
