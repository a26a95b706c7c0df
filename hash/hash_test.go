package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/asttree/node"
)

func leaf(name, data string) node.Node {
	return node.Compose(node.NewType(name), data, nil, nil)
}

func branch(name string, children ...node.Node) node.Node {
	return node.Compose(node.NewType(name), "", children, nil)
}

func TestAbsoluteHashEqualForIsomorphicSubtrees(t *testing.T) {
	a := branch("Block", leaf("Stmt", "x"), leaf("Stmt", "y"))
	b := branch("Block", leaf("Stmt", "x"), leaf("Stmt", "y"))

	c := NewCache()
	assert.Equal(t, c.Absolute(a), c.Absolute(b))
}

func TestAbsoluteHashDiffersOnData(t *testing.T) {
	a := branch("Block", leaf("Stmt", "x"))
	b := branch("Block", leaf("Stmt", "z"))

	c := NewCache()
	assert.NotEqual(t, c.Absolute(a), c.Absolute(b))
}

func TestAbsoluteHashDiffersOnStructure(t *testing.T) {
	a := branch("Block", leaf("Stmt", "x"))
	b := branch("Block", leaf("Stmt", "x"), leaf("Stmt", "x"))

	c := NewCache()
	assert.NotEqual(t, c.Absolute(a), c.Absolute(b))
}

func TestAbsoluteHashIgnoresFragment(t *testing.T) {
	a := node.Compose(node.NewType("Stmt"), "x", nil, "fragA")
	b := node.Compose(node.NewType("Stmt"), "x", nil, "fragB")

	c := NewCache()
	assert.Equal(t, c.Absolute(a), c.Absolute(b))
}

func TestCacheMemoizesPerIdentity(t *testing.T) {
	n := leaf("Stmt", "x")
	c := NewCache()
	first := c.Absolute(n)
	second := c.Absolute(n)
	assert.Equal(t, first, second)
}

func TestWeightCountsAllNodes(t *testing.T) {
	tree := branch("Block", leaf("Stmt", "a"), branch("If", leaf("Cond", "c")))
	assert.Equal(t, 4, Weight(tree))
}
