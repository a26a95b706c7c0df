package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/asttree/hash"
	"github.com/oxhq/asttree/node"
)

func leaf(name, data string) node.Node {
	return node.Compose(node.NewType(name), data, nil, nil)
}

func branch(name string, children ...node.Node) node.Node {
	return node.Compose(node.NewType(name), "", children, nil)
}

func TestBottomUpIdenticalTreesMapEveryNode(t *testing.T) {
	a := leaf("Stmt", "a")
	b := leaf("Stmt", "b")
	l := branch("Block", a, b)
	r := branch("Block", leaf("Stmt", "a"), leaf("Stmt", "b"))

	m := BottomUp(l, r)
	require.True(t, m.MatchedL(l))
	assert.Empty(t, m.Inserted)
	assert.Empty(t, m.Replaced)
	assert.Empty(t, m.Deleted)
	assert.True(t, m.CoversL(l))
	assert.True(t, m.CoversR(r))
}

func TestBottomUpDetectsLeafReplace(t *testing.T) {
	l := branch("Block", leaf("Stmt", "a"))
	r := branch("Block", leaf("Stmt", "A"))

	m := BottomUp(l, r)
	require.Len(t, m.Replaced, 1)
	assert.Equal(t, "a", m.Replaced[0].Before.Data())
	assert.Equal(t, "A", m.Replaced[0].After.Data())
	assert.True(t, m.CoversL(l))
	assert.True(t, m.CoversR(r))
}

func TestBottomUpDetectsInsertAndDelete(t *testing.T) {
	a := leaf("Stmt", "a")
	l := branch("Block", a)
	r := branch("Block", leaf("Stmt", "a"), leaf("Stmt", "b"))

	m := BottomUp(l, r)
	assert.Empty(t, m.Deleted)
	require.Len(t, m.Inserted, 1)
	assert.Equal(t, "b", m.Inserted[0].New.Data())
	assert.True(t, m.CoversL(l))
	assert.True(t, m.CoversR(r))
}

func TestBottomUpDegenerateUnrelatedTrees(t *testing.T) {
	l := branch("Block", leaf("Stmt", "a"))
	r := branch("Module", leaf("Import", "b"))

	m := BottomUp(l, r)
	assert.Empty(t, m.Match)
	assert.NotEmpty(t, m.Deleted)
	assert.NotEmpty(t, m.Inserted)
	assert.True(t, m.CoversL(l))
	assert.True(t, m.CoversR(r))
}

func TestTopDownMatchesSharedPrefixAndSuffix(t *testing.T) {
	l := branch("Block", leaf("Stmt", "a"), leaf("Stmt", "x"), leaf("Stmt", "c"))
	r := branch("Block", leaf("Stmt", "a"), leaf("Stmt", "y"), leaf("Stmt", "c"))

	m := TopDown(l, r)
	assert.True(t, m.CoversL(l))
	assert.True(t, m.CoversR(r))
	require.Len(t, m.Replaced, 1)
	assert.Equal(t, "x", m.Replaced[0].Before.Data())
	assert.Equal(t, "y", m.Replaced[0].After.Data())
}

func TestTopDownMatchesUnchangedTailAcrossADeletedSibling(t *testing.T) {
	assignX := branch("Assign", leaf("Var", "x"), leaf("IntLit", "1"))
	assignY := branch("Assign", leaf("Var", "y"), leaf("IntLit", "2"))
	ret := branch("Ret", leaf("Var", "x"))

	l := branch("Block", assignX, assignY, ret)
	r := branch("Block",
		branch("Assign", leaf("Var", "x"), leaf("IntLit", "1")),
		branch("Ret", leaf("Var", "x")),
	)

	m := TopDown(l, r)
	assert.True(t, m.CoversL(l))
	assert.True(t, m.CoversR(r))
	assert.Empty(t, m.Inserted, "Ret(x) is unchanged and must not be reported as inserted")
	require.Len(t, m.Deleted, 1, "only Assign(y, 2) should be deleted")
	assert.Equal(t, assignY, m.Deleted[0])
	matched, ok := m.MatchOf(ret)
	require.True(t, ok, "Ret(x) must be matched across the deleted sibling, not paired by position")
	assert.Equal(t, r.Child(1), matched)
}

func TestFindNodePairLongestRun(t *testing.T) {
	left := []node.Node{leaf("A", "1"), leaf("A", "2"), leaf("A", "3")}
	right := []node.Node{leaf("A", "0"), leaf("A", "2"), leaf("A", "3")}

	c := hash.NewCache()
	iL, iR, k := FindNodePair(left, right, c)
	assert.Equal(t, 1, iL)
	assert.Equal(t, 1, iR)
	assert.Equal(t, 2, k)
}

func TestFindNodePairNoMatch(t *testing.T) {
	left := []node.Node{leaf("A", "1")}
	right := []node.Node{leaf("B", "2")}

	c := hash.NewCache()
	iL, iR, k := FindNodePair(left, right, c)
	assert.Equal(t, 0, iL)
	assert.Equal(t, 0, iR)
	assert.Equal(t, 0, k)
}

func TestMappingCoversDetectsGap(t *testing.T) {
	l := branch("Block", leaf("Stmt", "a"))
	m := newMapping()
	assert.False(t, m.CoversL(l))
}
