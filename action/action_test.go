package action

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/asttree/node"
)

func leaf(name, data string) node.Node {
	return node.Compose(node.NewType(name), data, nil, nil)
}

func TestInsertChildArity(t *testing.T) {
	n := leaf("Stmt", "new")
	ins := NewInsert(n)

	assert.Equal(t, KindInsert, ins.ActionKind())
	assert.Equal(t, 1, ins.ChildCount())
	assert.Same(t, n, ins.Child(0))
	assert.True(t, node.IsNull(ins.Child(1)))
	assert.Nil(t, ins.Before())
	assert.Same(t, n, ins.After())
}

func TestDeleteChildArity(t *testing.T) {
	n := leaf("Stmt", "old")
	del := NewDelete(n)

	assert.Equal(t, KindDelete, del.ActionKind())
	assert.Equal(t, 1, del.ChildCount())
	assert.Same(t, n, del.Before())
	assert.Nil(t, del.After())
}

func TestReplaceChildArity(t *testing.T) {
	before := leaf("Stmt", "old")
	after := leaf("Stmt", "new")
	rep := NewReplace(before, after)

	assert.Equal(t, KindReplace, rep.ActionKind())
	assert.Equal(t, 2, rep.ChildCount())
	assert.Same(t, before, rep.Child(0))
	assert.Same(t, after, rep.Child(1))
	assert.True(t, node.IsNull(rep.Child(2)))
}

func TestAsActionRejectsPlainNode(t *testing.T) {
	_, ok := AsAction(leaf("Stmt", "x"))
	assert.False(t, ok)
}

func TestAsActionAcceptsEachVariant(t *testing.T) {
	n := leaf("Stmt", "x")
	for _, a := range []Action{NewInsert(n), NewDelete(n), NewReplace(n, n)} {
		got, ok := AsAction(a)
		assert.True(t, ok)
		assert.Equal(t, a.ActionKind(), got.ActionKind())
	}
}

func TestHoleUnifiesNumberAcrossOccurrences(t *testing.T) {
	proto := leaf("Expr", "")
	h1 := NewHole(proto, 1)
	h2 := NewHole(proto, 1)
	h3 := NewHole(proto, 2)

	assert.Equal(t, h1.HoleNumber(), h2.HoleNumber())
	assert.NotEqual(t, h1.HoleNumber(), h3.HoleNumber())
}

func TestHoleOverridesColorProperty(t *testing.T) {
	proto := node.Compose(node.Type{Name: "Expr", Properties: map[string]string{"color": "blue"}}, "", nil, nil)
	h := NewHole(proto, 1)

	v, ok := h.Type().Property("color")
	assert.True(t, ok)
	assert.Equal(t, "purple", v)
}

func TestAsHoleRejectsAction(t *testing.T) {
	_, ok := AsHole(NewInsert(leaf("Stmt", "x")))
	assert.False(t, ok)
}
