package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/asttree/node"
)

func leaf(name, data string) node.Node {
	return node.Compose(node.NewType(name), data, nil, nil)
}

func branch(name string, children ...node.Node) node.Node {
	return node.Compose(node.NewType(name), "", children, nil)
}

// TestPatchHoleAndReplace mirrors spec.md's worked example: the pattern
// "Add(#1, IntLit<1>) -> Add(#1, IntLit<2>)" matched against
// "Assign(z, Add(v, IntLit<1>))" binds hole 1 to v and rewrites the
// literal in place.
func TestPatchHoleAndReplace(t *testing.T) {
	proto := branch("Add", leaf("Var", "ph"), leaf("IntLit", "1"))
	pb := NewBuilder(proto)
	require.True(t, pb.MakeHole(proto.Child(0), 1))
	require.True(t, pb.ReplaceNode(proto.Child(1), leaf("IntLit", "2")))

	subject := branch("Assign", leaf("Var", "z"), branch("Add", leaf("Var", "v"), leaf("IntLit", "1")))
	want := branch("Assign", leaf("Var", "z"), branch("Add", leaf("Var", "v"), leaf("IntLit", "2")))

	got := Patch(pb.Pattern(), subject)
	assert.True(t, node.DeepCompare(got, want))
}

func TestMatchRejectsHoleTypeMismatch(t *testing.T) {
	proto := branch("Add", leaf("Var", "ph"), leaf("IntLit", "1"))
	pb := NewBuilder(proto)
	require.True(t, pb.MakeHole(proto.Child(0), 1))

	subject := branch("Add", leaf("IntLit", "9"), leaf("IntLit", "1"))
	matches := NewMatcher(pb.Pattern()).Match(subject)
	assert.Empty(t, matches)
}

func TestMatchRejectsUnifiedHoleMismatch(t *testing.T) {
	proto := branch("Triple", leaf("Var", "a"), leaf("Var", "b"), leaf("IntLit", "1"))
	pb := NewBuilder(proto)
	require.True(t, pb.MakeHole(proto.Child(0), 1))
	require.True(t, pb.MakeHole(proto.Child(1), 1))
	require.True(t, pb.ReplaceNode(proto.Child(2), leaf("IntLit", "2")))

	mismatched := branch("Triple", leaf("Var", "x"), leaf("Var", "y"), leaf("IntLit", "1"))
	assert.Empty(t, NewMatcher(pb.Pattern()).Match(mismatched))

	matched := branch("Triple", leaf("Var", "x"), leaf("Var", "x"), leaf("IntLit", "1"))
	require.Len(t, NewMatcher(pb.Pattern()).Match(matched), 1)
}

func TestMatchCommitsNothingOnPartialMismatch(t *testing.T) {
	proto := branch("Add", leaf("Var", "ph"), leaf("IntLit", "1"))
	pb := NewBuilder(proto)
	require.True(t, pb.ReplaceNode(proto.Child(1), leaf("IntLit", "2")))

	subject := branch("Add", leaf("Var", "v"), leaf("IntLit", "999"))
	assert.Empty(t, NewMatcher(pb.Pattern()).Match(subject))
}

func TestPatchInsertsAtAnchor(t *testing.T) {
	proto := branch("Block", leaf("Stmt", "a"))
	pb := NewBuilder(proto)
	require.True(t, pb.InsertNode(proto, proto.Child(0), leaf("Stmt", "b")))

	subject := branch("Block", leaf("Stmt", "a"))
	want := branch("Block", leaf("Stmt", "a"), leaf("Stmt", "b"))

	got := Patch(pb.Pattern(), subject)
	assert.True(t, node.DeepCompare(got, want))
}
