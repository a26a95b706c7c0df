package jsontree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/asttree/action"
	"github.com/oxhq/asttree/node"
)

func leaf(name, data string) node.Node {
	return node.Compose(node.NewType(name), data, nil, nil)
}

func branch(name string, children ...node.Node) node.Node {
	return node.Compose(node.NewType(name), "", children, nil)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := branch("Assign", leaf("Var", "z"), branch("Add", leaf("Var", "v"), leaf("IntLit", "1")))

	encoded, err := Encode(original, "go")
	require.NoError(t, err)

	decoded, lang, err := Decode(encoded, nil)
	require.NoError(t, err)
	assert.Equal(t, "go", lang)
	assert.True(t, node.DeepCompare(original, decoded))
}

func TestEncodeActionCarriesColor(t *testing.T) {
	ins := action.NewInsert(leaf("Stmt", "new"))
	encoded, err := Encode(ins, "")
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(encoded, &doc))
	assert.Equal(t, "Insert", doc.Root.Type)
	assert.Equal(t, "green", doc.Root.Color)
	require.Len(t, doc.Root.Children, 1)
}

func TestEncodeHoleCarriesNumberAndPrototype(t *testing.T) {
	h := action.NewHole(leaf("Var", ""), 7)
	encoded, err := Encode(h, "")
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(encoded, &doc))
	assert.Equal(t, "Hole", doc.Root.Type)
	require.NotNil(t, doc.Root.Number)
	assert.Equal(t, uint32(7), *doc.Root.Number)
	require.NotNil(t, doc.Root.Prototype)
	assert.Equal(t, "Var", doc.Root.Prototype.Type)
}

func TestDecodeUnknownTypeFallsThroughToGenericBuilder(t *testing.T) {
	raw := []byte(`{"root":{"type":"WeirdLangNode","data":"x"}}`)
	n, _, err := Decode(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "WeirdLangNode", n.Type().Name)
	assert.Equal(t, "x", n.Data())
}

func TestDecodeMalformedJSONYieldsError(t *testing.T) {
	_, _, err := Decode([]byte(`not json`), nil)
	assert.Error(t, err)
}

func TestDecodeMissingRootYieldsDummy(t *testing.T) {
	n, _, err := Decode([]byte(`{}`), nil)
	require.NoError(t, err)
	assert.True(t, node.IsDummy(n))
}
