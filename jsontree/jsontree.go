// Package jsontree implements the JSON tree representation of spec.md §6:
// a nodeObj tree with an optional language tag, used to interchange trees
// with external tools. The frontend and dot sub-packages work on node.Node
// trees directly and do not go through this format.
package jsontree

import (
	"encoding/json"
	"fmt"

	"github.com/oxhq/asttree/action"
	"github.com/oxhq/asttree/node"
)

// nodeObj mirrors the wire grammar exactly: Number/Prototype only appear
// for type == "Hole"; Color only appears on action nodes.
type nodeObj struct {
	Type      string     `json:"type"`
	Data      string     `json:"data,omitempty"`
	Number    *uint32    `json:"number,omitempty"`
	Prototype *nodeObj   `json:"prototype,omitempty"`
	Children  []*nodeObj `json:"children,omitempty"`
	Color     string     `json:"color,omitempty"`
}

// Document is the top-level JSON envelope: { "root": ..., "language": ... }.
type Document struct {
	Root     *nodeObj `json:"root"`
	Language string   `json:"language,omitempty"`
}

// Encode marshals n (with an optional language tag) to the JSON tree
// representation.
func Encode(n node.Node, language string) ([]byte, error) {
	doc := Document{Root: encodeNode(n), Language: language}
	return json.Marshal(doc)
}

func encodeNode(n node.Node) *nodeObj {
	if h, ok := action.AsHole(n); ok {
		num := h.HoleNumber()
		return &nodeObj{
			Type:      "Hole",
			Number:    &num,
			Prototype: &nodeObj{Type: h.HolePrototypeType().Name},
		}
	}

	obj := &nodeObj{Type: n.Type().Name, Data: n.Data()}
	if a, ok := action.AsAction(n); ok {
		if color, ok := a.Properties()["color"]; ok {
			obj.Color = color
		}
	}
	for i := 0; i < n.ChildCount(); i++ {
		obj.Children = append(obj.Children, encodeNode(n.Child(i)))
	}
	return obj
}

// Decode unmarshals the JSON tree representation using factory to build
// concrete nodes (a nil factory defaults to node.EmptyFactory{}). An
// unknown type name falls through to factory's generic handling; a
// structurally malformed document yields the node.Dummy sentinel rather
// than an error, per §7's parse-failure policy.
func Decode(data []byte, factory node.Factory) (node.Node, string, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return node.Dummy, "", fmt.Errorf("jsontree: %w", err)
	}
	if doc.Root == nil {
		return node.Dummy, doc.Language, nil
	}
	if factory == nil {
		factory = node.EmptyFactory{}
	}
	return decodeNode(doc.Root, factory), doc.Language, nil
}

func decodeNode(obj *nodeObj, factory node.Factory) node.Node {
	if obj.Type == "Hole" {
		protoName := ""
		if obj.Prototype != nil {
			protoName = obj.Prototype.Type
		}
		number := uint32(0)
		if obj.Number != nil {
			number = *obj.Number
		}
		proto := node.Compose(node.NewType(protoName), "", nil, nil)
		return action.NewHole(proto, number)
	}

	b, ok := factory.NewBuilder(obj.Type)
	if !ok {
		return node.Dummy
	}
	if !b.SetData(obj.Data) {
		return node.Dummy
	}
	children := make([]node.Node, len(obj.Children))
	for i, c := range obj.Children {
		children[i] = decodeNode(c, factory)
	}
	if !b.SetChildren(children) {
		return node.Dummy
	}
	return b.CreateNode()
}
