package action

import "github.com/oxhq/asttree/node"

// Hole is a pattern placeholder matching any subject node whose type equals
// Prototype's type. Holes sharing the same Number unify: all occurrences of
// a numbered hole in one pattern must bind to structurally equal subject
// data (§4.6, invariant I5/P8).
type Hole struct {
	PrototypeType node.Type
	Number        uint32
}

// NewHole derives a Hole's type from prototype's type with "color"
// overridden to the pattern role, per invariant I5.
func NewHole(prototype node.Node, number uint32) *Hole {
	return &Hole{PrototypeType: prototype.Type(), Number: number}
}

func (h *Hole) Type() node.Type {
	return h.PrototypeType.WithProperty("color", "purple")
}

func (h *Hole) Data() string              { return "" }
func (h *Hole) ChildCount() int           { return 0 }
func (h *Hole) Child(int) node.Node       { return node.Null }
func (h *Hole) Properties() map[string]string {
	return h.Type().Properties
}
func (h *Hole) Fragment() any { return nil }

// HoleInterface is implemented by Hole, letting matchers identify a pattern
// leaf without importing the concrete action.Hole type directly (mirrors
// the Action interface's role for the other three variants).
type HoleInterface interface {
	node.Node
	HoleNumber() uint32
	HolePrototypeType() node.Type
}

func (h *Hole) HoleNumber() uint32            { return h.Number }
func (h *Hole) HolePrototypeType() node.Type { return h.PrototypeType }

// AsHole type-asserts n against HoleInterface.
func AsHole(n node.Node) (HoleInterface, bool) {
	h, ok := n.(HoleInterface)
	return h, ok
}
