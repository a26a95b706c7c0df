// Package node defines the uniform, polymorphic tree node model shared by
// every algorithm in asttree: the mapper, the diff tree, the pattern
// matcher and the transformer all operate purely in terms of Node and
// Type, never a concrete domain type.
package node

// ChildDescriptor names one expected child slot of a Type, used by Builders
// to validate SetChildren and by code generators that build factories for a
// concrete language.
type ChildDescriptor struct {
	TypeName string
	Optional bool
}

// Type is a small, value-type descriptor shared by every Node of a kind.
// Types are never mutated after construction; overlays that need to tweak a
// single property (e.g. a Hole overriding "color") construct a derived Type
// rather than mutating the original.
type Type struct {
	Name             string
	ChildDescriptors []ChildDescriptor
	Hierarchy        []string
	Properties       map[string]string
}

// NewType builds a Type with the given name and no ancestry, a convenience
// for domains (and the textfmt/jsontree draft builders) that don't need
// child descriptors or hierarchy information.
func NewType(name string) Type {
	return Type{Name: name}
}

// InHierarchy reports whether ancestorName appears in t's hierarchy, i.e.
// whether a node of type t is considered a member of that group. A type is
// always trivially "in" its own name.
func (t Type) InHierarchy(ancestorName string) bool {
	if t.Name == ancestorName {
		return true
	}
	for _, h := range t.Hierarchy {
		if h == ancestorName {
			return true
		}
	}
	return false
}

// Property looks up a property key in the type-level properties only;
// node-local overrides are visible through Node.Properties, not here.
func (t Type) Property(key string) (string, bool) {
	v, ok := t.Properties[key]
	return v, ok
}

// WithProperty returns a copy of t with key set to value, leaving t
// unmodified. Used to derive a Hole's Type from its prototype's Type with
// "color" overridden, per the node-model invariant I5.
func (t Type) WithProperty(key, value string) Type {
	props := make(map[string]string, len(t.Properties)+1)
	for k, v := range t.Properties {
		props[k] = v
	}
	props[key] = value
	return Type{
		Name:             t.Name,
		ChildDescriptors: t.ChildDescriptors,
		Hierarchy:        t.Hierarchy,
		Properties:       props,
	}
}

// Builder returns a fresh Builder bound to t.
func (t Type) Builder() *Builder {
	return &Builder{typ: t}
}
