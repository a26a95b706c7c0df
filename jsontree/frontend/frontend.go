// Package frontend is a concrete input producer: it parses real source text
// with go-tree-sitter and builds a plain node.Node tree from the resulting
// parse tree, the same shape every other package in asttree operates on.
//
// It is the only package in the module allowed to import tree-sitter; the
// core (node, hash, mapper, difftree, pattern, transform) never sees a
// *sitter.Node.
package frontend

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	langGo "github.com/smacker/go-tree-sitter/golang"

	"github.com/oxhq/asttree/node"
)

// Range is the Fragment payload attached to every produced node: the byte
// offsets of the source span it was parsed from, for callers that want to
// point back at source text.
type Range struct {
	StartByte uint32
	EndByte   uint32
}

// ResolveLanguage converts a short language name into a *sitter.Language.
// Add a case as support for more grammars is vendored in.
func ResolveLanguage(name string) (*sitter.Language, bool) {
	switch name {
	case "go", "golang":
		return langGo.GetLanguage(), true
	default:
		return nil, false
	}
}

// Parse parses source with the named language and converts the resulting
// tree-sitter parse tree into a node.Node tree via factory (a nil factory
// defaults to node.EmptyFactory{}, producing a generic draft tree whose
// type names are the grammar's own node-kind strings).
//
// Every tree-sitter node becomes a node — named and anonymous alike — so
// the produced tree is a faithful, lossless mirror of the parse tree rather
// than an abstract syntax tree; callers that want to discard punctuation
// nodes should do so with a transform.Transformer pass over the result.
func Parse(ctx context.Context, source []byte, language string, factory node.Factory) (node.Node, error) {
	lang, ok := ResolveLanguage(language)
	if !ok {
		return nil, fmt.Errorf("frontend: unsupported language %q", language)
	}
	if factory == nil {
		factory = node.EmptyFactory{}
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("frontend: parse: %w", err)
	}
	defer tree.Close()

	return convert(tree.RootNode(), source, factory), nil
}

func convert(sn *sitter.Node, source []byte, factory node.Factory) node.Node {
	count := int(sn.ChildCount())
	children := make([]node.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, convert(sn.Child(i), source, factory))
	}

	b, ok := factory.NewBuilder(sn.Type())
	if !ok {
		return node.Dummy
	}

	data := ""
	if count == 0 {
		data = sn.Content(source)
	}
	if !b.SetData(data) {
		return node.Dummy
	}
	if !b.SetChildren(children) {
		return node.Dummy
	}
	b.SetFragment(Range{StartByte: sn.StartByte(), EndByte: sn.EndByte()})
	return b.CreateNode()
}
