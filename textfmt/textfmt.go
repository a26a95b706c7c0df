// Package textfmt implements the tree text notation of spec.md §6:
//
//	Node     := Name ("<" QuotedData ">")? ("(" ChildList ")")?
//	ChildList := (Node ("," ws* Node)*)?
//
// used by the Transformer/Matcher's worked examples and as a human-writable
// "draft tree" input format with no domain Factory required.
package textfmt

import (
	"fmt"
	"strings"

	"github.com/oxhq/asttree/node"
)

// String renders n in tree text notation. Quoting is the literal
// double-quote form the grammar describes — no escaping, so Data
// containing a `"` round-trips only through String/Parse pairs that both
// tolerate it, per the grammar's own "no escaping" rule.
func String(n node.Node) string {
	var b strings.Builder
	write(&b, n)
	return b.String()
}

func write(b *strings.Builder, n node.Node) {
	b.WriteString(n.Type().Name)
	if n.Data() != "" {
		b.WriteString(`<"`)
		b.WriteString(n.Data())
		b.WriteString(`">`)
	}
	if n.ChildCount() > 0 {
		b.WriteByte('(')
		for i := 0; i < n.ChildCount(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, n.Child(i))
		}
		b.WriteByte(')')
	}
}

// Parse reads tree text notation into a Node tree via factory (node.Factory
// maps each Name to a Builder); a nil factory defaults to
// node.EmptyFactory{}, the "generic draft tree" path the grammar's own
// doc comment calls out. Malformed input yields the node.Dummy sentinel
// together with a non-nil error.
func Parse(s string, factory node.Factory) (node.Node, error) {
	if factory == nil {
		factory = node.EmptyFactory{}
	}
	p := &parser{input: s, factory: factory}
	p.skipWS()
	n, err := p.parseNode()
	if err != nil {
		return node.Dummy, err
	}
	p.skipWS()
	if p.pos != len(p.input) {
		return node.Dummy, fmt.Errorf("textfmt: unexpected trailing input at offset %d", p.pos)
	}
	return n, nil
}

type parser struct {
	input   string
	pos     int
	factory node.Factory
}

func (p *parser) skipWS() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\n') {
		p.pos++
	}
}

func isNameByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (p *parser) parseNode() (node.Node, error) {
	start := p.pos
	for p.pos < len(p.input) && isNameByte(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return nil, fmt.Errorf("textfmt: expected a type name at offset %d", start)
	}
	name := p.input[start:p.pos]

	var data string
	if p.pos < len(p.input) && p.input[p.pos] == '<' {
		p.pos++
		if p.pos >= len(p.input) || p.input[p.pos] != '"' {
			return nil, fmt.Errorf("textfmt: expected opening quote at offset %d", p.pos)
		}
		p.pos++
		dataStart := p.pos
		for p.pos < len(p.input) && p.input[p.pos] != '"' {
			p.pos++
		}
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("textfmt: unterminated quoted data starting at offset %d", dataStart)
		}
		data = p.input[dataStart:p.pos]
		p.pos++ // closing quote
		if p.pos >= len(p.input) || p.input[p.pos] != '>' {
			return nil, fmt.Errorf("textfmt: expected '>' at offset %d", p.pos)
		}
		p.pos++
	}

	var children []node.Node
	if p.pos < len(p.input) && p.input[p.pos] == '(' {
		p.pos++
		p.skipWS()
		if p.pos < len(p.input) && p.input[p.pos] != ')' {
			for {
				child, err := p.parseNode()
				if err != nil {
					return nil, err
				}
				children = append(children, child)
				p.skipWS()
				if p.pos < len(p.input) && p.input[p.pos] == ',' {
					p.pos++
					p.skipWS()
					continue
				}
				break
			}
		}
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return nil, fmt.Errorf("textfmt: expected ')' at offset %d", p.pos)
		}
		p.pos++
	}

	b, ok := p.factory.NewBuilder(name)
	if !ok {
		return node.Dummy, nil
	}
	if !b.SetData(data) {
		return node.Dummy, nil
	}
	if !b.SetChildren(children) {
		return node.Dummy, nil
	}
	return b.CreateNode(), nil
}
