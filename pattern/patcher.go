package pattern

import (
	"github.com/oxhq/asttree/action"
	"github.com/oxhq/asttree/difftree"
	"github.com/oxhq/asttree/node"
)

// Patch matches pattern against every site of subject and applies every
// site's actions to a fresh difftree.Builder over subject, returning the
// builder's after projection — "converts matches into a new Tree by
// feeding the collected actions into a DiffTreeBuilder" (§4.6).
func Patch(pattern *difftree.DiffNode, subject node.Node) node.Node {
	matches := NewMatcher(pattern).Match(subject)
	b := difftree.NewBuilder(subject)
	for _, m := range matches {
		switch m.Kind {
		case action.KindInsert:
			b.InsertNode(m.Parent, m.Anchor, m.After)
		case action.KindReplace:
			b.ReplaceNode(m.Before, m.After)
		case action.KindDelete:
			b.DeleteNode(m.Before)
		}
	}
	return difftree.GetAfter(b.Root())
}
