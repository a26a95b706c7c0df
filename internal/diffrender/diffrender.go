// Package diffrender renders a before/after node.Node pair as a unified
// text diff, adapted from termfx-morfx's internal/util.UnifiedDiff: the
// same go-difflib-based unified diff with optional ANSI coloring of +/-
// lines, fed textfmt.String() output instead of raw file text.
package diffrender

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/oxhq/asttree/node"
	"github.com/oxhq/asttree/textfmt"
)

// Unified renders before/after as a unified diff of their tree text
// notation, with context lines of surrounding unchanged text. colorize
// wraps +/- lines in ANSI color via fatih/color.
func Unified(before, after node.Node, name string, context int, colorize bool) (string, error) {
	return UnifiedText(textfmt.String(before), textfmt.String(after), name, context, colorize)
}

// UnifiedText renders a unified diff between two raw strings, the same
// primitive Unified builds on — exposed directly for callers diffing
// plain source text rather than tree text notation.
func UnifiedText(before, after, name string, context int, colorize bool) (string, error) {
	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: name,
		ToFile:   name + " (transformed)",
		Context:  context,
	}
	text, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return "", err
	}
	if !colorize {
		return text, nil
	}
	return colorizeDiff(text), nil
}

func colorizeDiff(text string) string {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)
	green.EnableColor()
	red.EnableColor()
	cyan.EnableColor()

	lines := strings.Split(text, "\n")
	var b strings.Builder
	for i, l := range lines {
		if i == len(lines)-1 && l == "" {
			continue
		}
		switch {
		case strings.HasPrefix(l, "+++") || strings.HasPrefix(l, "---"):
			b.WriteString(cyan.Sprint(l))
		case strings.HasPrefix(l, "@@"):
			b.WriteString(cyan.Sprint(l))
		case strings.HasPrefix(l, "+"):
			b.WriteString(green.Sprint(l))
		case strings.HasPrefix(l, "-"):
			b.WriteString(red.Sprint(l))
		default:
			b.WriteString(l)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
