package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/oxhq/asttree/internal/config"
	"github.com/oxhq/asttree/internal/diffrender"
	"github.com/oxhq/asttree/jsontree/frontend"
	"github.com/oxhq/asttree/node"
	"github.com/oxhq/asttree/pattern"
	"github.com/oxhq/asttree/textfmt"
)

// runPattern builds a Pattern from two tree-text-notation files (the
// before-shape and the replacement for one of its children) and applies it
// to every matching site in a real source file.
//
// Any before-shape leaf whose data is "$N" (N a decimal number) becomes a
// numbered Hole rather than a literal match, so the same placeholder can
// recur and constrain multiple occurrences to equal subject data.
func runPattern(args []string, cfg *config.Config) error {
	fs := newFlagSet("pattern")
	lang := fs.StringP("lang", "l", cfg.Language, "source language")
	childIndex := fs.IntP("replace-child", "c", 0, "index of the before-shape child to replace")
	color := fs.Bool("color", true, "colorize the unified diff")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 3 {
		fs.Usage()
		return fmt.Errorf("pattern requires <target-file> <before-shape-file> <after-shape-file>")
	}
	targetPath, beforePath, afterPath := rest[0], rest[1], rest[2]

	log := newLogger(cfg)

	beforeText, err := os.ReadFile(beforePath)
	if err != nil {
		return err
	}
	afterText, err := os.ReadFile(afterPath)
	if err != nil {
		return err
	}
	targetSrc, err := os.ReadFile(targetPath)
	if err != nil {
		return err
	}

	beforeShape, err := textfmt.Parse(strings.TrimSpace(string(beforeText)), nil)
	if err != nil {
		return fmt.Errorf("before-shape: %w", err)
	}
	afterShape, err := textfmt.Parse(strings.TrimSpace(string(afterText)), nil)
	if err != nil {
		return fmt.Errorf("after-shape: %w", err)
	}

	pb := pattern.NewBuilder(beforeShape)
	holeCount := 0
	applyHoles(beforeShape, pb, &holeCount)
	log.Debugf("bound %d hole(s) in before-shape", holeCount)

	if *childIndex < 0 || *childIndex >= beforeShape.ChildCount() {
		return fmt.Errorf("replace-child index %d out of range (before-shape has %d children)", *childIndex, beforeShape.ChildCount())
	}
	if !pb.ReplaceNode(beforeShape.Child(*childIndex), afterShape) {
		return fmt.Errorf("could not target child %d for replacement", *childIndex)
	}

	target, err := frontend.Parse(context.Background(), targetSrc, *lang, nil)
	if err != nil {
		return err
	}

	matches := pattern.NewMatcher(pb.Pattern()).Match(target)
	log.Infof("%d match site(s) found in %s", len(matches), targetPath)

	result := pattern.Patch(pb.Pattern(), target)

	text, err := diffrender.Unified(target, result, targetPath, cfg.DiffContext, *color)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

// applyHoles walks n's descendants (never n itself — the pattern root
// can't be converted to a Hole, only its children) and converts every leaf
// whose data is "$N" into a numbered Hole via pb.MakeHole.
func applyHoles(n node.Node, pb *pattern.Builder, count *int) {
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if num, ok := holeNumber(c); ok {
			if pb.MakeHole(c, num) {
				*count++
			}
			continue
		}
		applyHoles(c, pb, count)
	}
}

func holeNumber(n node.Node) (uint32, bool) {
	if n.ChildCount() != 0 {
		return 0, false
	}
	data := n.Data()
	if !strings.HasPrefix(data, "$") {
		return 0, false
	}
	v, err := strconv.ParseUint(data[1:], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
