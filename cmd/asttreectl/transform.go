package main

import (
	"context"
	"fmt"
	"os"

	"github.com/oxhq/asttree/internal/config"
	"github.com/oxhq/asttree/internal/diffrender"
	"github.com/oxhq/asttree/jsontree/frontend"
	"github.com/oxhq/asttree/node"
	"github.com/oxhq/asttree/transform"
)

// runTransform parses a real source file and runs the built-in
// stripComments Converter over it, printing a unified diff of the
// resulting tree against the original.
func runTransform(args []string, cfg *config.Config) error {
	fs := newFlagSet("transform")
	lang := fs.StringP("lang", "l", cfg.Language, "source language")
	color := fs.Bool("color", true, "colorize the unified diff")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		fs.Usage()
		return fmt.Errorf("transform requires exactly one file argument")
	}

	log := newLogger(cfg)

	src, err := os.ReadFile(rest[0])
	if err != nil {
		return err
	}

	tree, err := frontend.Parse(context.Background(), src, *lang, nil)
	if err != nil {
		return err
	}

	tr := transform.New([]transform.Converter{stripComments{}}, node.EmptyFactory{})
	result := tr.Transform(tree)

	if result == tree {
		log.Infof("no changes")
	}

	text, err := diffrender.Unified(tree, result, rest[0], cfg.DiffContext, *color)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
