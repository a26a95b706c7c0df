package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/oxhq/asttree/difftree"
	"github.com/oxhq/asttree/internal/config"
	"github.com/oxhq/asttree/internal/diffrender"
	"github.com/oxhq/asttree/jsontree/dot"
	"github.com/oxhq/asttree/jsontree/frontend"
	"github.com/oxhq/asttree/mapper"
)

// diffResult is the --json envelope: a run ID for traceability across
// repeated invocations, plus the rendered unified diff.
type diffResult struct {
	RunID string `json:"run_id"`
	Diff  string `json:"diff"`
}

func runDiff(args []string, cfg *config.Config) error {
	fs := newFlagSet("diff")
	lang := fs.StringP("lang", "l", cfg.Language, "source language")
	jsonOut := fs.Bool("json", false, "emit a JSON envelope instead of plain text")
	dotOut := fs.String("dot", "", "write a DOT rendering of the diff tree to this path")
	color := fs.Bool("color", true, "colorize the unified diff")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		fs.Usage()
		return fmt.Errorf("diff requires exactly two file arguments")
	}

	log := newLogger(cfg)
	ctx := context.Background()

	beforeSrc, err := os.ReadFile(rest[0])
	if err != nil {
		return err
	}
	afterSrc, err := os.ReadFile(rest[1])
	if err != nil {
		return err
	}

	beforeTree, err := frontend.Parse(ctx, beforeSrc, *lang, nil)
	if err != nil {
		return err
	}
	afterTree, err := frontend.Parse(ctx, afterSrc, *lang, nil)
	if err != nil {
		return err
	}

	log.Debugf("mapping %s -> %s", rest[0], rest[1])
	m := mapper.TopDown(beforeTree, afterTree)
	diffTree := difftree.Build(beforeTree, m)

	if *dotOut != "" {
		if err := os.WriteFile(*dotOut, []byte(dot.Render(diffTree, "diff")), 0o644); err != nil {
			return err
		}
		log.Infof("wrote DOT rendering to %s", *dotOut)
	}

	text, err := diffrender.Unified(difftree.GetBefore(diffTree), difftree.GetAfter(diffTree), rest[0], cfg.DiffContext, *color)
	if err != nil {
		return err
	}

	if *jsonOut {
		out, err := json.Marshal(diffResult{RunID: uuid.NewString(), Diff: text})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(text)
	return nil
}
