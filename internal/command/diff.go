// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/snapdiff/snapdiff/internal/config"
	"github.com/snapdiff/snapdiff/internal/meta"
	"github.com/snapdiff/snapdiff/internal/output"
	"github.com/snapdiff/snapdiff/pretty"
)

// ErrDifferences signals that the two inputs were not equal. The caller
// maps it to exit code 1, following the diff(1) convention.
var ErrDifferences = errors.New("differences found")

// diffCommandAction is the action handler for the "diff" subcommand. It
// fetches both inputs concurrently and renders the annotated diff.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {

	config.Config.Namespace = "diff"

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return errors.New("diff requires exactly two inputs")
	}

	var oldV, newV pretty.Value
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := loadDocument(gctx, cmd, args[0])
		oldV = v
		return err
	})
	g.Go(func() error {
		v, err := loadDocument(gctx, cmd, args[1])
		newV = v
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	flags := dumpFlags(cmd)
	if cmd.Bool("full") {
		flags |= pretty.DumpEquals
	}

	text, err := pretty.Diff(oldV, newV, flags)
	if err != nil {
		return err
	}

	switch {
	case text == "":
		// Equal and no --full; nothing to show.
	case cmd.Bool("tui"):
		if err := output.Pager(text); err != nil {
			return err
		}
	default:
		output.Render(os.Stdout, text, cmd.String("color"))
	}

	stat := output.Count(text)
	if cmd.Bool("stat") {
		fmt.Fprint(os.Stdout, stat.Render())
	}

	if stat.Changed() {
		return ErrDifferences
	}
	return nil
}

func diffCommandBuilder(meta meta.Meta) *cli.Command {
	flags := NewGlobalFlags("diff", meta.Config.Source)
	flags = append(flags,
		&cli.BoolFlag{
			Name:        "full",
			Usage:       "dump the full document when the inputs are equal",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "stat",
			Usage:       "append a summary of added/removed/unchanged lines",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "tui",
			Usage:       "browse the diff in an interactive pager",
			HideDefault: true,
		},
	)

	return &cli.Command{
		Name:      "diff",
		Usage:     "show the annotated difference between two documents",
		UsageText: "snapdiff diff [options] <old> <new>",
		Flags:     flags,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: diffCommandAction,
	}
}
