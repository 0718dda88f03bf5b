// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/snapdiff/snapdiff/internal/config"
	"github.com/snapdiff/snapdiff/internal/meta"
	"github.com/snapdiff/snapdiff/internal/output"
	"github.com/snapdiff/snapdiff/pretty"
)

// dumpCommandAction is the action handler for the "dump" subcommand. It
// renders the canonical form of a single document.
func dumpCommandAction(ctx context.Context, cmd *cli.Command) error {

	config.Config.Namespace = "dump"

	args := cmd.Args().Slice()
	if len(args) != 1 {
		return errors.New("dump requires exactly one input")
	}

	v, err := loadDocument(ctx, cmd, args[0])
	if err != nil {
		return err
	}

	switch cmd.String("output") {
	case "yaml":
		if cmd.Bool("flat") && v.Kind() == pretty.KindMapping {
			if v, err = pretty.Flatten(v); err != nil {
				return err
			}
		}
		out, err := output.ToYAML(v)
		if err != nil {
			return err
		}
		_, _ = os.Stdout.Write(out)
	default:
		// The canonical dump is already JSON, so text and json share a path.
		text, err := pretty.Dump(v, dumpFlags(cmd))
		if err != nil {
			return err
		}
		output.Render(os.Stdout, text, cmd.String("color"))
	}

	return nil
}

func dumpCommandBuilder(meta meta.Meta) *cli.Command {
	flags := NewGlobalFlags("dump", meta.Config.Source)
	flags = append(flags, NewOutputFlag("dump", meta.Config.Source))

	return &cli.Command{
		Name:      "dump",
		Usage:     "render the canonical form of a document",
		UsageText: "snapdiff dump [options] <input>",
		Flags:     flags,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: dumpCommandAction,
	}
}
