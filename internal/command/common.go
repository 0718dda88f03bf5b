// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/snapdiff/snapdiff/internal/decode"
	"github.com/snapdiff/snapdiff/internal/driller"
	"github.com/snapdiff/snapdiff/internal/filters"
	"github.com/snapdiff/snapdiff/internal/source"
	"github.com/snapdiff/snapdiff/pretty"
)

// loadDocument fetches, decodes and shapes one input per the common flags:
// --select drills into a sub-value, --ignore prunes volatile paths.
func loadDocument(ctx context.Context, cmd *cli.Command, spec string) (pretty.Value, error) {
	path, format := decode.ParseSpec(spec)

	data, err := source.Fetch(ctx, path, cmd.String("passphrase"))
	if err != nil {
		return pretty.Value{}, err
	}

	if format == decode.FormatAuto {
		format = decode.Detect(path, data)
	}

	v, err := decode.Decode(data, format)
	if err != nil {
		return pretty.Value{}, fmt.Errorf("decode %s: %w", spec, err)
	}

	if sel := cmd.String("select"); sel != "" {
		drilled, ok := driller.Drill(v, sel)
		if !ok {
			return pretty.Value{}, fmt.Errorf("select path %q not found in %s", sel, spec)
		}
		v = drilled
	}

	if ignores := filters.BuildIgnores(cmd.String("ignore")); len(ignores) > 0 {
		v = filters.Prune(v, ignores)
	}

	return v, nil
}

// dumpFlags translates the common boolean flags into engine flags.
func dumpFlags(cmd *cli.Command) pretty.Flag {
	flags := pretty.None
	if cmd.Bool("flat") {
		flags |= pretty.FlatDict
	}
	return flags
}
