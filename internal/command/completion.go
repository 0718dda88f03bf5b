// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/snapdiff/snapdiff/internal/meta"
)

const bashCompletionScript = `# bash completion for snapdiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_snapdiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "dump diff completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--flat -F --select -s --ignore -i --color -c --passphrase -p"

    case "$cmd" in
        dump)
            local opts="$common --output -o"
            ;;
        diff)
            local opts="$common --full --stat --tui"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--color" || "$prev" == "-c" ]]; then
        COMPREPLY=( $(compgen -W "auto always never" -- "$cur") )
        return 0
    fi

  # If current token starts with '-', offer flags
  if [[ "$cur" == -* ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
  fi

  # Otherwise complete input files
  COMPREPLY=( $(compgen -o default -- "$cur") )
  return 0
}

complete -F _snapdiff snapdiff
`

const zshCompletionScript = `#compdef snapdiff

_snapdiff() {
  local -a cmds
  cmds=(
    'dump:render the canonical form of a document'
    'diff:show the annotated difference between two documents'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-F --flat)'{-F,--flat}'[flatten nested mappings]'
  '(-c --color)'{-c,--color}'[colorize output]:mode:(auto always never)'
  '(-s --select)'{-s,--select}'[dot path to drill into]:path'
  '(-i --ignore)'{-i,--ignore}'[dot paths to remove]:paths'
  '(-p --passphrase)'{-p,--passphrase}'[passphrase for encrypted snapshots]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'snapdiff commands' cmds
    return
  fi

  case $words[2] in
    dump)
      _arguments -C \
        $common \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
        '1:input:_files'
      ;;
    diff)
      _arguments -C \
        $common \
        '--full[dump the full document when equal]' \
        '--stat[append a line summary]' \
        '--tui[browse the diff in a pager]' \
        '1:old:_files' \
        '2:new:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:input:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _snapdiff snapdiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: snapdiff completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "snapdiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
