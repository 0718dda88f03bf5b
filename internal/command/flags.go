// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewGlobalFlags builds the flag set shared by dump and diff. ns is the
// command name used to prefer namespaced keys (e.g. "diff.color") in the
// config file at cfgFile; cfgFile may be empty when no config was found.
func NewGlobalFlags(ns string, cfgFile string) (flags []cli.Flag) {
	colorFlag := &cli.StringFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "colorize output: auto, always or never",
		Value:   "auto",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("SNAPDIFF_COLOR"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, ColorValidator)
		},
	}

	ignoreFlag := &cli.StringFlag{
		Name:    "ignore",
		Aliases: []string{"i"},
		Usage:   "comma-separated dot paths to remove before dumping or diffing",
		Sources: cli.NewValueSourceChain(),
	}

	if cfgFile != "" {
		colorFlag = NameSpacedValueChainFlagFromConfigFile(ns, cfgFile, colorFlag)
		ignoreFlag = NameSpacedValueChainFlagFromConfigFile(ns, cfgFile, ignoreFlag)
	}

	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:        "flat",
			Aliases:     []string{"F"},
			Usage:       "flatten nested mappings into dot-joined keys",
			HideDefault: true,
		},
		colorFlag,
		&cli.StringFlag{
			Name:    "select",
			Aliases: []string{"s"},
			Usage:   "dot path to drill into before dumping or diffing",
		},
		ignoreFlag,
		&cli.StringFlag{
			Name:    "passphrase",
			Aliases: []string{"p"},
			Usage:   "passphrase for encrypted snapshots",
		},
	}

	return
}

// NewOutputFlag constructs the --output flag for the dump command,
// namespaced to the config file when one exists.
func NewOutputFlag(ns string, cfgFile string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "text",
		Sources: cli.NewValueSourceChain(),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	if cfgFile != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(ns, cfgFile, flag)
	}

	return flag
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
