// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/woozymasta/lspk"
	"github.com/woozymasta/lspk/rootdetect"
)

func rootLevelCommand() *cli.Command {
	return &cli.Command{
		Name:      "rootlevel",
		Usage:     "Detect the mod root level of a directory or archive",
		ArgsUsage: "<dir|pak>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "spec",
				Usage:    "root match spec file (.json, .yaml)",
				Required: true,
				EnvVars:  []string{"LSPK_ROOT_SPEC"},
			},
		},
		Action: runRootLevel,
	}
}

func runRootLevel(cctx *cli.Context) error {
	args, err := requireArgs(cctx, "directory or archive")
	if err != nil {
		return err
	}

	spec, err := rootdetect.LoadSpec(cctx.String("spec"))
	if err != nil {
		return err
	}

	tree, err := loadTree(args[0])
	if err != nil {
		return err
	}

	level, ok, err := rootdetect.Detect(tree, spec)
	if err != nil {
		return err
	}

	if !ok {
		fmt.Println("unknown")
		return nil
	}

	fmt.Println(level)
	return nil
}

// loadTree reads a directory tree or the entry paths of an archive.
func loadTree(path string) (*rootdetect.Tree, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return rootdetect.FromFS(os.DirFS(path), ".")
	}

	entries, err := lspk.ListEntries(path)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}

	return rootdetect.FromPaths(paths), nil
}
