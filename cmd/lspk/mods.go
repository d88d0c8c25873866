// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/woozymasta/lspk/catalog"
	"github.com/woozymasta/lspk/modcache"
	"github.com/woozymasta/lspk/modinfo"
)

func pluginsCommand() *cli.Command {
	return &cli.Command{
		Name:      "plugins",
		Usage:     "Show plugin descriptors of an archive",
		ArgsUsage: "<pak>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "xml",
				Usage: "print mod list and load order fragments",
			},
		},
		Action: runPlugins,
	}
}

func runPlugins(cctx *cli.Context) error {
	args, err := requireArgs(cctx, "archive path")
	if err != nil {
		return err
	}

	c, err := modcache.Build(args[0], modcache.Options{Logger: newLogger(cctx)})
	if err != nil {
		return err
	}

	plugins := c.Plugins()
	if len(plugins) == 0 {
		fmt.Printf("%s: no plugins\n", args[0])
		return nil
	}

	for _, d := range plugins {
		printDescriptor(d)

		if cctx.Bool("xml") {
			plugin, err := d.PluginXML()
			if err != nil {
				return err
			}
			order, err := d.OrderXML()
			if err != nil {
				return err
			}

			fmt.Print(plugin)
			fmt.Print(order)
		}

		fmt.Println()
	}

	return nil
}

func printDescriptor(d *modinfo.Descriptor) {
	version := d.Version
	if v, err := modinfo.ParseVersion64(d.Version); err == nil {
		version = v.String()
	}

	fmt.Printf("Plugin: %s\n", d.Name)
	fmt.Printf("  UUID:    %s\n", d.UUID)
	fmt.Printf("  Folder:  %s\n", d.Folder)
	fmt.Printf("  Version: %s\n", version)
	for _, dep := range d.Dependencies {
		fmt.Printf("  Depends: %s (%s)\n", dep.Name, dep.UUID)
	}
}

func conflictsCommand() *cli.Command {
	return &cli.Command{
		Name:      "conflicts",
		Usage:     "Compare two archives for overlapping files",
		ArgsUsage: "<pakA> <pakB>",
		Action:    runConflicts,
	}
}

func runConflicts(cctx *cli.Context) error {
	args, err := requireArgs(cctx, "first archive", "second archive")
	if err != nil {
		return err
	}

	opts := modcache.Options{Logger: newLogger(cctx)}
	a, err := modcache.Build(args[0], opts)
	if err != nil {
		return err
	}
	b, err := modcache.Build(args[1], opts)
	if err != nil {
		return err
	}

	files := a.ConflictingFiles(b)
	fmt.Printf("Shared files: %d\n", len(files))
	for _, f := range files {
		fmt.Printf("  %s\n", f)
	}

	for _, pa := range a.Plugins() {
		for _, pb := range b.Plugins() {
			if a.PluginConflict(pa.UUID, b, pb.UUID) {
				fmt.Printf("Plugin conflict: %s <-> %s\n", pa.Name, pb.Name)
			}
		}
	}

	return nil
}

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Analyze every archive of a mods directory",
		ArgsUsage: "<mods-dir>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "index",
				Usage:   "index file (default <mods-dir>/index.json)",
				EnvVars: []string{"LSPK_INDEX"},
			},
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "parallel analyses (0 = GOMAXPROCS)",
				EnvVars: []string{"LSPK_WORKERS"},
			},
			&cli.BoolFlag{
				Name:  "no-save",
				Usage: "do not write the index",
			},
		},
		Action: runScan,
	}
}

func runScan(cctx *cli.Context) error {
	args, err := requireArgs(cctx, "mods directory")
	if err != nil {
		return err
	}

	cat, err := catalog.Open(args[0], catalog.Options{
		Logger:    newLogger(cctx),
		IndexPath: cctx.String("index"),
		Workers:   cctx.Int("workers"),
	})
	if err != nil {
		return err
	}

	if err := cat.Refresh(cctx.Context); err != nil {
		return err
	}

	fmt.Printf("Archives: %d\n", len(cat.Archives()))
	for _, name := range cat.Archives() {
		c, ok := cat.Get(name)
		if !ok {
			continue
		}

		fmt.Printf("  %s (%d files, %d plugins)\n", name, len(c.Files()), len(c.Plugins()))
	}

	for _, p := range cat.Problems() {
		fmt.Printf("Problem: %v\n", p)
	}

	for _, c := range cat.FileConflicts() {
		fmt.Printf("Conflict: %s <-> %s (%d files)\n", c.A, c.B, len(c.Files))
	}

	for _, m := range cat.MissingDependencies() {
		fmt.Printf("Missing: %s requires %s (%s)\n", m.PluginName, m.Dependency.Name, m.Dependency.UUID)
	}

	if cctx.Bool("no-save") {
		return nil
	}

	return cat.Save()
}
