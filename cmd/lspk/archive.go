// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package main

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/urfave/cli/v2"
	"github.com/woozymasta/lspk"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List archive entries",
		ArgsUsage: "<pak>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "only list entries under this path",
			},
		},
		Action: runList,
	}
}

func runList(cctx *cli.Context) error {
	args, err := requireArgs(cctx, "archive path")
	if err != nil {
		return err
	}

	r, err := lspk.OpenWithOptions(args[0], lspk.ReaderOptions{
		Logger:          newLogger(cctx),
		EntryPathPrefix: cctx.String("prefix"),
	})
	if err != nil {
		return err
	}

	h := r.Header()
	fmt.Printf("Archive: %s\n", args[0])
	fmt.Printf("  Version:  %d\n", h.Version)
	fmt.Printf("  Parts:    %d\n", h.NumParts)
	fmt.Printf("  Priority: %d\n", h.Priority)
	fmt.Printf("  Entries:  %d\n", r.Len())
	fmt.Println()

	for _, e := range r.Entries() {
		fmt.Printf("%-5s %10d %10d  part %d  %s\n", e.Codec(), e.CompressedSize, e.Size(), e.Part, e.Path)
	}

	return nil
}

func catCommand() *cli.Command {
	return &cli.Command{
		Name:      "cat",
		Usage:     "Write one entry to stdout",
		ArgsUsage: "<pak> <entry>",
		Action:    runCat,
	}
}

func runCat(cctx *cli.Context) error {
	args, err := requireArgs(cctx, "archive path", "entry path")
	if err != nil {
		return err
	}

	r, err := lspk.OpenWithOptions(args[0], lspk.ReaderOptions{Logger: newLogger(cctx)})
	if err != nil {
		return err
	}

	data, err := r.ReadEntry(args[1])
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract archive entries to a directory",
		ArgsUsage: "<pak> <dir>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "parallel extraction workers (0 = GOMAXPROCS)",
				EnvVars: []string{"LSPK_WORKERS"},
			},
			&cli.BoolFlag{
				Name:  "create-only",
				Usage: "fail instead of overwriting existing files",
			},
			&cli.StringSliceFlag{
				Name:  "entry",
				Usage: "extract only this entry (repeatable)",
			},
		},
		Action: runExtract,
	}
}

func runExtract(cctx *cli.Context) error {
	args, err := requireArgs(cctx, "archive path", "output directory")
	if err != nil {
		return err
	}

	logger := newLogger(cctx)
	r, err := lspk.OpenWithOptions(args[0], lspk.ReaderOptions{Logger: logger})
	if err != nil {
		return err
	}

	opts := lspk.ExtractOptions{MaxWorkers: cctx.Int("workers")}
	if names := cctx.StringSlice("entry"); len(names) > 0 {
		entries := r.Entries()
		for _, name := range names {
			i, ok := r.FindEntry(name)
			if !ok {
				return fmt.Errorf("%w: %s", lspk.ErrEntryNotFound, name)
			}

			opts.Entries = append(opts.Entries, entries[i])
		}
	}
	if cctx.Bool("create-only") {
		opts.FileMode = lspk.ExtractFileModeCreateOnly
	}

	var files, bytes atomic.Int64
	opts.OnEntryDone = func(entry lspk.EntryInfo, written int64, outputPath string) {
		files.Add(1)
		bytes.Add(written)
		logger.Debug("extracted", "entry", entry.Path, "output", outputPath, "bytes", written)
	}

	if err := r.Extract(cctx.Context, args[1], opts); err != nil {
		return err
	}

	fmt.Printf("Extracted %d files (%d bytes) to %s\n", files.Load(), bytes.Load(), args[1])
	return nil
}
