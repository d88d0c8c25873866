// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

// Command lspk inspects LSPK archives and mod directories.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

var flagDebug = &cli.BoolFlag{
	Name:    "debug",
	Usage:   "enable debug logging",
	EnvVars: []string{"LSPK_DEBUG"},
}

func main() {
	app := &cli.App{
		Name:  "lspk",
		Usage: "inspect LSPK archives and mod directories",
		Flags: []cli.Flag{
			flagDebug,
		},
		Commands: []*cli.Command{
			listCommand(),
			catCommand(),
			extractCommand(),
			pluginsCommand(),
			conflictsCommand(),
			scanCommand(),
			rootLevelCommand(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.RunContext(ctx, os.Args)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the stderr logger for a command.
func newLogger(cctx *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if cctx.Bool(flagDebug.Name) {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// requireArgs returns the first n positional arguments or a usage error.
func requireArgs(cctx *cli.Context, names ...string) ([]string, error) {
	args := cctx.Args()
	if args.Len() < len(names) {
		return nil, fmt.Errorf("%s required", names[args.Len()])
	}

	return args.Slice()[:len(names)], nil
}
