// SPDX-License-Identifier: MIT

// Package main is the entry point for the fwpath CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/allpairs/cmd/fwpath/commands"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run executes the command tree; an interrupt cancels a running computation.
func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := commands.New()
	cli.SetArgs(args)

	return cli.Execute(ctx)
}
