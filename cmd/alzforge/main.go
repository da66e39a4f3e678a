// Package main is the entry point for the alzforge CLI.
//
// alzforge collects an Alzheimer's clinical intake over seven sections and
// prints the resulting feature record.
//
// For detailed usage information, run:
//
//	alzforge --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mrsinham/alzforge/cmd/alzforge/commands"
)

// Version information set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
