// Package main provides the CLI entry point for nbspell.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:]))
}

// execute runs the CLI and maps the outcome to a process exit status:
// 0 when no misspellings were found, 1 when some were or when the run failed.
func execute(args []string) int {
	cmd := newRootCommand(os.Stdout, os.Stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errMisspelled) {
			fmt.Fprintln(os.Stderr, "nbspell:", err)
		}
		return 1
	}
	return 0
}
