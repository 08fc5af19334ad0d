// Command ggicon renders the ClaudeBoard application icon.
//
// Usage:
//
//	ggicon [-o icon.png] [--ico icon.ico] [--icns icon.icns] [--font path]... [-v]
//
// With no arguments it writes icon.png in the working directory and prints
// "icon.png saved".
package main

import (
	"fmt"
	"os"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
