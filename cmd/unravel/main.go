// Package main implements the unravel CLI for decoding nested encodings from
// arguments, stdin or the clipboard.
package main

import (
	"os"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
