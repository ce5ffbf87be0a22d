// Package main provides the CLI entrypoint for unterpolate.
//
// unterpolate moves values between two shapes described by one template:
//   - to: extract a nested child value out of a parent document
//   - from: rebuild the parent document from a child value
//   - check: lint a template file
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}
