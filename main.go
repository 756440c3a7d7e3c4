// Package main is the entry point for the rocqtrace CLI.
package main

import "rocqtrace.dev/pkg/rocqtrace/cmd"

func main() {
	cmd.Execute()
}
