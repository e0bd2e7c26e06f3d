// Package main is the entry point for the fixtkit CLI.
package main

import "fixtkit.dev/pkg/fixtkit/cmd"

func main() {
	cmd.Execute()
}
