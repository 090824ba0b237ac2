// Package main is the entry point for the hr CLI binary.
package main

import (
	"os"

	cli "hrboard/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
