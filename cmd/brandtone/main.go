// Brandtone - brand theme derivation and template selection
//
// Brandtone derives accessible colour themes from brand colours and ranks
// content templates against features extracted from brand signals.
package main

import (
	"os"

	"github.com/brandtone/brandtone/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
