// arrange computes terminal UI layouts: split widgets cut strips off a
// container, dock widgets pin to its edges, and the remaining widgets flow
// through a pluggable layout and are aligned in the space left over.
//
// Usage:
//
//	arrange run [scene] [--format canvas|table|json|yaml] [--viewport WxH]
//	arrange preview [scene]
//	arrange scenes
//	arrange export <scene> [--format toml|yaml] [-o file]
package main

import (
	"os"

	"gitlab.com/tinyland/lab/arrange/pkg/cli"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
