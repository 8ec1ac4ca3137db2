// Command queryforge renders, validates, lints, and explains SQL SELECT
// statements built from declarative query documents.
package main

import (
	"os"

	"github.com/queryforge/queryforge/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
