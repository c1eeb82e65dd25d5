// carbontally estimates organizational greenhouse-gas emissions from
// operational proxies and scores Scope-2 electricity estimates.
package main

import (
	"os"

	"github.com/carbontally/carbontally/internal/cli"
	"github.com/carbontally/carbontally/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps errors to the process exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
