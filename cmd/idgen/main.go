// idgen CLI - command-line generator for UUIDs, ULIDs, and ObjectIds
package main

import "github.com/getidgen/idgen/pkg/cli"

// Build-time variables set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildDate = buildDate
	cli.Execute()
}
