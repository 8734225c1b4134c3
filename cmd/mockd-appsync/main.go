// mockd-appsync CLI - resolves serverless AppSync configuration for a local simulator
package main

import (
	"github.com/getmockd/mockd-appsync/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	cli.Execute()
}
