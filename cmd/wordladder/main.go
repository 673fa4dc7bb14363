// Command wordladder finds word ladders from the command line or over HTTP.
package main

import (
	"fmt"
	"os"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("wordladder version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("wordladder version %s-dev", version)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
