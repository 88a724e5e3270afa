// Package main is the entry point for the gitsim application.
package main

import (
	"context"
	"os"

	"github.com/chmouel/gitsim/internal/bootstrap"
	"github.com/chmouel/gitsim/internal/buildinfo"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	os.Exit(bootstrap.Run(context.Background(), os.Args))
}
