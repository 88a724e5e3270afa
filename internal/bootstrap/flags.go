// Package bootstrap wires configuration, logging and the front ends into
// the gitsim command line.
package bootstrap

import (
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=gitsim.key=value",
		},
		&urfavecli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch the simulated repository starts on",
		},
		&urfavecli.BoolFlag{
			Name:  "plain",
			Usage: "Read commands line by line from stdin instead of starting the TUI",
		},
	}
}
