// Command heartsbot is the CLI surface for the Hearts decision engine:
// single-decision explanations, batched difficulty comparisons,
// head-to-head match simulation, and telemetry/snapshot file tooling.
package main

import (
	"github.com/alecthomas/kong"
)

var version = "dev"

// CLI is the root command, one struct field per subcommand.
type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Verbose   bool             `help:"Enable debug-level progress logging"`
	Decide    DecideCmd        `cmd:"" help:"Explain a single decision"`
	Compare   CompareCmd       `cmd:"" help:"Compare two difficulties across a seed range"`
	Match     MatchCmd         `cmd:"" help:"Simulate a head-to-head match"`
	Telemetry TelemetryCmd     `cmd:"" help:"Telemetry sink tooling"`
	Snapshot  SnapshotCmd      `cmd:"" help:"Snapshot file tooling"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("heartsbot"),
		kong.Description("Hearts decision engine: explain, compare, and simulate"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version},
	)
	setVerbose(cli.Verbose)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
