// Command cptrie inspects, validates and converts stored code point tries.
package main

import (
	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface for cptrie.
var CLI cli

func main() {
	ctx := kong.Parse(&CLI, parserOptions()...)
	err := ctx.Run(&CLI.Globals)
	ctx.FatalIfErrorf(err)
}

func parserOptions() []kong.Option {
	return []kong.Option{
		kong.Name("cptrie"),
		kong.Description("Inspect, validate and convert code point tries"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}
}
