package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Classify ClassifyCmd      `cmd:"" help:"Classify five-card hands given in card notation (e.g. 'AsKsQsJsTs')"`
	Deal     DealCmd          `cmd:"" help:"Shuffle a deck, deal hands and classify them"`
	Tally    TallyCmd         `cmd:"" help:"Deal many hands concurrently and count each category"`
}

func main() {
	cli := CLI{Globals: Globals{out: os.Stdout}}
	ctx := kong.Parse(&cli,
		kong.Name("handclass"),
		kong.Description("Five-card poker hand classifier"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
