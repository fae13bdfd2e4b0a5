package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`
	NoColor bool             `help:"Disable colored output"`

	Play  PlayCmd  `cmd:"" default:"1" help:"Play a local hot-seat game in the terminal"`
	Score ScoreCmd `cmd:"" help:"Score a selection of dice"`
	Odds  OddsCmd  `cmd:"" help:"Show bust and scoring odds per number of dice"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("farkle"),
		kong.Description("Farkle dice game rules engine and terminal client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
