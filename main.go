package main

import (
	"os"

	"github.com/AnEntrypoint/patchify/subcmd"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	app := cli.NewApp()
	//app.EnableBashCompletion = true
	app.Name = "patchify"
	app.Version = version
	app.Usage = "Reads, writes and serves KORG microKORG program dumps"
	app.HelpName = "patchify"

	app.Commands = []cli.Command{
		subcmd.Dump,
		subcmd.Build,
		subcmd.Presets,
		subcmd.Pack,
		subcmd.Unpack,
		subcmd.Serve,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}
