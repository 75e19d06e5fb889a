package subcmd

import (
	"github.com/AnEntrypoint/patchify/microkorg/log"
	"github.com/urfave/cli"
)

var logFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
}

func withLogFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, logFlags...)
}

func applyLogFlags(ctx *cli.Context) {
	log.SetLevelByFlags(ctx.Bool("debug"), ctx.Bool("silent"), ctx.Bool("quiet"))
}
