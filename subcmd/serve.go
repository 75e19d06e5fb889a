package subcmd

import (
	"os"

	"github.com/AnEntrypoint/patchify/librarian"
	"github.com/AnEntrypoint/patchify/microkorg/log"
	"github.com/urfave/cli"
)

var Serve = cli.Command{
	Name:  "serve",
	Usage: "Serves the program library to MCP clients on stdio",
	Flags: withLogFlags(
		cli.StringFlag{
			Name:   "library, l",
			Usage:  `Bank file to load (.syx|.mid|.bin)`,
			EnvVar: "PATCHIFY_LIBRARY",
		},
		cli.BoolFlag{
			Name:  "save, s",
			Usage: `Writes the library back on exit when it changed`,
		},
	),
	Action: func(ctx *cli.Context) error {
		applyLogFlags(ctx)
		lib := librarian.New()
		path := ctx.String("library")
		if path != "" {
			if _, err := os.Stat(path); err == nil {
				if err := lib.Load(path); err != nil {
					return cli.NewExitError(err, 1)
				}
			} else if ctx.Bool("save") {
				log.Infof("%s does not exist yet, starting from Init Programs", path)
			} else {
				return cli.NewExitError(err, 1)
			}
		}
		opts := librarian.Options{
			Name:    ctx.App.Name,
			Version: ctx.App.Version,
		}
		if ctx.Bool("save") {
			if path == "" {
				log.Warnf("--save has no effect without --library")
			}
			opts.SavePath = path
		}
		if err := librarian.Serve(lib, opts); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	},
}
