package subcmd

import (
	"fmt"

	"github.com/AnEntrypoint/patchify/microkorg/program"
	"github.com/urfave/cli"
)

var Presets = cli.Command{
	Name:  "presets",
	Usage: "Lists the factory presets",
	Flags: withLogFlags(
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: `Shows every parameter`,
		},
	),
	Action: func(ctx *cli.Context) error {
		applyLogFlags(ctx)
		for _, name := range program.PresetNames() {
			if !ctx.Bool("verbose") {
				fmt.Println(name)
				continue
			}
			p, err := program.Preset(name)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Println(p.String())
		}
		return nil
	},
}
