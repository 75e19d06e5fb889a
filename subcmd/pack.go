package subcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AnEntrypoint/patchify/microkorg/bitpack"
	"github.com/AnEntrypoint/patchify/microkorg/log"
	"github.com/AnEntrypoint/patchify/microkorg/util"
	"github.com/urfave/cli"
)

func hexCommand(name, usage string, convert func([]byte) []byte) cli.Command {
	return cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<hex bytes>...",
		Flags:     withLogFlags(),
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() < 1 {
				cli.ShowCommandHelp(ctx, name)
				os.Exit(1)
			}
			applyLogFlags(ctx)
			in, err := util.ParseHex(strings.Join(ctx.Args(), " "))
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			out := convert(in)
			log.Debugf("%s: %d bytes -> %d bytes", name, len(in), len(out))
			fmt.Println(util.Hex(out))
			return nil
		},
	}
}

var Pack = hexCommand("pack", "Packs 8-bit data into 7-bit exclusive payload bytes", bitpack.Encode)

var Unpack = hexCommand("unpack", "Unpacks 7-bit exclusive payload bytes into 8-bit data", bitpack.Decode)
