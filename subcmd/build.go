package subcmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnEntrypoint/patchify/microkorg/log"
	"github.com/AnEntrypoint/patchify/microkorg/program"
	"github.com/AnEntrypoint/patchify/microkorg/sysex"
	"github.com/AnEntrypoint/patchify/microkorg/util"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// presetBank fills the first slots of an Init Program bank with the named presets.
func presetBank(names []string) (*program.Bank, error) {
	b := program.NewBank()
	for i, name := range names {
		if program.BankSize <= i {
			return nil, errors.Errorf("more than %d presets", program.BankSize)
		}
		p, err := program.Preset(name)
		if err != nil {
			return nil, err
		}
		b.Programs[i] = p
	}
	return b, nil
}

func loadPatch(ctx *cli.Context) (*program.Patch, error) {
	if file := ctx.String("json"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return program.FromJSON(data)
	}
	return program.Preset(ctx.String("preset"))
}

var Build = cli.Command{
	Name:      "build",
	Aliases:   []string{"b"},
	Usage:     "Builds a program dump from a preset or a JSON file",
	ArgsUsage: " ",
	Flags: withLogFlags(
		cli.StringFlag{
			Name:  "preset, p",
			Usage: `Factory preset name`,
			Value: "Init Program",
		},
		cli.StringFlag{
			Name:  "json, j",
			Usage: `Program in JSON format (overrides --preset)`,
		},
		cli.StringFlag{
			Name:  "name, n",
			Usage: `Renames the program`,
		},
		cli.BoolFlag{
			Name:  "bank, b",
			Usage: `Builds an all-program dump holding every factory preset`,
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: `Output file (.syx|.mid|.bin), hex on stdout when omitted`,
		},
	),
	Action: func(ctx *cli.Context) error {
		applyLogFlags(ctx)
		var msg, raw []byte
		if ctx.Bool("bank") {
			b, err := presetBank(program.PresetNames())
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			msg, raw = sysex.BuildBank(b), b.Bytes()
		} else {
			p, err := loadPatch(ctx)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			if name := ctx.String("name"); name != "" {
				p.Name = util.ASCIIName(name, program.NameSize)
			}
			log.Infof("building %q", p.Name)
			msg, raw = sysex.Build(p), p.Bytes()
		}

		out := ctx.String("out")
		var err error
		switch strings.ToLower(filepath.Ext(out)) {
		case "":
			fmt.Println(util.Hex(msg))
			return nil
		case ".bin":
			err = errors.WithStack(os.WriteFile(out, raw, 0644))
		default:
			err = sysex.WriteFile(out, [][]byte{msg})
		}
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Infof("wrote %s", out)
		return nil
	},
}
