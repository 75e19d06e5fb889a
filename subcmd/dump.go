package subcmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnEntrypoint/patchify/microkorg/log"
	"github.com/AnEntrypoint/patchify/microkorg/program"
	"github.com/AnEntrypoint/patchify/microkorg/sysex"
	"github.com/AnEntrypoint/patchify/microkorg/util"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// dumped is one program found in a file, with its raw record.
type dumped struct {
	slot  int
	patch *program.Patch
	raw   []byte
}

func (d dumped) label(i int) string {
	if d.slot < 0 {
		return fmt.Sprintf("#%d", i+1)
	}
	return program.Slot(d.slot)
}

func readRaw(data []byte) ([]dumped, error) {
	result := []dumped{}
	if len(data) < program.BankSize*program.RecordSize {
		p, err := program.Decode(data)
		if err != nil {
			return nil, err
		}
		return append(result, dumped{slot: -1, patch: p, raw: data[:program.RecordSize]}), nil
	}
	bank, err := program.DecodeBank(data)
	if err != nil {
		return nil, err
	}
	for i, p := range bank.Programs {
		result = append(result, dumped{slot: i, patch: p, raw: data[i*program.RecordSize : (i+1)*program.RecordSize]})
	}
	return result, nil
}

func readPrograms(file string) ([]dumped, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".bin":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return readRaw(data)
	case ".json":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		p, err := program.FromJSON(data)
		if err != nil {
			return nil, err
		}
		return []dumped{{slot: -1, patch: p, raw: p.Bytes()}}, nil
	}
	msgs, err := sysex.ReadFile(file)
	if err != nil {
		return nil, err
	}
	result := []dumped{}
	for i, m := range msgs {
		msg, err := sysex.Parse(m)
		if err != nil {
			log.Warnf("message %d: %s", i, err)
			continue
		}
		slot := -1
		for j, p := range msg.Programs {
			if 1 < len(msg.Programs) {
				slot = j
			}
			result = append(result, dumped{slot: slot, patch: p, raw: p.Bytes()})
		}
	}
	if len(result) == 0 {
		return nil, errors.Errorf("no program dump found in %s", file)
	}
	return result, nil
}

var Dump = cli.Command{
	Name:      "dump",
	Aliases:   []string{"d"},
	Usage:     "Dumps microKORG program files (.syx|.mid|.bin|.json)",
	ArgsUsage: "<filename>",
	Flags: withLogFlags(
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Dumps in JSON format`,
		},
		cli.StringFlag{
			Name:  "slot, s",
			Usage: `Dumps only one program of a bank (A.11 .. B.88)`,
		},
		cli.BoolFlag{
			Name:  "hex, x",
			Usage: `Dumps the 256-byte program records in hex`,
		},
		cli.BoolFlag{
			Name:  "protobuf, p",
			Usage: `Dumps the programs as a serialized microkorg.Bank protocol buffer`,
		},
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "dump")
			os.Exit(1)
		}
		applyLogFlags(ctx)
		programs, err := readPrograms(ctx.Args().First())
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if s := ctx.String("slot"); s != "" {
			slot, err := program.ParseSlot(s)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			found := []dumped{}
			for _, d := range programs {
				if d.slot == slot {
					found = append(found, d)
				}
			}
			if len(found) == 0 {
				return cli.NewExitError(fmt.Errorf("%s holds no program %s", ctx.Args().First(), program.Slot(slot)), 1)
			}
			programs = found
		}

		switch {
		case ctx.Bool("protobuf"):
			bank := &program.Bank{}
			for _, d := range programs {
				bank.Programs = append(bank.Programs, d.patch)
			}
			b, err := proto.Marshal(bank.ToPB())
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Print(string(b))
		case ctx.Bool("json"):
			var v interface{} = programs[0].patch
			if 1 < len(programs) {
				b := &program.Bank{}
				for _, d := range programs {
					b.Programs = append(b.Programs, d.patch)
				}
				v = b
			}
			j, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Println(string(j))
		case ctx.Bool("hex"):
			for i, d := range programs {
				fmt.Printf("%s %s\n%s\n", d.label(i), d.patch.Name, util.Indent(util.HexDump(d.raw), "\t"))
			}
		case 1 < len(programs):
			for i, d := range programs {
				fmt.Printf("%s %s\n", d.label(i), d.patch.Name)
			}
		default:
			fmt.Println(programs[0].patch.String())
		}
		return nil
	},
}
