package librarian

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AnEntrypoint/patchify/microkorg/enums"
	"github.com/AnEntrypoint/patchify/microkorg/log"
	"github.com/AnEntrypoint/patchify/microkorg/program"
	"github.com/AnEntrypoint/patchify/microkorg/sysex"
	"github.com/AnEntrypoint/patchify/microkorg/util"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/xlab/closer"
)

type Options struct {
	Name     string
	Version  string
	SavePath string
}

type tools struct {
	lib *Library
}

// NewServer registers the microkorg_* tools for lib.
func NewServer(lib *Library, opts Options) *server.MCPServer {
	if opts.Name == "" {
		opts.Name = "patchify"
	}
	if opts.Version == "" {
		opts.Version = "unknown"
	}
	s := server.NewMCPServer(opts.Name, opts.Version, server.WithToolCapabilities(false))
	t := &tools{lib: lib}

	s.AddTool(mcp.NewTool("microkorg_list-programs",
		mcp.WithDescription("Lists the 128 programs of the library (A.11 .. B.88)."),
		mcp.WithString("filter", mcp.Description("Only list programs whose name contains this text.")),
	), t.listPrograms)

	s.AddTool(mcp.NewTool("microkorg_get-program",
		mcp.WithDescription("Returns a program of the library as JSON."),
		mcp.WithString("slot", mcp.Required(), mcp.Description("Program slot (A.11 .. B.88) or index 0..127.")),
		mcp.WithString("format", mcp.Description(`"json" (default) or "text".`)),
	), t.getProgram)

	s.AddTool(mcp.NewTool("microkorg_set-program",
		mcp.WithDescription("Stores a program in the library, from JSON or a factory preset."),
		mcp.WithString("slot", mcp.Required(), mcp.Description("Program slot (A.11 .. B.88) or index 0..127.")),
		mcp.WithString("patch-json", mcp.Description("Program in JSON. Absent keys keep the Init Program values.")),
		mcp.WithString("preset", mcp.Description("Factory preset name, used when patch-json is empty.")),
	), t.setProgram)

	s.AddTool(mcp.NewTool("microkorg_build-sysex",
		mcp.WithDescription("Builds the exclusive message of a program, or of the whole bank, as hex."),
		mcp.WithString("slot", mcp.Description("Program slot. Ignored when patch-json is given.")),
		mcp.WithString("patch-json", mcp.Description("Program in JSON to build instead of a library slot.")),
		mcp.WithBoolean("all", mcp.Description("Build an all-program dump of the library.")),
	), t.buildSysEx)

	s.AddTool(mcp.NewTool("microkorg_parse-sysex",
		mcp.WithDescription("Decodes a program dump given as hex and optionally stores it in the library."),
		mcp.WithString("hex", mcp.Required(), mcp.Description("The exclusive message, F0 .. F7.")),
		mcp.WithString("store", mcp.Description("Slot to store a single program in. An all-program dump replaces the bank when set to \"all\".")),
	), t.parseSysEx)

	s.AddTool(mcp.NewTool("microkorg_list-presets",
		mcp.WithDescription("Lists the factory presets."),
	), t.listPresets)

	return s
}

// Serve runs the tool server on stdio until the client disconnects. With a
// save path the bank is written back on exit, including on interrupt.
func Serve(lib *Library, opts Options) error {
	save := func() {
		if opts.SavePath == "" || !lib.Dirty() {
			return
		}
		if err := lib.Save(opts.SavePath); err != nil {
			log.Warnf("%s", err)
		}
	}
	closer.Bind(save)
	log.Infof("serving %s on stdio", opts.Name)
	err := server.ServeStdio(NewServer(lib, opts))
	save()
	return errors.WithStack(err)
}

func toJSON(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal to JSON")
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (t *tools) slot(request mcp.CallToolRequest) (int, error) {
	s, err := request.RequireString("slot")
	if err != nil {
		return 0, err
	}
	return program.ParseSlot(s)
}

func (t *tools) listPrograms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Debugf("[mcp] list programs")
	entries := t.lib.List()
	if filter := request.GetString("filter", ""); filter != "" {
		found := []Entry{}
		for _, i := range t.lib.Find(filter) {
			found = append(found, entries[i])
		}
		entries = found
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%s %s (%s)", e.Slot, e.Name, e.VoiceMode)
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (t *tools) getProgram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slot, err := t.slot(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	log.Debugf("[mcp] get program %s", program.Slot(slot))
	p, err := t.lib.Get(slot)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if request.GetString("format", "json") == "text" {
		return mcp.NewToolResultText(p.String()), nil
	}
	return toJSON(p)
}

func (t *tools) patchArg(request mcp.CallToolRequest) (*program.Patch, error) {
	if j := request.GetString("patch-json", ""); j != "" {
		return program.FromJSON([]byte(j))
	}
	if name := request.GetString("preset", ""); name != "" {
		return program.Preset(name)
	}
	return nil, nil
}

func (t *tools) setProgram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slot, err := t.slot(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := t.patchArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if p == nil {
		return mcp.NewToolResultError("either patch-json or preset is required"), nil
	}
	log.Debugf("[mcp] set program %s to %q", program.Slot(slot), p.Name)
	if err := t.lib.Set(slot, p); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Stored %q in %s.", p.Name, program.Slot(slot))), nil
}

func (t *tools) buildSysEx(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if request.GetBool("all", false) {
		log.Debugf("[mcp] build all-program dump")
		return mcp.NewToolResultText(util.Hex(sysex.BuildBank(t.lib.Bank()))), nil
	}
	p, err := t.patchArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if p == nil {
		slot, err := t.slot(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if p, err = t.lib.Get(slot); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	log.Debugf("[mcp] build %q", p.Name)
	return mcp.NewToolResultText(util.Hex(sysex.Build(p))), nil
}

func (t *tools) parseSysEx(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, err := request.RequireString("hex")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := util.ParseHex(h)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	msg, err := sysex.Parse(b)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	log.Debugf("[mcp] parsed %s", msg.Function)

	switch store := request.GetString("store", ""); {
	case store == "":
	case msg.Function == enums.Function_AllPrograms:
		if store != "all" {
			return mcp.NewToolResultError(`an all-program dump can only be stored with store="all"`), nil
		}
		for i, p := range msg.Programs {
			if err := t.lib.Set(i, p); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}
	default:
		slot, err := program.ParseSlot(store)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := t.lib.Set(slot, msg.Programs[0]); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	if len(msg.Programs) == 1 {
		return toJSON(msg.Programs[0])
	}
	return toJSON(msg.Bank())
}

func (t *tools) listPresets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(strings.Join(program.PresetNames(), "\n")), nil
}
