package subcmd

import (
	"testing"

	"github.com/AnEntrypoint/patchify/microkorg/program"
)

func TestPresetBank(t *testing.T) {
	names := program.PresetNames()
	b, err := presetBank(names)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Programs) != program.BankSize {
		t.Fatalf("%d programs", len(b.Programs))
	}
	for i, p := range b.Programs {
		if p == nil {
			t.Fatalf("program %s is nil", program.Slot(i))
		}
		if i < len(names) && p.Name != names[i] {
			t.Errorf("%s = %q, want %q", program.Slot(i), p.Name, names[i])
		}
	}
	if b.Programs[len(names)].Name != "Init Program" {
		t.Errorf("%s = %q", program.Slot(len(names)), b.Programs[len(names)].Name)
	}

	if _, err := presetBank([]string{"Fat Bass", "No Such Preset"}); err == nil {
		t.Error("unknown preset should fail")
	}
}
