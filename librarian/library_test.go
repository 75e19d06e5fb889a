package librarian

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/AnEntrypoint/patchify/microkorg/program"
	"github.com/AnEntrypoint/patchify/microkorg/sysex"
	"github.com/pkg/errors"
)

func preset(t *testing.T, name string) *program.Patch {
	t.Helper()
	p, err := program.Preset(name)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLibrarySlots(t *testing.T) {
	lib := New()
	if lib.Dirty() {
		t.Error("new library should be clean")
	}
	if got := lib.List(); len(got) != program.BankSize || got[0].Slot != "A.11" || got[127].Name != "Init Program" {
		t.Fatalf("List() = %d entries", len(got))
	}

	bass := preset(t, "Fat Bass")
	if err := lib.Set(9, bass); err != nil {
		t.Fatal(err)
	}
	if !lib.Dirty() {
		t.Error("Set should mark the library dirty")
	}
	bass.Name = "changed"
	got, err := lib.Get(9)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Fat Bass" {
		t.Errorf("Set should store a copy, got %q", got.Name)
	}
	got.Name = "changed"
	if again, _ := lib.Get(9); again.Name != "Fat Bass" {
		t.Errorf("Get should return a copy, got %q", again.Name)
	}

	for _, slot := range []int{-1, 128} {
		if _, err := lib.Get(slot); err == nil {
			t.Errorf("Get(%d) should fail", slot)
		}
		if err := lib.Set(slot, bass); err == nil {
			t.Errorf("Set(%d) should fail", slot)
		}
	}
	if err := lib.Set(0, nil); err == nil {
		t.Error("Set(nil) should fail")
	}

	if found := lib.Find("fat"); len(found) != 1 || found[0] != 9 {
		t.Errorf("Find(fat) = %v", found)
	}
	if found := lib.Find("init"); len(found) != program.BankSize-1 {
		t.Errorf("Find(init) = %d slots", len(found))
	}
}

func TestLibrarySaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bank.syx", "bank.mid", "bank.bin"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			lib := New()
			lib.Set(64, preset(t, "Vox Choir"))
			if err := lib.Save(path); err != nil {
				t.Fatal(err)
			}
			if lib.Dirty() {
				t.Error("Save should clear the dirty flag")
			}

			other := New()
			if err := other.Load(path); err != nil {
				t.Fatal(err)
			}
			p, _ := other.Get(64)
			if p.Name != "Vox Choir" {
				t.Errorf("B.11 = %q", p.Name)
			}
			if p, _ = other.Get(0); p.Name != "Init Program" {
				t.Errorf("A.11 = %q", p.Name)
			}
		})
	}
}

func TestLibraryLoadSinglePrograms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.syx")
	msgs := [][]byte{
		{0xF0, 0x43, 0x10, 0x4C, 0x00, 0xF7},
		sysex.Build(preset(t, "Sweeping Pad")),
		sysex.Build(preset(t, "Unison Lead")),
	}
	if err := sysex.WriteFile(path, msgs); err != nil {
		t.Fatal(err)
	}
	lib := New()
	if err := lib.Load(path); err != nil {
		t.Fatal(err)
	}
	names := []string{}
	for _, e := range lib.List()[:3] {
		names = append(names, e.Name)
	}
	if names[0] != "Sweeping Pad" || names[1] != "Unison Lead" || names[2] != "Init Program" {
		t.Errorf("slots = %v", names)
	}
}

func TestLibraryLoadRaw(t *testing.T) {
	dir := t.TempDir()
	single := filepath.Join(dir, "one.bin")
	os.WriteFile(single, preset(t, "Fat Bass").Bytes(), 0644)
	lib := New()
	if err := lib.Load(single); err != nil {
		t.Fatal(err)
	}
	if p, _ := lib.Get(0); p.Name != "Fat Bass" {
		t.Errorf("A.11 = %q", p.Name)
	}

	short := filepath.Join(dir, "short.bin")
	os.WriteFile(short, make([]byte, 40), 0644)
	if err := lib.Load(short); errors.Cause(err) != program.ErrTruncatedRecord {
		t.Errorf("got %v", err)
	}
}

func TestLibraryLoadNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.syx")
	os.WriteFile(path, []byte{0x00, 0x01}, 0644)
	if err := New().Load(path); errors.Cause(err) != ErrNoPrograms {
		t.Errorf("got %v", err)
	}
}

func TestLibraryConcurrentAccess(t *testing.T) {
	lib := New()
	p := preset(t, "Fat Bass")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 16; j++ {
				lib.Set(i*16+j, p)
				lib.List()
				lib.Find("bass")
			}
		}(i)
	}
	wg.Wait()
	if found := lib.Find("Fat Bass"); len(found) != program.BankSize {
		t.Errorf("%d slots hold Fat Bass", len(found))
	}
}
