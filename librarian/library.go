// Package librarian keeps a bank of microKORG programs in memory and
// exposes it over MCP.
package librarian

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/AnEntrypoint/patchify/microkorg/enums"
	"github.com/AnEntrypoint/patchify/microkorg/log"
	"github.com/AnEntrypoint/patchify/microkorg/program"
	"github.com/AnEntrypoint/patchify/microkorg/sysex"
	"github.com/pkg/errors"
)

var ErrNoPrograms = errors.New("no program data found")

// Entry is one line of a library listing.
type Entry struct {
	Index     int             `json:"index"`
	Slot      string          `json:"slot"`
	Name      string          `json:"name"`
	VoiceMode enums.VoiceMode `json:"voiceMode"`
}

// Library is a 128-slot program bank safe for concurrent use.
type Library struct {
	mu       sync.RWMutex
	programs []*program.Patch
	dirty    bool
}

func New() *Library {
	return &Library{programs: program.NewBank().Programs}
}

func checkSlot(slot int) error {
	if slot < 0 || program.BankSize <= slot {
		return errors.Errorf("program index %d out of range 0..%d", slot, program.BankSize-1)
	}
	return nil
}

func isRaw(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".bin"
}

// Load reads programs from a .syx, .mid or raw .bin file. An all-program
// dump replaces the whole bank; single programs fill slots from A.11 on.
func (l *Library) Load(path string) error {
	var loaded []*program.Patch
	var bank *program.Bank
	if isRaw(path) {
		b, err := os.ReadFile(path)
		if err != nil {
			return errors.WithStack(err)
		}
		if len(b) < program.BankSize*program.RecordSize {
			p, err := program.Decode(b)
			if err != nil {
				return errors.Wrapf(err, "in %s", path)
			}
			loaded = append(loaded, p)
		} else if bank, err = program.DecodeBank(b); err != nil {
			return errors.Wrapf(err, "in %s", path)
		}
	} else {
		msgs, err := sysex.ReadFile(path)
		if err != nil {
			return err
		}
		for i, m := range msgs {
			msg, err := sysex.Parse(m)
			if err != nil {
				if cause := errors.Cause(err); cause == sysex.ErrInvalidFraming || cause == sysex.ErrUnsupportedFunction {
					log.Warnf("%s: skipping message %d: %s", path, i, err)
					continue
				}
				return errors.Wrapf(err, "%s: message %d", path, i)
			}
			if msg.Function == enums.Function_AllPrograms {
				bank = msg.Bank()
			} else {
				loaded = append(loaded, msg.Programs...)
			}
		}
	}
	if bank == nil && len(loaded) == 0 {
		return errors.Wrapf(ErrNoPrograms, "in %s", path)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if bank != nil {
		l.programs = bank.Programs
	}
	if program.BankSize < len(loaded) {
		log.Warnf("%s holds %d programs, only the first %d are kept", path, len(loaded), program.BankSize)
		loaded = loaded[:program.BankSize]
	}
	copy(l.programs, loaded)
	log.Infof("loaded %s", path)
	l.dirty = false
	return nil
}

// Save writes the bank as one all-program dump, or as 128 raw records when
// path ends in .bin.
func (l *Library) Save(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	bank := &program.Bank{Programs: l.programs}
	if isRaw(path) {
		if err := os.WriteFile(path, bank.Bytes(), 0644); err != nil {
			return errors.WithStack(err)
		}
	} else if err := sysex.WriteFile(path, [][]byte{sysex.BuildBank(bank)}); err != nil {
		return err
	}
	l.dirty = false
	log.Infof("saved %s", path)
	return nil
}

func (l *Library) List() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make([]Entry, len(l.programs))
	for i, p := range l.programs {
		result[i] = Entry{Index: i, Slot: program.Slot(i), Name: p.Name, VoiceMode: p.VoiceMode}
	}
	return result
}

// Get returns a copy of the program in slot.
func (l *Library) Get(slot int) (*program.Patch, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.programs[slot].Clone(), nil
}

// Set stores a copy of p in slot.
func (l *Library) Set(slot int, p *program.Patch) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if p == nil {
		return errors.New("nil program")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.programs[slot] = p.Clone()
	l.dirty = true
	return nil
}

// Find returns the slots whose names contain name, ignoring case.
func (l *Library) Find(name string) []int {
	name = strings.ToLower(strings.TrimSpace(name))
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := []int{}
	for i, p := range l.programs {
		if strings.Contains(strings.ToLower(p.Name), name) {
			result = append(result, i)
		}
	}
	return result
}

// Bank returns a copy of every program.
func (l *Library) Bank() *program.Bank {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b := &program.Bank{Programs: make([]*program.Patch, len(l.programs))}
	for i, p := range l.programs {
		b.Programs[i] = p.Clone()
	}
	return b
}

// Dirty reports whether the bank changed since the last Load or Save.
func (l *Library) Dirty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.dirty
}
