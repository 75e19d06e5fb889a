// Package sysex frames microKORG program data as Korg exclusive messages:
//
//	F0 42 30 58 <function> <8-to-7 packed data> F7
package sysex

import (
	"github.com/AnEntrypoint/patchify/microkorg/bitpack"
	"github.com/AnEntrypoint/patchify/microkorg/enums"
	"github.com/AnEntrypoint/patchify/microkorg/log"
	"github.com/AnEntrypoint/patchify/microkorg/program"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
)

const (
	Start        = 0xF0
	End          = 0xF7
	Manufacturer = 0x42 // Korg
	Device       = 0x30 // global channel 1
	Product      = 0x58 // microKORG

	headerSize = 5
)

var (
	ErrInvalidFraming      = errors.New("invalid exclusive message framing")
	ErrUnsupportedFunction = errors.New("unsupported function code")
)

// Message is a parsed program dump.
type Message struct {
	Function enums.Function
	Programs []*program.Patch
}

func checkFraming(b []byte) error {
	if len(b) < headerSize+1 {
		return errors.Wrapf(ErrInvalidFraming, "message too short (%d bytes)", len(b))
	}
	expect := []struct {
		pos  int
		want byte
		what string
	}{
		{0, Start, "start"},
		{len(b) - 1, End, "end"},
		{1, Manufacturer, "manufacturer"},
		{2, Device, "device"},
		{3, Product, "product"},
	}
	for _, e := range expect {
		if b[e.pos] != e.want {
			return errors.Wrapf(ErrInvalidFraming, "%s byte is 0x%02X, want 0x%02X", e.what, b[e.pos], e.want)
		}
	}
	for i, c := range b[headerSize : len(b)-1] {
		if 0x80 <= c {
			return errors.Wrapf(ErrInvalidFraming, "status byte 0x%02X inside payload at offset %d", c, headerSize+i)
		}
	}
	return nil
}

// Parse validates the envelope of an exclusive message and decodes its
// programs. The payload is only unpacked once the framing is known to be good.
func Parse(b []byte) (*Message, error) {
	if err := checkFraming(b); err != nil {
		return nil, err
	}
	fn := enums.Function(b[4])
	if !fn.Supported() {
		return nil, errors.Wrapf(ErrUnsupportedFunction, "%s", fn)
	}
	data := bitpack.Decode(b[headerSize : len(b)-1])
	log.Debugf("%s: %d packed bytes, %d unpacked", fn, len(b)-headerSize-1, len(data))

	msg := &Message{Function: fn}
	switch fn {
	case enums.Function_CurrentProgram:
		p, err := program.Decode(data)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", fn)
		}
		msg.Programs = []*program.Patch{p}
	case enums.Function_AllPrograms:
		bank, err := program.DecodeBank(data)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", fn)
		}
		msg.Programs = bank.Programs
	}
	return msg, nil
}

// ParseProgram parses a current program dump.
func ParseProgram(b []byte) (*program.Patch, error) {
	msg, err := Parse(b)
	if err != nil {
		return nil, err
	}
	if msg.Function != enums.Function_CurrentProgram {
		return nil, errors.Wrapf(ErrUnsupportedFunction, "expected a single program, got %s", msg.Function)
	}
	return msg.Programs[0], nil
}

// Bank returns the programs of an all-program dump as a Bank.
func (m *Message) Bank() *program.Bank {
	return &program.Bank{Programs: m.Programs}
}

func build(fn enums.Function, data []byte) []byte {
	body := make([]byte, 0, headerSize-1+bitpack.EncodedLen(len(data)))
	body = append(body, Manufacturer, Device, Product, byte(fn))
	body = append(body, bitpack.Encode(data)...)
	return midi.SysEx(body)
}

// Build returns a current program dump of p.
func Build(p *program.Patch) []byte {
	return build(enums.Function_CurrentProgram, p.Bytes())
}

// BuildBank returns an all-program dump of b.
func BuildBank(b *program.Bank) []byte {
	return build(enums.Function_AllPrograms, b.Bytes())
}
