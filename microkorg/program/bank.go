package program

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AnEntrypoint/patchify/microkorg/log"
	"github.com/pkg/errors"
)

// Bank is a full set of 128 programs as sent in an all-program dump.
type Bank struct {
	Programs []*Patch `json:"programs"`
}

func NewBank() *Bank {
	b := &Bank{Programs: make([]*Patch, BankSize)}
	for i := range b.Programs {
		b.Programs[i] = New()
	}
	return b
}

// DecodeBank reads 128 consecutive program records.
func DecodeBank(data []byte) (*Bank, error) {
	if len(data) < BankSize*RecordSize {
		short := len(data) / RecordSize
		return nil, errors.Wrapf(ErrTruncatedRecord, "program %s: bank has %d of %d bytes", Slot(short), len(data), BankSize*RecordSize)
	}
	if BankSize*RecordSize < len(data) {
		log.Debugf("ignoring %d bytes after the last program", len(data)-BankSize*RecordSize)
	}
	b := &Bank{Programs: make([]*Patch, BankSize)}
	for i := range b.Programs {
		p, err := Decode(data[i*RecordSize : (i+1)*RecordSize])
		if err != nil {
			return nil, errors.Wrapf(err, "program %s", Slot(i))
		}
		b.Programs[i] = p
	}
	return b, nil
}

// Bytes returns exactly 128 records. Missing programs are written as the
// Init Program.
func (b *Bank) Bytes() []byte {
	if BankSize < len(b.Programs) {
		log.Warnf("bank holds %d programs, only the first %d are written", len(b.Programs), BankSize)
	}
	result := make([]byte, 0, BankSize*RecordSize)
	for i := 0; i < BankSize; i++ {
		var p *Patch
		if i < len(b.Programs) {
			p = b.Programs[i]
		}
		if p == nil {
			p = New()
		}
		result = append(result, p.Bytes()...)
	}
	return result
}

func (b *Bank) String() string {
	s := []string{}
	for i, p := range b.Programs {
		if p == nil {
			continue
		}
		s = append(s, fmt.Sprintf("%s %s", Slot(i), p.Name))
	}
	return strings.Join(s, "\n")
}

// Slot names a program index the way the front panel does: A.11 .. A.88,
// then B.11 .. B.88.
func Slot(i int) string {
	if i < 0 || BankSize <= i {
		return fmt.Sprintf("#%d", i)
	}
	j := i % 64
	return fmt.Sprintf("%c.%d%d", 'A'+i/64, j/8+1, j%8+1)
}

// ParseSlot accepts "A.11" style names (the dot is optional) or a bare index 0..127.
func ParseSlot(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || BankSize <= n {
			return 0, errors.Errorf("program index %d out of range 0..%d", n, BankSize-1)
		}
		return n, nil
	}
	s = strings.Replace(s, ".", "", 1)
	if len(s) != 3 || (s[0] != 'A' && s[0] != 'B') || s[1] < '1' || '8' < s[1] || s[2] < '1' || '8' < s[2] {
		return 0, errors.Errorf("invalid program slot %q", s)
	}
	return int(s[0]-'A')*64 + int(s[1]-'1')*8 + int(s[2]-'1'), nil
}
