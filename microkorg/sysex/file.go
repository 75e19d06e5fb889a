package sysex

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnEntrypoint/patchify/microkorg/log"
	"github.com/pkg/errors"
)

// Split cuts a raw .syx stream into F0..F7 messages. Bytes between messages
// are skipped; an unterminated message is an error.
func Split(b []byte) ([][]byte, error) {
	msgs := [][]byte{}
	start := -1
	for i, c := range b {
		switch {
		case c == Start:
			if 0 <= start {
				return nil, errors.Wrapf(ErrInvalidFraming, "message at offset %d is not terminated", start)
			}
			start = i
		case c == End && 0 <= start:
			msgs = append(msgs, b[start:i+1])
			start = -1
		case start < 0:
			log.Debugf("skipping stray byte 0x%02X at offset %d", c, i)
		}
	}
	if 0 <= start {
		return nil, errors.Wrapf(ErrInvalidFraming, "message at offset %d is not terminated", start)
	}
	return msgs, nil
}

func isSMF(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi", ".smf":
		return true
	}
	return false
}

// ReadFile returns every exclusive message in a .syx file or a Standard MIDI File.
func ReadFile(path string) ([][]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if isSMF(path) || bytes.HasPrefix(b, []byte("MThd")) {
		return ReadSMF(bytes.NewReader(b))
	}
	msgs, err := Split(b)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return msgs, nil
}

// WriteFile stores msgs as a Standard MIDI File when path ends in .mid,
// otherwise as a raw .syx stream.
func WriteFile(path string, msgs [][]byte) error {
	fh, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer fh.Close()
	if isSMF(path) {
		if err := WriteSMF(fh, msgs); err != nil {
			return err
		}
		return errors.WithStack(fh.Close())
	}
	for _, m := range msgs {
		if _, err := fh.Write(m); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.WithStack(fh.Close())
}
