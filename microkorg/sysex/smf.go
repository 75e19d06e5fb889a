package sysex

import (
	"io"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadSMF collects the exclusive messages of every track in a Standard MIDI File.
func ReadSMF(r io.Reader) ([][]byte, error) {
	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "invalid standard MIDI file")
	}
	msgs := [][]byte{}
	for _, tr := range s.Tracks {
		for _, ev := range tr {
			m := []byte(ev.Message)
			if len(m) == 0 || m[0] != Start {
				continue
			}
			if m[len(m)-1] != End {
				m = append(m, End)
			}
			msgs = append(msgs, m)
		}
	}
	return msgs, nil
}

// WriteSMF writes msgs as a single-track Standard MIDI File, all at tick 0.
func WriteSMF(w io.Writer, msgs [][]byte) error {
	s := smf.New()
	var tr smf.Track
	for _, m := range msgs {
		tr.Add(0, m)
	}
	tr.Close(0)
	if err := s.Add(tr); err != nil {
		return errors.WithStack(err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
