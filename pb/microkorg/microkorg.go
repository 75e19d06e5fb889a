// Package microkorg holds the protocol buffer form of microKORG programs,
// written by "patchify dump --protobuf".
package microkorg

import (
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
)

// LoadBytes appends the programs of a serialized Bank.
func (b *Bank) LoadBytes(data []byte) error {
	var loaded Bank
	if err := proto.Unmarshal(data, &loaded); err != nil {
		return errors.Wrap(err, "failed to unmarshal bank")
	}
	for _, p := range loaded.Programs {
		if p == nil {
			p = &Patch{}
		}
		b.Programs = append(b.Programs, p)
	}
	return nil
}

// Find returns the first program named name.
func (b *Bank) Find(name string) (*Patch, bool) {
	for _, p := range b.GetPrograms() {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}
