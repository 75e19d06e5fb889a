package bitstream

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrOutOfRange = errors.New("bit access out of range")

// Reader reads MSB-first bit fields from a borrowed buffer.
//
// The first error is sticky: once a read runs past the end of the buffer,
// every later read returns 0 and Err reports the original failure.
type Reader struct {
	data []byte
	pos  int
	err  error
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func checkWidth(n int) {
	if n < 0 || 32 < n {
		panic(fmt.Sprintf("bitstream: field width %d out of 0..32", n))
	}
}

func (r *Reader) fits(n int) bool {
	if r.err != nil {
		return false
	}
	if len(r.data)*8 < r.pos+n {
		r.err = errors.Wrapf(ErrOutOfRange, "%d bits at bit %d of %d", n, r.pos, len(r.data)*8)
		return false
	}
	return true
}

// Read returns the next n bits; the first bit read becomes the most significant.
func (r *Reader) Read(n int) uint32 {
	checkWidth(n)
	if !r.fits(n) {
		return 0
	}
	/*
	   data[0]   data[1]
	   76543210  76543210
	   ^pos=0    ^pos=8
	*/
	var v uint32
	for i := 0; i < n; i++ {
		b := r.data[r.pos>>3]
		v = v<<1 | uint32(b>>uint(7-r.pos&7))&1
		r.pos++
	}
	return v
}

func (r *Reader) ReadBit() bool {
	return r.Read(1) != 0
}

func (r *Reader) Skip(n int) {
	if n < 0 {
		panic(fmt.Sprintf("bitstream: negative skip %d", n))
	}
	if r.fits(n) {
		r.pos += n
	}
}

// Align advances to the next byte boundary. It is a no-op when already aligned.
func (r *Reader) Align() {
	if rest := r.pos & 7; rest != 0 {
		r.Skip(8 - rest)
	}
}

// Pos returns the current position in bits.
func (r *Reader) Pos() int {
	return r.pos
}

func (r *Reader) Err() error {
	return r.err
}
