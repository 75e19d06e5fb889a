package bitstream

import "fmt"

// Writer appends MSB-first bit fields to a growing buffer.
type Writer struct {
	buf []byte
	pos int
}

func NewWriter() *Writer {
	return &Writer{}
}

// NewWriterSize preallocates room for size bytes.
func NewWriterSize(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

func (w *Writer) grow() {
	need := (w.pos + 7) >> 3
	for len(w.buf) < need {
		w.buf = append(w.buf, 0)
	}
}

// Write appends the low n bits of v, most significant first. Higher bits of v are ignored.
func (w *Writer) Write(v uint32, n int) {
	checkWidth(n)
	for i := n - 1; 0 <= i; i-- {
		bit := v >> uint(i) & 1
		idx := w.pos >> 3
		if len(w.buf) <= idx {
			w.buf = append(w.buf, 0)
		}
		if bit != 0 {
			w.buf[idx] |= 0x80 >> uint(w.pos&7)
		}
		w.pos++
	}
}

func (w *Writer) WriteBit(b bool) {
	if b {
		w.Write(1, 1)
	} else {
		w.Write(0, 1)
	}
}

// Skip leaves n zero bits.
func (w *Writer) Skip(n int) {
	if n < 0 {
		panic(fmt.Sprintf("bitstream: negative skip %d", n))
	}
	w.pos += n
	w.grow()
}

func (w *Writer) Align() {
	if rest := w.pos & 7; rest != 0 {
		w.Skip(8 - rest)
	}
}

func (w *Writer) Pos() int {
	return w.pos
}

// Bytes returns ceil(Pos()/8) bytes. A partial last byte is zero filled.
func (w *Writer) Bytes() []byte {
	w.grow()
	return w.buf[:(w.pos+7)>>3]
}
