package bitstream

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestReaderMSBFirst(t *testing.T) {
	r := NewReader([]byte{0xB4, 0x0F})
	tests := []struct {
		n    int
		want uint32
	}{
		{1, 1},
		{2, 1},
		{3, 5},
		{4, 0},
		{6, 0x0F},
	}
	for _, tt := range tests {
		if got := r.Read(tt.n); got != tt.want {
			t.Errorf("Read(%d) at %d = %d, want %d", tt.n, r.Pos()-tt.n, got, tt.want)
		}
	}
	if r.Pos() != 16 {
		t.Errorf("Pos = %d", r.Pos())
	}
	if r.Err() != nil {
		t.Errorf("unexpected error: %v", r.Err())
	}
}

func TestReaderWide(t *testing.T) {
	r := NewReader([]byte{0x12, 0x34, 0x56, 0x78, 0x9A})
	if got := r.Read(32); got != 0x12345678 {
		t.Errorf("Read(32) = 0x%08X", got)
	}
	if got := r.Read(0); got != 0 {
		t.Errorf("Read(0) = %d", got)
	}
	if got := r.Read(8); got != 0x9A {
		t.Errorf("Read(8) = 0x%02X", got)
	}
}

func TestReaderAlignAndSkip(t *testing.T) {
	r := NewReader([]byte{0xFF, 0x81})
	r.Read(3)
	r.Align()
	if r.Pos() != 8 {
		t.Fatalf("Align: Pos = %d", r.Pos())
	}
	r.Align()
	if r.Pos() != 8 {
		t.Fatalf("Align on boundary moved to %d", r.Pos())
	}
	r.Skip(7)
	if !r.ReadBit() {
		t.Error("last bit should be set")
	}
}

func TestReaderOutOfRange(t *testing.T) {
	r := NewReader([]byte{0xFF})
	r.Read(4)
	if got := r.Read(5); got != 0 {
		t.Errorf("overrun read = %d", got)
	}
	if errors.Cause(r.Err()) != ErrOutOfRange {
		t.Fatalf("Err = %v", r.Err())
	}
	// sticky: a read that would fit still fails
	if got := r.Read(1); got != 0 {
		t.Errorf("read after error = %d", got)
	}
	if r.Pos() != 4 {
		t.Errorf("Pos moved to %d", r.Pos())
	}

	r = NewReader(nil)
	r.Skip(1)
	if errors.Cause(r.Err()) != ErrOutOfRange {
		t.Errorf("Skip past end: %v", r.Err())
	}
}

func TestReaderPanicsOnWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Read(33) should panic")
		}
	}()
	NewReader(make([]byte, 8)).Read(33)
}

func TestWriter(t *testing.T) {
	w := NewWriter()
	w.Write(1, 1)
	w.Write(1, 2)
	w.Write(5, 3)
	w.Skip(4)
	w.Write(0xFF0F, 6)
	if got := w.Bytes(); !bytes.Equal(got, []byte{0xB4, 0x0F}) {
		t.Errorf("Bytes = % X", got)
	}
}

func TestWriterPartialByte(t *testing.T) {
	w := NewWriterSize(4)
	w.WriteBit(true)
	if got := w.Bytes(); !bytes.Equal(got, []byte{0x80}) {
		t.Errorf("Bytes = % X", got)
	}
	w.Align()
	w.Skip(0)
	if w.Pos() != 8 {
		t.Errorf("Pos = %d", w.Pos())
	}
	w.Skip(3)
	if got := len(w.Bytes()); got != 2 {
		t.Errorf("len = %d", got)
	}
	if got := NewWriter().Bytes(); len(got) != 0 {
		t.Errorf("empty writer = % X", got)
	}
}

func TestWriterReaderSymmetry(t *testing.T) {
	fields := []struct {
		v uint32
		n int
	}{
		{3, 2}, {0, 1}, {1, 1}, {0x7F, 7}, {0, 0}, {0xABCD, 16}, {5, 3}, {0xDEADBEEF, 32}, {2, 4},
	}
	w := NewWriter()
	for _, f := range fields {
		w.Write(f.v, f.n)
	}
	r := NewReader(w.Bytes())
	for _, f := range fields {
		if got := r.Read(f.n); got != f.v {
			t.Errorf("field %d/%d read back %d", f.v, f.n, got)
		}
	}
	if r.Err() != nil {
		t.Error(r.Err())
	}
}
