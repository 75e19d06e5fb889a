package bitpack

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		native []byte
		want   []byte
	}{
		{"empty", []byte{}, []byte{}},
		{"single high byte", []byte{0xFF}, []byte{0x01, 0x7F}},
		{"full chunk", []byte{0x80, 0x01, 0x82, 0x03, 0x04, 0x05, 0x86}, []byte{0x45, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06}},
		{"chunk and a half", []byte{0, 0, 0, 0, 0, 0, 0, 0x90}, []byte{0, 0, 0, 0, 0, 0, 0, 0, 0x01, 0x10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.native)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode = % X, want % X", got, tt.want)
			}
			if back := Decode(got); !bytes.Equal(back, tt.native) {
				t.Errorf("Decode = % X, want % X", back, tt.native)
			}
		})
	}
}

func TestDecodeShortTail(t *testing.T) {
	if got := Decode([]byte{0x01}); len(got) != 0 {
		t.Errorf("lone MSB byte = % X", got)
	}
	if got := Decode(nil); len(got) != 0 {
		t.Errorf("nil = % X", got)
	}
	if got := Decode([]byte{0x02, 0x11, 0x22}); !bytes.Equal(got, []byte{0x11, 0xA2}) {
		t.Errorf("short chunk = % X", got)
	}
}

func TestLengths(t *testing.T) {
	tests := []struct{ n, m int }{
		{0, 0}, {1, 2}, {7, 8}, {8, 10}, {14, 16}, {256, 293}, {32768, 37450},
	}
	for _, tt := range tests {
		if got := EncodedLen(tt.n); got != tt.m {
			t.Errorf("EncodedLen(%d) = %d, want %d", tt.n, got, tt.m)
		}
		if got := DecodedLen(tt.m); got != tt.n {
			t.Errorf("DecodedLen(%d) = %d, want %d", tt.m, got, tt.n)
		}
	}
	for n := 0; n <= 1000; n++ {
		if got := len(Encode(make([]byte, n))); got != EncodedLen(n) {
			t.Fatalf("len(Encode(%d bytes)) = %d, want %d", n, got, EncodedLen(n))
		}
	}
}

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.MaxSize = 1024

	properties := gopter.NewProperties(parameters)

	properties.Property("decode inverts encode", prop.ForAll(
		func(data []byte) bool {
			return bytes.Equal(Decode(Encode(data)), data)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("encoded bytes fit in 7 bits", prop.ForAll(
		func(data []byte) bool {
			for _, b := range Encode(data) {
				if 0x80 <= b {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("encoded length is n + ceil(n/7)", prop.ForAll(
		func(data []byte) bool {
			n := len(data)
			return len(Encode(data)) == n+(n+6)/7
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}
