package util

import (
	"bytes"
	"testing"
)

func TestBias(t *testing.T) {
	tests := []struct {
		v, lo, hi int
		want      uint32
	}{
		{-64, -64, 63, 0},
		{63, -64, 63, 127},
		{0, -64, 63, 64},
		{-100, -64, 63, 0},
		{100, -64, 63, 127},
		{20, -12, 12, 76},
		{-63, -63, 63, 1},
	}
	for _, tt := range tests {
		if got := Bias(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Bias(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
	if got := Unbias(0); got != -64 {
		t.Errorf("Unbias(0) = %d", got)
	}
	if got := Unbias(127); got != 63 {
		t.Errorf("Unbias(127) = %d", got)
	}
}

func TestQuantize(t *testing.T) {
	for w := uint32(0); w < 128; w++ {
		if got := Quantize(Normalize(w, 1), 1); got != w {
			t.Errorf("Quantize(Normalize(%d)) = %d", w, got)
		}
		if got := Quantize(Normalize(w, 20), 20); got != w {
			t.Errorf("Quantize(Normalize(%d, 20), 20) = %d", w, got)
		}
	}
	if got := Quantize(-0.5, 1); got != 0 {
		t.Errorf("negative input: got %d", got)
	}
	if got := Quantize(1.5, 1); got != 127 {
		t.Errorf("overflow input: got %d", got)
	}
}

func TestInt8Wire(t *testing.T) {
	for _, v := range []int{-128, -100, -3, 0, 3, 100, 127} {
		if got := WireToInt8(Int8ToWire(v)); got != v {
			t.Errorf("round trip %d = %d", v, got)
		}
	}
	if got := Int8ToWire(-1); got != 0xFF {
		t.Errorf("Int8ToWire(-1) = 0x%02X", got)
	}
	if got := WireToInt8(Int8ToWire(300)); got != 127 {
		t.Errorf("clamped 300 = %d", got)
	}
}

func TestASCIIName(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Init Program", 12, "Init Program"},
		{"Café Pad", 12, "Cafe Pad"},
		{"Very Long Patch Name", 12, "Very Long Pa"},
		{"Tab\tName", 12, "Tab?Name"},
		{"日本", 12, "??"},
	}
	for _, tt := range tests {
		if got := ASCIIName(tt.in, tt.max); got != tt.want {
			t.Errorf("ASCIIName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPadAndTrimName(t *testing.T) {
	b := PadName("Bass", 12)
	if !bytes.Equal(b, []byte("Bass        ")) {
		t.Fatalf("PadName = %q", b)
	}
	if got := TrimName(b); got != "Bass" {
		t.Errorf("TrimName = %q", got)
	}
	if got := TrimName([]byte("Lead\x00\x00  ")); got != "Lead" {
		t.Errorf("TrimName with NUL = %q", got)
	}
	if got := TrimName([]byte("A\x01\xf0B Prog\x00ram")); got != "A??B Prog?ram" {
		t.Errorf("TrimName with control bytes = %q", got)
	}
}

func TestParseHex(t *testing.T) {
	for _, in := range []string{"F0 42 30", "f04230", "0xF0, 0x42, 0x30", "[F0 42 30]"} {
		b, err := ParseHex(in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", in, err)
		}
		if !bytes.Equal(b, []byte{0xF0, 0x42, 0x30}) {
			t.Errorf("ParseHex(%q) = %s", in, Hex(b))
		}
	}
	if _, err := ParseHex("F0 4"); err == nil {
		t.Error("odd digit count should fail")
	}
}

func TestIndentAndHex(t *testing.T) {
	if got := Indent("a\nb", "\t"); got != "\ta\n\tb" {
		t.Errorf("Indent = %q", got)
	}
	if got := Hex([]byte{0xF0, 0x7F}); got != "[F0 7F]" {
		t.Errorf("Hex = %q", got)
	}
	if got := Hex(nil); got != "[]" {
		t.Errorf("Hex(nil) = %q", got)
	}
	if got := HexDump([]byte{1, 2}); got != "0000: 01 02" {
		t.Errorf("HexDump = %q", got)
	}
}
