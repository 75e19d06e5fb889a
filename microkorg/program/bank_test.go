package program

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestBankRoundTrip(t *testing.T) {
	b := NewBank()
	b.Programs[5], _ = Preset("Fat Bass")
	b.Programs[127], _ = Preset("Vox Choir")
	data := b.Bytes()
	if len(data) != BankSize*RecordSize {
		t.Fatalf("bank is %d bytes", len(data))
	}
	got, err := DecodeBank(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Programs) != BankSize {
		t.Fatalf("%d programs", len(got.Programs))
	}
	if got.Programs[5].Name != "Fat Bass" || got.Programs[127].Name != "Vox Choir" || got.Programs[0].Name != "Init Program" {
		t.Errorf("names = %q %q %q", got.Programs[5].Name, got.Programs[127].Name, got.Programs[0].Name)
	}
	if !strings.Contains(got.String(), "A.16 Fat Bass") {
		t.Errorf("String() lacks A.16:\n%s", got.String())
	}
}

func TestBankPadsMissingPrograms(t *testing.T) {
	p, _ := Preset("Sweeping Pad")
	b := &Bank{Programs: []*Patch{p, nil}}
	data := b.Bytes()
	if len(data) != BankSize*RecordSize {
		t.Fatalf("bank is %d bytes", len(data))
	}
	got, err := DecodeBank(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.Programs[0].Name != "Sweeping Pad" || got.Programs[1].Name != "Init Program" || got.Programs[100].Name != "Init Program" {
		t.Error("missing programs should be written as the Init Program")
	}
}

func TestDecodeBankTruncated(t *testing.T) {
	_, err := DecodeBank(make([]byte, BankSize*RecordSize-10))
	if errors.Cause(err) != ErrTruncatedRecord {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "B.88") {
		t.Errorf("error should name the short program: %v", err)
	}
	_, err = DecodeBank(make([]byte, 1000))
	if !strings.Contains(err.Error(), "A.14") {
		t.Errorf("error should name A.14: %v", err)
	}
}

func TestSlot(t *testing.T) {
	tests := []struct {
		i    int
		name string
	}{
		{0, "A.11"}, {7, "A.18"}, {8, "A.21"}, {63, "A.88"}, {64, "B.11"}, {127, "B.88"},
	}
	for _, tt := range tests {
		if got := Slot(tt.i); got != tt.name {
			t.Errorf("Slot(%d) = %q, want %q", tt.i, got, tt.name)
		}
		if got, err := ParseSlot(tt.name); err != nil || got != tt.i {
			t.Errorf("ParseSlot(%q) = %d, %v", tt.name, got, err)
		}
	}
	if got := Slot(200); got != "#200" {
		t.Errorf("Slot(200) = %q", got)
	}
	for _, in := range []string{"b11", " 64 ", "B.11"} {
		if got, err := ParseSlot(in); err != nil || got != 64 {
			t.Errorf("ParseSlot(%q) = %d, %v", in, got, err)
		}
	}
	for _, in := range []string{"C.11", "A.19", "A.1", "128", "-1", ""} {
		if _, err := ParseSlot(in); err == nil {
			t.Errorf("ParseSlot(%q) should fail", in)
		}
	}
}
