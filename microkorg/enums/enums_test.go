package enums

import (
	"encoding/json"
	"testing"
)

func TestStringAndValid(t *testing.T) {
	if s := OSC1Wave_DWGS.String(); s != "DWGS" {
		t.Errorf("OSC1Wave_DWGS = %q", s)
	}
	if s := VoiceMode(1).String(); s != "undefined(1)" {
		t.Errorf("VoiceMode(1) = %q", s)
	}
	if VoiceMode(1).Valid() {
		t.Error("VoiceMode(1) must be invalid")
	}
	if !VoiceMode_Vocoder.Valid() {
		t.Error("Vocoder must be valid")
	}
	if OSC2Wave(3).Valid() {
		t.Error("OSC2Wave(3) must be invalid")
	}
	if s := ArpResolution_1_8.String(); s != "1/8" {
		t.Errorf("ArpResolution_1_8 = %q", s)
	}
}

func TestMarshalJSON(t *testing.T) {
	v := struct {
		Wave   OSC1Wave   `json:"wave"`
		Filter FilterType `json:"filter"`
		Bad    OSC2Wave   `json:"bad"`
	}{OSC1Wave_Vox, FilterType_12HPF, OSC2Wave(3)}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"wave":"Vox","filter":"12HPF","bad":3}`
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want OSC1Wave
	}{
		{`"Saw"`, OSC1Wave_Saw},
		{`"sawtooth"`, OSC1Wave_Saw},
		{`"audio in"`, OSC1Wave_AudioIn},
		{`"AUDIO_IN"`, OSC1Wave_AudioIn},
		{`5`, OSC1Wave_DWGS},
	}
	for _, tt := range tests {
		var w OSC1Wave
		if err := json.Unmarshal([]byte(tt.in), &w); err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if w != tt.want {
			t.Errorf("%s = %s, want %s", tt.in, w, tt.want)
		}
	}

	var f FilterType
	if err := json.Unmarshal([]byte(`"lowpass12"`), &f); err != nil || f != FilterType_12LPF {
		t.Errorf("lowpass12 = %s, %v", f, err)
	}
	var l LFOWave
	if err := json.Unmarshal([]byte(`"S/H"`), &l); err != nil || l != LFOWave_SampleHold {
		t.Errorf("S/H = %s, %v", l, err)
	}
	var d DelayType
	if err := json.Unmarshal([]byte(`"L/R Delay"`), &d); err != nil || d != DelayType_LR {
		t.Errorf("L/R Delay = %s, %v", d, err)
	}
}

func TestUnmarshalJSONRejects(t *testing.T) {
	for _, in := range []string{`"wobble"`, `9`, `-1`, `true`} {
		var w OSC1Wave
		if err := json.Unmarshal([]byte(in), &w); err == nil {
			t.Errorf("%s should fail, got %s", in, w)
		}
	}
	var m VoiceMode
	if err := json.Unmarshal([]byte(`1`), &m); err == nil {
		t.Error("VoiceMode index 1 should fail")
	}
}

func TestFunction(t *testing.T) {
	if !Function_AllPrograms.Supported() || Function(0x41).Supported() {
		t.Error("Supported mismatch")
	}
	if s := Function(0x41).String(); s != "Function(0x41)" {
		t.Errorf("String = %q", s)
	}
}
