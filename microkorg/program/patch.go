// Package program converts microKORG programs between the 256-byte record
// found in exclusive dumps and a typed Patch model.
package program

import (
	"bytes"
	"encoding/json"

	"github.com/AnEntrypoint/patchify/microkorg/enums"
	"github.com/pkg/errors"
)

const (
	RecordSize = 256 // bytes per program
	NameSize   = 12
	TimbreSize = 108 // 52 parameter bytes and 56 bytes of padding
	BankSize   = 128 // programs per full dump

	timbreParamSize = 52
)

var ErrTruncatedRecord = errors.New("truncated program record")

// DefaultName replaces a blank name field on decode.
const DefaultName = "Untitled"

type Voice struct {
	Assign       enums.AssignMode  `json:"mode"`
	Portamento   float64           `json:"portamento"`   // 0..1
	UnisonDetune int               `json:"unisonDetune"` // 0..99 cents
	EG1Reset     bool              `json:"eg1Reset"`     // not stored for vocoder programs
	EG2Reset     bool              `json:"eg2Reset"`
	Trigger      enums.TriggerMode `json:"trigger"`
}

type Pitch struct {
	Transpose int `json:"transpose"`
	Tune      int `json:"tune"`
	BendRange int `json:"bendRange"`
	Vibrato   int `json:"vibrato"`
}

type Oscillator1 struct {
	Wave     enums.OSC1Wave `json:"wave"`
	Control1 int            `json:"control1"`
	Control2 int            `json:"control2"`
	DWGS     int            `json:"dwgs"` // 0..63
}

type Oscillator2 struct {
	Wave     enums.OSC2Wave `json:"wave"`
	Mod      enums.OSC2Mod  `json:"mod"`
	Semitone int            `json:"semitone"`
	Tune     int            `json:"tune"`
}

type Mixer struct {
	Osc1  float64 `json:"osc1"`
	Osc2  float64 `json:"osc2"`
	Noise float64 `json:"noise"`
}

type Filter struct {
	Type      enums.FilterType `json:"type"`
	Cutoff    int              `json:"cutoff"` // raw 0..127
	Resonance float64          `json:"resonance"`
	EnvAmount int              `json:"envAmount"` // EG1 intensity x100
	KeyTrack  int              `json:"keyTrack"`
}

// Envelope times and levels are normalized to 0..1.
type Envelope struct {
	A float64 `json:"a"`
	D float64 `json:"d"`
	S float64 `json:"s"`
	R float64 `json:"r"`
}

type Amp struct {
	Level         float64 `json:"level"`
	Pan           int     `json:"pan"`
	Dist          bool    `json:"dist"`
	VelocitySense int     `json:"velocitySense"`
	KeyTrack      int     `json:"keyTrack"`
}

type LFO struct {
	Wave      enums.LFOWave    `json:"wave"`
	Rate      float64          `json:"rate"` // Hz, 0..20
	KeySync   enums.LFOKeySync `json:"keySync"`
	TempoSync bool             `json:"tempoSync"`
	SyncNote  int              `json:"syncNote"` // 0..31
}

// VirtualPatch routes one modulation source to one destination.
type VirtualPatch struct {
	Src       enums.ModSource `json:"src"`
	Dest      enums.ModDest   `json:"dest"`
	Intensity int             `json:"int"` // -63..63
}

// Timbre is one voice layer of a program.
type Timbre struct {
	Voice    Voice           `json:"voice"`
	Pitch    Pitch           `json:"pitch"`
	Osc1     Oscillator1     `json:"osc1"`
	Osc2     Oscillator2     `json:"osc2"`
	Mixer    Mixer           `json:"mixer"`
	Filter   Filter          `json:"filter"`
	FilterEG Envelope        `json:"eg1_filter"`
	Amp      Amp             `json:"amp"`
	AmpEG    Envelope        `json:"eg2_amp"`
	LFO1     LFO             `json:"lfo1"`
	LFO2     LFO             `json:"lfo2"`
	VPatch   [4]VirtualPatch `json:"vPatch"`
}

type ModFX struct {
	Type  enums.ModFXType `json:"type"`
	Speed float64         `json:"speed"`
	Depth float64         `json:"depth"`
}

type Delay struct {
	Sync     bool            `json:"sync"`
	TimeBase int             `json:"timeBase"` // 0..15
	Time     float64         `json:"time"`
	Depth    float64         `json:"feedback"`
	Type     enums.DelayType `json:"type"`
}

type EQ struct {
	LowFreq  int `json:"lowFreq"`
	LowGain  int `json:"lowGain"` // -12..12
	HighFreq int `json:"highFreq"`
	HighGain int `json:"highGain"` // -12..12
}

type Arpeggio struct {
	On             bool                `json:"on"`
	Latch          bool                `json:"latch"`
	Target         enums.ArpTarget     `json:"target"`
	KeySync        bool                `json:"keySync"`
	Type           enums.ArpType       `json:"type"`
	Range          int                 `json:"range"` // octaves, 1..4
	Tempo          int                 `json:"tempo"` // BPM, 20..300
	Gate           float64             `json:"gate"`
	Resolution     enums.ArpResolution `json:"resolution"`
	Swing          int                 `json:"swing"`          // -100..100
	TriggerLength  int                 `json:"triggerLength"`  // 1..8
	TriggerPattern int                 `json:"triggerPattern"` // step bit mask
}

// Patch is one program. The embedded Timbre is timbre 1; Timbre2 is only
// meaningful in Layer mode.
type Patch struct {
	Name      string          `json:"name"`
	VoiceMode enums.VoiceMode `json:"voiceMode"`
	Timbre
	Timbre2        *Timbre  `json:"timbre2,omitempty"`
	ModFX          ModFX    `json:"modFx"`
	Delay          Delay    `json:"delayFx"`
	EQ             EQ       `json:"eq"`
	Arp            Arpeggio `json:"arp"`
	KeyboardOctave int      `json:"keyboardOctave"` // -3..3
}

func initTimbre() Timbre {
	return Timbre{
		Voice: Voice{Assign: enums.AssignMode_Poly},
		Osc1:  Oscillator1{Wave: enums.OSC1Wave_Saw},
		Osc2:  Oscillator2{Wave: enums.OSC2Wave_Saw, Mod: enums.OSC2Mod_Off, Tune: 10},
		Mixer: Mixer{Osc1: 1},
		Filter: Filter{
			Type:      enums.FilterType_24LPF,
			Cutoff:    127,
			Resonance: 0.05,
		},
		FilterEG: Envelope{A: 0.01, D: 0.5, S: 0.5, R: 0.5},
		Amp:      Amp{Level: 1},
		AmpEG:    Envelope{A: 0.01, D: 0.5, S: 1, R: 0.1},
		LFO1:     LFO{Wave: enums.LFOWave_Triangle, Rate: 5},
		LFO2:     LFO{Wave: enums.LFOWave_Triangle, Rate: 2},
		VPatch: [4]VirtualPatch{
			{Src: enums.ModSource_LFO1, Dest: enums.ModDest_Cutoff},
			{Src: enums.ModSource_EG1, Dest: enums.ModDest_Pitch},
			{Src: enums.ModSource_LFO2, Dest: enums.ModDest_Amp},
			{Src: enums.ModSource_EG2, Dest: enums.ModDest_OSC2Pitch},
		},
	}
}

// New returns the Init Program.
func New() *Patch {
	return &Patch{
		Name:      "Init Program",
		VoiceMode: enums.VoiceMode_Single,
		Timbre:    initTimbre(),
		ModFX:     ModFX{Type: enums.ModFXType_ChorusFlanger, Speed: 0.1},
		Delay:     Delay{Time: 0.3, Depth: 0.3, Type: enums.DelayType_Stereo},
		EQ:        EQ{LowFreq: 64, HighFreq: 64},
		Arp: Arpeggio{
			Target:         enums.ArpTarget_Both,
			Type:           enums.ArpType_Up,
			Range:          1,
			Tempo:          120,
			Gate:           0.5,
			Resolution:     enums.ArpResolution_1_16,
			TriggerLength:  8,
			TriggerPattern: 0xFF,
		},
	}
}

// FromJSON reads a patch over the Init Program, so absent keys keep their defaults.
func FromJSON(b []byte) (*Patch, error) {
	p := New()
	t2 := initTimbre()
	p.Timbre2 = &t2
	if err := json.Unmarshal(b, p); err != nil {
		return nil, errors.Wrap(err, "invalid patch JSON")
	}
	var keys struct {
		Timbre2 json.RawMessage `json:"timbre2"`
	}
	if err := json.Unmarshal(b, &keys); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(keys.Timbre2) == 0 || bytes.Equal(keys.Timbre2, []byte("null")) {
		p.Timbre2 = nil
	}
	return p, nil
}

func (p *Patch) Clone() *Patch {
	c := *p
	if p.Timbre2 != nil {
		t := *p.Timbre2
		c.Timbre2 = &t
	}
	return &c
}

// Timbres returns the timbres the program actually plays.
func (p *Patch) Timbres() []*Timbre {
	if p.VoiceMode == enums.VoiceMode_Layer && p.Timbre2 != nil {
		return []*Timbre{&p.Timbre, p.Timbre2}
	}
	return []*Timbre{&p.Timbre}
}

// ModIntensity returns the intensity of the first virtual patch routing src to dest.
func (t *Timbre) ModIntensity(src enums.ModSource, dest enums.ModDest) (int, bool) {
	for _, vp := range t.VPatch {
		if vp.Src == src && vp.Dest == dest {
			return vp.Intensity, true
		}
	}
	return 0, false
}

// LFO1PitchMod is the LFO1 to pitch depth in cents.
func (t *Timbre) LFO1PitchMod() int {
	i, _ := t.ModIntensity(enums.ModSource_LFO1, enums.ModDest_Pitch)
	return i * 10
}

// LFO1FilterMod is the LFO1 to cutoff depth in the units of Filter.EnvAmount.
func (t *Timbre) LFO1FilterMod() int {
	i, _ := t.ModIntensity(enums.ModSource_LFO1, enums.ModDest_Cutoff)
	return i * 100
}

// LFO2AmpMod is the LFO2 to amp depth, -1..1.
func (t *Timbre) LFO2AmpMod() float64 {
	i, _ := t.ModIntensity(enums.ModSource_LFO2, enums.ModDest_Amp)
	return float64(i) / 63
}

func (t *Timbre) LFO2PitchMod() int {
	i, _ := t.ModIntensity(enums.ModSource_LFO2, enums.ModDest_Pitch)
	return i * 10
}
