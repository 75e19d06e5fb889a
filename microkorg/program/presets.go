package program

import (
	"strings"

	"github.com/AnEntrypoint/patchify/microkorg/enums"
	"github.com/pkg/errors"
)

type preset struct {
	name  string
	build func() *Patch
}

var presets = []preset{
	{"Init Program", New},
	{"Fat Bass", fatBass},
	{"Sweeping Pad", sweepingPad},
	{"Unison Lead", unisonLead},
	{"Vox Choir", voxChoir},
}

func PresetNames() []string {
	result := make([]string, len(presets))
	for i, p := range presets {
		result[i] = p.name
	}
	return result
}

// Preset returns a fresh copy of the named factory preset. Names match case-insensitively.
func Preset(name string) (*Patch, error) {
	for _, p := range presets {
		if strings.EqualFold(p.name, strings.TrimSpace(name)) {
			return p.build(), nil
		}
	}
	return nil, errors.Errorf("unknown preset %q", name)
}

func fatBass() *Patch {
	p := New()
	p.Name = "Fat Bass"
	p.Voice.Assign = enums.AssignMode_Mono
	p.Voice.Portamento = 0.05
	p.Pitch.Transpose = -12
	p.Osc2.Wave = enums.OSC2Wave_Square
	p.Mixer = Mixer{Osc1: 1, Osc2: 0.8, Noise: 0.05}
	p.Filter = Filter{Type: enums.FilterType_24LPF, Cutoff: 40, Resonance: 0.4, EnvAmount: 2500}
	p.FilterEG = Envelope{A: 0.02, D: 0.4, S: 0.1, R: 0.3}
	p.Amp.Dist = true
	p.AmpEG = Envelope{A: 0.01, D: 0.3, S: 0.8, R: 0.2}
	p.LFO1.Rate = 0.5
	p.LFO2 = LFO{Wave: enums.LFOWave_Square, Rate: 5}
	p.VPatch = [4]VirtualPatch{
		{Src: enums.ModSource_LFO2, Dest: enums.ModDest_Pitch, Intensity: 5},
		{Src: enums.ModSource_EG1, Dest: enums.ModDest_OSC2Pitch, Intensity: 10},
		{Src: enums.ModSource_LFO1, Dest: enums.ModDest_Cutoff, Intensity: 1},
		{Src: enums.ModSource_Velocity, Dest: enums.ModDest_Amp},
	}
	p.ModFX = ModFX{Type: enums.ModFXType_ChorusFlanger, Speed: 0.25, Depth: 0.4}
	p.Delay = Delay{Time: 0.1, Depth: 0.1, Type: enums.DelayType_Stereo}
	p.EQ.LowGain = 5
	return p
}

func sweepingPad() *Patch {
	p := New()
	p.Name = "Sweeping Pad"
	p.Osc1 = Oscillator1{Wave: enums.OSC1Wave_DWGS, Control2: 24, DWGS: 12}
	p.Osc2.Tune = 12
	p.Mixer = Mixer{Osc1: 0.7, Osc2: 0.7, Noise: 0.1}
	p.Filter = Filter{Type: enums.FilterType_12LPF, Cutoff: 60, Resonance: 0.15, EnvAmount: 4000}
	p.FilterEG = Envelope{A: 0.4, D: 0.6, S: 0.6, R: 0.5}
	p.Amp.Level = 0.8
	p.AmpEG = Envelope{A: 0.3, D: 0.4, S: 0.8, R: 0.4}
	p.LFO1 = LFO{Wave: enums.LFOWave_SampleHold, Rate: 0.2}
	p.LFO2.Rate = 1.5
	p.VPatch = [4]VirtualPatch{
		{Src: enums.ModSource_LFO1, Dest: enums.ModDest_Cutoff, Intensity: 20},
		{Src: enums.ModSource_EG2, Dest: enums.ModDest_Cutoff, Intensity: -15},
		{Src: enums.ModSource_LFO2, Dest: enums.ModDest_Pitch, Intensity: 2},
		{Src: enums.ModSource_ModWheel, Dest: enums.ModDest_LFO2Freq, Intensity: 30},
	}
	p.ModFX = ModFX{Type: enums.ModFXType_Ensemble, Speed: 0.08, Depth: 0.8}
	p.Delay = Delay{Time: 0.4, Depth: 0.5, Type: enums.DelayType_Cross}
	p.EQ.LowGain = -2
	p.EQ.HighGain = 4
	p.Arp.Tempo = 90
	p.Arp.Gate = 0.8
	return p
}

func unisonLead() *Patch {
	p := New()
	p.Name = "Unison Lead"
	p.Voice.Assign = enums.AssignMode_Unison
	p.Voice.Portamento = 0.02
	p.Voice.UnisonDetune = 10
	p.Pitch.Transpose = 12
	p.Osc1.Wave = enums.OSC1Wave_Square
	p.Osc2 = Oscillator2{Wave: enums.OSC2Wave_Saw, Mod: enums.OSC2Mod_Ring, Tune: 15}
	p.Mixer = Mixer{Osc1: 1, Osc2: 0.6}
	p.Filter = Filter{Type: enums.FilterType_12BPF, Cutoff: 80, Resonance: 0.25, EnvAmount: 3000}
	p.FilterEG = Envelope{A: 0.01, D: 0.06, S: 0.2, R: 0.06}
	p.Amp.Dist = true
	p.AmpEG = Envelope{A: 0, D: 0.04, S: 0.5, R: 0.02}
	p.LFO1.Rate = 6
	p.LFO2.Rate = 4
	p.VPatch = [4]VirtualPatch{
		{Src: enums.ModSource_LFO2, Dest: enums.ModDest_Cutoff, Intensity: 30},
		{Src: enums.ModSource_LFO1, Dest: enums.ModDest_Pitch, Intensity: 2},
		{Src: enums.ModSource_PitchBend, Dest: enums.ModDest_OSC2Pitch, Intensity: 12},
		{Src: enums.ModSource_KbdTrack, Dest: enums.ModDest_Cutoff, Intensity: 20},
	}
	p.ModFX = ModFX{Type: enums.ModFXType_Phaser, Speed: 0.5, Depth: 0.2}
	p.Delay = Delay{Time: 0.25, Depth: 0.4, Type: enums.DelayType_Stereo}
	p.EQ.HighGain = 2
	p.Arp = Arpeggio{
		On:             true,
		Type:           enums.ArpType_Alt1,
		Range:          2,
		Tempo:          130,
		Gate:           0.5,
		Resolution:     enums.ArpResolution_1_16,
		TriggerLength:  8,
		TriggerPattern: 0xFF,
	}
	return p
}

func voxChoir() *Patch {
	p := New()
	p.Name = "Vox Choir"
	p.VoiceMode = enums.VoiceMode_Vocoder
	p.Osc1.Wave = enums.OSC1Wave_Vox
	p.Mixer = Mixer{Osc1: 0.9, Noise: 0.2}
	p.Filter.Cutoff = 90
	p.AmpEG = Envelope{A: 0.2, D: 0.5, S: 0.9, R: 0.3}
	p.Voice.EG2Reset = true
	p.ModFX = ModFX{Type: enums.ModFXType_Ensemble, Speed: 0.3, Depth: 0.6}
	p.Delay = Delay{Sync: true, TimeBase: 7, Time: 0.5, Depth: 0.35, Type: enums.DelayType_LR}
	p.KeyboardOctave = 1
	return p
}
