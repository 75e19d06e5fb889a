package program

import (
	"github.com/AnEntrypoint/patchify/microkorg/enums"
	pb "github.com/AnEntrypoint/patchify/pb/microkorg"
)

func (e Envelope) ToPB() *pb.Envelope {
	return &pb.Envelope{A: e.A, D: e.D, S: e.S, R: e.R}
}

func (l LFO) ToPB() *pb.LFO {
	return &pb.LFO{
		Wave:      uint32(l.Wave),
		Rate:      l.Rate,
		KeySync:   uint32(l.KeySync),
		TempoSync: l.TempoSync,
		SyncNote:  uint32(l.SyncNote),
	}
}

// ToPB converts the timbre to its protocol buffer form.
func (t *Timbre) ToPB() *pb.Timbre {
	result := &pb.Timbre{
		Assign:       uint32(t.Voice.Assign),
		Portamento:   t.Voice.Portamento,
		UnisonDetune: uint32(t.Voice.UnisonDetune),
		Eg1Reset:     t.Voice.EG1Reset,
		Eg2Reset:     t.Voice.EG2Reset,
		Trigger:      uint32(t.Voice.Trigger),

		Transpose: int32(t.Pitch.Transpose),
		Tune:      int32(t.Pitch.Tune),
		BendRange: int32(t.Pitch.BendRange),
		Vibrato:   int32(t.Pitch.Vibrato),

		Osc1Wave:     uint32(t.Osc1.Wave),
		Osc1Control1: uint32(t.Osc1.Control1),
		Osc1Control2: uint32(t.Osc1.Control2),
		Osc1Dwgs:     uint32(t.Osc1.DWGS),
		Osc2Wave:     uint32(t.Osc2.Wave),
		Osc2Mod:      uint32(t.Osc2.Mod),
		Osc2Semitone: int32(t.Osc2.Semitone),
		Osc2Tune:     int32(t.Osc2.Tune),

		MixerOsc1:  t.Mixer.Osc1,
		MixerOsc2:  t.Mixer.Osc2,
		MixerNoise: t.Mixer.Noise,

		FilterType:      uint32(t.Filter.Type),
		FilterCutoff:    uint32(t.Filter.Cutoff),
		FilterResonance: t.Filter.Resonance,
		FilterEnvAmount: int32(t.Filter.EnvAmount),
		FilterKeyTrack:  int32(t.Filter.KeyTrack),
		FilterEg:        t.FilterEG.ToPB(),

		AmpLevel:         t.Amp.Level,
		AmpPan:           int32(t.Amp.Pan),
		AmpDist:          t.Amp.Dist,
		AmpVelocitySense: int32(t.Amp.VelocitySense),
		AmpKeyTrack:      int32(t.Amp.KeyTrack),
		AmpEg:            t.AmpEG.ToPB(),

		Lfo1:   t.LFO1.ToPB(),
		Lfo2:   t.LFO2.ToPB(),
		VPatch: make([]*pb.VirtualPatch, len(t.VPatch)),
	}
	for i, v := range t.VPatch {
		result.VPatch[i] = &pb.VirtualPatch{
			Src:       uint32(v.Src),
			Dest:      uint32(v.Dest),
			Intensity: int32(v.Intensity),
		}
	}
	return result
}

// ToPB converts the program to its protocol buffer form. Timbre 2 is only
// written in Layer mode.
func (p *Patch) ToPB() *pb.Patch {
	result := &pb.Patch{
		Name:          p.Name,
		VoiceMode:     uint32(p.VoiceMode),
		Timbre1:       p.Timbre.ToPB(),
		ModFxType:     uint32(p.ModFX.Type),
		ModFxSpeed:    p.ModFX.Speed,
		ModFxDepth:    p.ModFX.Depth,
		DelaySync:     p.Delay.Sync,
		DelayTimeBase: uint32(p.Delay.TimeBase),
		DelayTime:     p.Delay.Time,
		DelayDepth:    p.Delay.Depth,
		DelayType:     uint32(p.Delay.Type),
		EqLowFreq:     uint32(p.EQ.LowFreq),
		EqLowGain:     int32(p.EQ.LowGain),
		EqHighFreq:    uint32(p.EQ.HighFreq),
		EqHighGain:    int32(p.EQ.HighGain),
		Arp: &pb.Arpeggio{
			On:             p.Arp.On,
			Latch:          p.Arp.Latch,
			Target:         uint32(p.Arp.Target),
			KeySync:        p.Arp.KeySync,
			Type:           uint32(p.Arp.Type),
			Range:          uint32(p.Arp.Range),
			Tempo:          uint32(p.Arp.Tempo),
			Gate:           p.Arp.Gate,
			Resolution:     uint32(p.Arp.Resolution),
			Swing:          int32(p.Arp.Swing),
			TriggerLength:  uint32(p.Arp.TriggerLength),
			TriggerPattern: uint32(p.Arp.TriggerPattern),
		},
		KeyboardOctave: int32(p.KeyboardOctave),
	}
	if p.Timbre2 != nil && p.VoiceMode == enums.VoiceMode_Layer {
		result.Timbre2 = p.Timbre2.ToPB()
	}
	return result
}

// ToPB converts the bank to its protocol buffer form.
func (b *Bank) ToPB() *pb.Bank {
	result := &pb.Bank{
		Programs: make([]*pb.Patch, len(b.Programs)),
	}
	for i, p := range b.Programs {
		if p == nil {
			p = New()
		}
		result.Programs[i] = p.ToPB()
	}
	return result
}
