package program

import (
	"math"

	"github.com/AnEntrypoint/patchify/microkorg/bitstream"
	"github.com/AnEntrypoint/patchify/microkorg/enums"
	"github.com/AnEntrypoint/patchify/microkorg/util"
)

func enumWire[T enumeration](v, def T) uint32 {
	if !v.Valid() {
		return uint32(def)
	}
	return uint32(v)
}

func bias(v int) uint32 {
	return util.Bias(v, -64, 63)
}

func norm(v float64) uint32 {
	return util.Quantize(v, 1)
}

// Encode returns the 256-byte record for p.
func Encode(p *Patch) []byte {
	return p.Bytes()
}

// Bytes serializes the patch. Out-of-range values are clamped and invalid
// enums written as their default; the result is always RecordSize bytes.
func (p *Patch) Bytes() []byte {
	w := bitstream.NewWriterSize(RecordSize)

	name := p.Name
	if name == "" {
		name = DefaultName
	}
	for _, b := range util.PadName(name, NameSize) {
		w.Write(uint32(b), 8)
	}

	p.writeHeader(w)

	vocoder := p.VoiceMode == enums.VoiceMode_Vocoder
	p.Timbre.write(w, vocoder)
	t2 := p.Timbre2
	if t2 == nil {
		def := initTimbre()
		t2 = &def
	}
	t2.write(w, vocoder)
	w.Skip(16)

	return w.Bytes()
}

func (p *Patch) writeHeader(w *bitstream.Writer) {
	w.Skip(16)
	w.Skip(5)
	w.Write(uint32(util.Clamp(p.Arp.TriggerLength, 1, 8)-1), 3)
	w.Write(uint32(util.Clamp(p.Arp.TriggerPattern, 0, 255)), 8)
	w.Write(1, 2)
	w.Write(enumWire(p.VoiceMode, enums.VoiceMode_Single), 2)
	w.Skip(12)
	w.Write(60, 8)

	w.WriteBit(p.Delay.Sync)
	w.Skip(3)
	w.Write(uint32(util.Clamp(p.Delay.TimeBase, 0, 15)), 4)
	w.Write(norm(p.Delay.Time), 8)
	w.Write(norm(p.Delay.Depth), 8)
	w.Write(enumWire(p.Delay.Type, enums.DelayType_Stereo), 8)

	w.Write(norm(p.ModFX.Speed), 8)
	w.Write(norm(p.ModFX.Depth), 8)
	w.Write(enumWire(p.ModFX.Type, enums.ModFXType_ChorusFlanger), 8)

	w.Write(uint32(util.Clamp(p.EQ.HighFreq, 0, 127)), 8)
	w.Write(util.Bias(p.EQ.HighGain, -12, 12), 8)
	w.Write(uint32(util.Clamp(p.EQ.LowFreq, 0, 127)), 8)
	w.Write(util.Bias(p.EQ.LowGain, -12, 12), 8)

	tempo := p.Arp.Tempo
	if tempo == 0 {
		tempo = 120
	}
	w.Write(uint32(util.Clamp(tempo, 20, 300)), 16)
	w.WriteBit(p.Arp.On)
	w.WriteBit(p.Arp.Latch)
	w.Write(enumWire(p.Arp.Target, enums.ArpTarget_Both), 2)
	w.Skip(3)
	w.WriteBit(p.Arp.KeySync)
	w.Write(enumWire(p.Arp.Type, enums.ArpType_Up), 4)
	w.Write(uint32(util.Clamp(p.Arp.Range, 1, 4)-1), 4)
	w.Write(norm(p.Arp.Gate), 8)
	w.Write(enumWire(p.Arp.Resolution, enums.ArpResolution_1_24), 8)
	w.Write(util.Int8ToWire(util.Clamp(p.Arp.Swing, -100, 100)), 8)
	w.Write(util.Int8ToWire(util.Clamp(p.KeyboardOctave, -3, 3)), 8)
}

func (t *Timbre) write(w *bitstream.Writer, vocoder bool) {
	w.Write(0xFF, 8)
	w.Write(enumWire(t.Voice.Assign, enums.AssignMode_Mono), 2)
	w.WriteBit(t.Voice.EG2Reset)
	if !vocoder {
		w.WriteBit(t.Voice.EG1Reset)
	}
	w.Write(enumWire(t.Voice.Trigger, enums.TriggerMode_Single), 1)
	w.Align()

	w.Write(uint32(util.Clamp(t.Voice.UnisonDetune, 0, 99)), 8)
	w.Write(bias(t.Pitch.Tune), 8)
	w.Write(bias(t.Pitch.BendRange), 8)
	w.Write(bias(t.Pitch.Transpose), 8)
	w.Write(bias(t.Pitch.Vibrato), 8)

	w.Write(enumWire(t.Osc1.Wave, enums.OSC1Wave_Saw), 8)
	w.Write(uint32(util.Clamp(t.Osc1.Control1, 0, 127)), 8)
	w.Write(uint32(util.Clamp(t.Osc1.Control2, 0, 127)), 8)
	w.Write(uint32(util.Clamp(t.Osc1.DWGS, 0, 63)), 8)
	w.Skip(8)

	w.Skip(2)
	w.Write(enumWire(t.Osc2.Mod, enums.OSC2Mod_Off), 2)
	w.Skip(2)
	w.Write(enumWire(t.Osc2.Wave, enums.OSC2Wave_Saw), 2)
	w.Write(bias(t.Osc2.Semitone), 8)
	w.Write(bias(t.Osc2.Tune), 8)
	w.Skip(1)
	w.Write(norm(t.Voice.Portamento), 7)

	w.Write(norm(t.Mixer.Osc1), 8)
	w.Write(norm(t.Mixer.Osc2), 8)
	w.Write(norm(t.Mixer.Noise), 8)

	w.Write(enumWire(t.Filter.Type, enums.FilterType_24LPF), 8)
	w.Write(uint32(util.Clamp(t.Filter.Cutoff, 0, 127)), 8)
	w.Write(norm(t.Filter.Resonance), 8)
	w.Write(bias(int(math.Round(float64(t.Filter.EnvAmount)/100))), 8)
	w.Write(64, 8)
	w.Write(bias(t.Filter.KeyTrack), 8)

	w.Write(norm(t.Amp.Level), 8)
	w.Write(bias(t.Amp.Pan), 8)
	w.Skip(7)
	w.WriteBit(t.Amp.Dist)
	w.Write(bias(t.Amp.VelocitySense), 8)
	w.Write(bias(t.Amp.KeyTrack), 8)

	t.FilterEG.write(w)
	t.AmpEG.write(w)

	t.LFO1.write(w)
	t.LFO2.write(w)

	for _, vp := range t.VPatch {
		w.Write(enumWire(vp.Dest, enums.ModDest_Pitch), 4)
		w.Write(enumWire(vp.Src, enums.ModSource_EG1), 4)
		w.Write(util.Bias(vp.Intensity, -63, 63), 8)
	}

	w.Skip((TimbreSize - timbreParamSize) * 8)
}

func (e *Envelope) write(w *bitstream.Writer) {
	w.Write(norm(e.A), 8)
	w.Write(norm(e.D), 8)
	w.Write(norm(e.S), 8)
	w.Write(norm(e.R), 8)
}

func (l *LFO) write(w *bitstream.Writer) {
	w.Skip(2)
	w.Write(enumWire(l.KeySync, enums.LFOKeySync_Off), 2)
	w.Skip(2)
	w.Write(enumWire(l.Wave, enums.LFOWave_Triangle), 2)
	w.Write(util.Quantize(l.Rate, 20), 8)
	w.WriteBit(l.TempoSync)
	w.Skip(2)
	w.Write(uint32(util.Clamp(l.SyncNote, 0, 31)), 5)
}
