package program

import (
	"github.com/AnEntrypoint/patchify/microkorg/bitstream"
	"github.com/AnEntrypoint/patchify/microkorg/enums"
	"github.com/AnEntrypoint/patchify/microkorg/log"
	"github.com/AnEntrypoint/patchify/microkorg/util"
	"github.com/pkg/errors"
)

type enumeration interface {
	~int
	Valid() bool
	String() string
}

// enumOr converts a wire index, substituting def when it is outside the table.
func enumOr[T enumeration](field string, w uint32, def T) T {
	v := T(w)
	if !v.Valid() {
		log.Debugf("%s: index %d out of range, using %s", field, w, def)
		return def
	}
	return v
}

// Decode reads one program from the first 256 bytes of data. Longer input is
// allowed; the rest is ignored.
func Decode(data []byte) (*Patch, error) {
	if len(data) < RecordSize {
		return nil, errors.Wrapf(ErrTruncatedRecord, "expected %d-byte program record, got %d", RecordSize, len(data))
	}
	r := bitstream.NewReader(data[:RecordSize])
	p := &Patch{}

	name := make([]byte, NameSize)
	for i := range name {
		name[i] = byte(r.Read(8))
	}
	p.Name = util.TrimName(name)
	if p.Name == "" {
		p.Name = DefaultName
	}
	log.Debugf("program %q", p.Name)
	log.Enter()
	defer log.Leave()

	p.readHeader(r)
	log.Debugf("header done at byte %d, voice mode %s", r.Pos()/8, p.VoiceMode)

	vocoder := p.VoiceMode == enums.VoiceMode_Vocoder
	p.Timbre = readTimbre(r, vocoder)
	if p.VoiceMode == enums.VoiceMode_Layer {
		t2 := readTimbre(r, false)
		p.Timbre2 = &t2
	} else {
		r.Skip(TimbreSize * 8)
	}
	r.Skip(16)

	if err := r.Err(); err != nil {
		return nil, errors.Wrapf(err, "program %q", p.Name)
	}
	return p, nil
}

func (p *Patch) readHeader(r *bitstream.Reader) {
	//     | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
	// +12 |               -               |
	// +13 |               -               |
	// +14 |         -         |TrigLen - 1|
	// +15 |          Trig Pattern         |
	// +16 |   -   | Voice |       -       |
	// +17 |               -               |
	// +18 |            - (60)             |
	// +19 |Syn|     -     |   Time Base   |
	// +20 |          Delay Time           |
	// +21 |          Delay Depth          |
	// +22 |          Delay Type           |
	// +23 |          ModFX Speed          |
	// +24 |          ModFX Depth          |
	// +25 |          ModFX Type           |
	// +26 |         EQ Hi Freq            |
	// +27 |         EQ Hi Gain            |
	// +28 |         EQ Lo Freq            |
	// +29 |         EQ Lo Gain            |
	// +30 |     Arp Tempo (16 bits)       |
	// +32 |On |Lat|Target |     -     |KSy|
	// +33 |     Type      |  Range - 1    |
	// +34 |           Arp Gate            |
	// +35 |        Arp Resolution         |
	// +36 |        Arp Swing (int8)       |
	// +37 |     Keyboard Octave (int8)    |
	r.Skip(16)
	r.Skip(5)
	p.Arp.TriggerLength = int(r.Read(3)) + 1
	p.Arp.TriggerPattern = int(r.Read(8))
	r.Skip(2)
	p.VoiceMode = enumOr("voice mode", r.Read(2), enums.VoiceMode_Single)
	r.Skip(12)
	r.Skip(8)

	p.Delay.Sync = r.ReadBit()
	r.Skip(3)
	p.Delay.TimeBase = int(r.Read(4))
	p.Delay.Time = util.Normalize(r.Read(8), 1)
	p.Delay.Depth = util.Normalize(r.Read(8), 1)
	p.Delay.Type = enumOr("delay type", r.Read(8), enums.DelayType_Stereo)

	p.ModFX.Speed = util.Normalize(r.Read(8), 1)
	p.ModFX.Depth = util.Normalize(r.Read(8), 1)
	p.ModFX.Type = enumOr("mod fx type", r.Read(8), enums.ModFXType_ChorusFlanger)

	p.EQ.HighFreq = int(r.Read(8))
	p.EQ.HighGain = util.Unbias(r.Read(8))
	p.EQ.LowFreq = int(r.Read(8))
	p.EQ.LowGain = util.Unbias(r.Read(8))

	p.Arp.Tempo = int(r.Read(16))
	if p.Arp.Tempo == 0 {
		p.Arp.Tempo = 120
	}
	p.Arp.On = r.ReadBit()
	p.Arp.Latch = r.ReadBit()
	p.Arp.Target = enumOr("arp target", r.Read(2), enums.ArpTarget_Both)
	r.Skip(3)
	p.Arp.KeySync = r.ReadBit()
	p.Arp.Type = enumOr("arp type", r.Read(4), enums.ArpType_Up)
	p.Arp.Range = int(r.Read(4)) + 1
	p.Arp.Gate = util.Normalize(r.Read(8), 1)
	p.Arp.Resolution = enumOr("arp resolution", r.Read(8), enums.ArpResolution_1_24)
	p.Arp.Swing = util.WireToInt8(r.Read(8))
	p.KeyboardOctave = util.WireToInt8(r.Read(8))
}

func readTimbre(r *bitstream.Reader, vocoder bool) Timbre {
	t := Timbre{}

	//    | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
	// +0 |       MIDI channel (-1)       |
	// +1 |Assign |R2 |R1 |Trg|     -     |   R1 absent for vocoder programs
	r.Skip(8)
	t.Voice.Assign = enumOr("assign mode", r.Read(2), enums.AssignMode_Mono)
	t.Voice.EG2Reset = r.ReadBit()
	if !vocoder {
		t.Voice.EG1Reset = r.ReadBit()
	}
	t.Voice.Trigger = enumOr("trigger mode", r.Read(1), enums.TriggerMode_Single)
	r.Align()

	// +2 .. +6: unison detune, tune, bend range, transpose, vibrato
	t.Voice.UnisonDetune = int(r.Read(8))
	t.Pitch.Tune = util.Unbias(r.Read(8))
	t.Pitch.BendRange = util.Unbias(r.Read(8))
	t.Pitch.Transpose = util.Unbias(r.Read(8))
	t.Pitch.Vibrato = util.Unbias(r.Read(8))

	// +7 .. +11: osc1 wave, control 1, control 2, DWGS, -
	t.Osc1.Wave = enumOr("osc1 wave", r.Read(8), enums.OSC1Wave_Saw)
	t.Osc1.Control1 = int(r.Read(8))
	t.Osc1.Control2 = int(r.Read(8))
	t.Osc1.DWGS = int(r.Read(8))
	r.Skip(8)

	//     | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
	// +12 |   -   |  Mod  |   -   | Wave  |
	// +13 |           Semitone            |
	// +14 |             Tune              |
	// +15 | - |        Portamento         |
	r.Skip(2)
	t.Osc2.Mod = enumOr("osc2 mod", r.Read(2), enums.OSC2Mod_Off)
	r.Skip(2)
	t.Osc2.Wave = enumOr("osc2 wave", r.Read(2), enums.OSC2Wave_Saw)
	t.Osc2.Semitone = util.Unbias(r.Read(8))
	t.Osc2.Tune = util.Unbias(r.Read(8))
	r.Skip(1)
	t.Voice.Portamento = util.Normalize(r.Read(7), 1)

	t.Mixer.Osc1 = util.Normalize(r.Read(8), 1)
	t.Mixer.Osc2 = util.Normalize(r.Read(8), 1)
	t.Mixer.Noise = util.Normalize(r.Read(8), 1)

	// +19 .. +24: type, cutoff, resonance, EG1 intensity, - (64), key track
	t.Filter.Type = enumOr("filter type", r.Read(8), enums.FilterType_24LPF)
	t.Filter.Cutoff = int(r.Read(8))
	t.Filter.Resonance = util.Normalize(r.Read(8), 1)
	t.Filter.EnvAmount = util.Unbias(r.Read(8)) * 100
	r.Skip(8)
	t.Filter.KeyTrack = util.Unbias(r.Read(8))

	//     | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
	// +25 |             Level             |
	// +26 |              Pan              |
	// +27 |             -             |Dst|
	// +28 |        Velocity Sense         |
	// +29 |           Key Track           |
	t.Amp.Level = util.Normalize(r.Read(8), 1)
	t.Amp.Pan = util.Unbias(r.Read(8))
	r.Skip(7)
	t.Amp.Dist = r.ReadBit()
	t.Amp.VelocitySense = util.Unbias(r.Read(8))
	t.Amp.KeyTrack = util.Unbias(r.Read(8))

	t.FilterEG = readEnvelope(r)
	t.AmpEG = readEnvelope(r)

	t.LFO1 = readLFO(r, "lfo1")
	t.LFO2 = readLFO(r, "lfo2")

	//     | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
	// +44 |     Dest      |      Src      |  x4
	// +45 |           Intensity           |
	for i := range t.VPatch {
		vp := &t.VPatch[i]
		vp.Dest = enumOr("vpatch dest", r.Read(4), enums.ModDest_Pitch)
		vp.Src = enumOr("vpatch src", r.Read(4), enums.ModSource_EG1)
		vp.Intensity = util.Clamp(util.Unbias(r.Read(8)), -63, 63)
	}

	r.Skip((TimbreSize - timbreParamSize) * 8)
	return t
}

func readEnvelope(r *bitstream.Reader) Envelope {
	return Envelope{
		A: util.Normalize(r.Read(8), 1),
		D: util.Normalize(r.Read(8), 1),
		S: util.Normalize(r.Read(8), 1),
		R: util.Normalize(r.Read(8), 1),
	}
}

func readLFO(r *bitstream.Reader, field string) LFO {
	//    | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
	// +0 |   -   |KeySync|   -   | Wave  |
	// +1 |           Frequency           |
	// +2 |TS |   -   |    Sync Note      |
	l := LFO{}
	r.Skip(2)
	l.KeySync = enumOr(field+" key sync", r.Read(2), enums.LFOKeySync_Off)
	r.Skip(2)
	l.Wave = enumOr(field+" wave", r.Read(2), enums.LFOWave_Triangle)
	l.Rate = util.Normalize(r.Read(8), 20)
	l.TempoSync = r.ReadBit()
	r.Skip(2)
	l.SyncNote = int(r.Read(5))
	return l
}
