// Message types of microkorg.proto. They are kept in step with the .proto by
// hand; the wire layout is read from the protobuf struct tags.

package microkorg

import (
	proto "github.com/golang/protobuf/proto"
)

// Bank is a full dump of 128 programs, A.11 .. B.88.
type Bank struct {
	Programs []*Patch `protobuf:"bytes,1,rep,name=programs,proto3" json:"programs,omitempty"`
}

func (m *Bank) Reset()         { *m = Bank{} }
func (m *Bank) String() string { return proto.CompactTextString(m) }
func (*Bank) ProtoMessage()    {}

func (m *Bank) GetPrograms() []*Patch {
	if m != nil {
		return m.Programs
	}
	return nil
}

type Patch struct {
	Name           string    `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	VoiceMode      uint32    `protobuf:"varint,2,opt,name=voice_mode,json=voiceMode,proto3" json:"voice_mode,omitempty"`
	Timbre1        *Timbre   `protobuf:"bytes,3,opt,name=timbre1,proto3" json:"timbre1,omitempty"`
	Timbre2        *Timbre   `protobuf:"bytes,4,opt,name=timbre2,proto3" json:"timbre2,omitempty"`
	ModFxType      uint32    `protobuf:"varint,5,opt,name=mod_fx_type,json=modFxType,proto3" json:"mod_fx_type,omitempty"`
	ModFxSpeed     float64   `protobuf:"fixed64,6,opt,name=mod_fx_speed,json=modFxSpeed,proto3" json:"mod_fx_speed,omitempty"`
	ModFxDepth     float64   `protobuf:"fixed64,7,opt,name=mod_fx_depth,json=modFxDepth,proto3" json:"mod_fx_depth,omitempty"`
	DelaySync      bool      `protobuf:"varint,8,opt,name=delay_sync,json=delaySync,proto3" json:"delay_sync,omitempty"`
	DelayTimeBase  uint32    `protobuf:"varint,9,opt,name=delay_time_base,json=delayTimeBase,proto3" json:"delay_time_base,omitempty"`
	DelayTime      float64   `protobuf:"fixed64,10,opt,name=delay_time,json=delayTime,proto3" json:"delay_time,omitempty"`
	DelayDepth     float64   `protobuf:"fixed64,11,opt,name=delay_depth,json=delayDepth,proto3" json:"delay_depth,omitempty"`
	DelayType      uint32    `protobuf:"varint,12,opt,name=delay_type,json=delayType,proto3" json:"delay_type,omitempty"`
	EqLowFreq      uint32    `protobuf:"varint,13,opt,name=eq_low_freq,json=eqLowFreq,proto3" json:"eq_low_freq,omitempty"`
	EqLowGain      int32     `protobuf:"zigzag32,14,opt,name=eq_low_gain,json=eqLowGain,proto3" json:"eq_low_gain,omitempty"`
	EqHighFreq     uint32    `protobuf:"varint,15,opt,name=eq_high_freq,json=eqHighFreq,proto3" json:"eq_high_freq,omitempty"`
	EqHighGain     int32     `protobuf:"zigzag32,16,opt,name=eq_high_gain,json=eqHighGain,proto3" json:"eq_high_gain,omitempty"`
	Arp            *Arpeggio `protobuf:"bytes,17,opt,name=arp,proto3" json:"arp,omitempty"`
	KeyboardOctave int32     `protobuf:"zigzag32,18,opt,name=keyboard_octave,json=keyboardOctave,proto3" json:"keyboard_octave,omitempty"`
}

func (m *Patch) Reset()         { *m = Patch{} }
func (m *Patch) String() string { return proto.CompactTextString(m) }
func (*Patch) ProtoMessage()    {}

func (m *Patch) GetTimbre1() *Timbre {
	if m != nil {
		return m.Timbre1
	}
	return nil
}

func (m *Patch) GetTimbre2() *Timbre {
	if m != nil {
		return m.Timbre2
	}
	return nil
}

func (m *Patch) GetArp() *Arpeggio {
	if m != nil {
		return m.Arp
	}
	return nil
}

type Arpeggio struct {
	On             bool    `protobuf:"varint,1,opt,name=on,proto3" json:"on,omitempty"`
	Latch          bool    `protobuf:"varint,2,opt,name=latch,proto3" json:"latch,omitempty"`
	Target         uint32  `protobuf:"varint,3,opt,name=target,proto3" json:"target,omitempty"`
	KeySync        bool    `protobuf:"varint,4,opt,name=key_sync,json=keySync,proto3" json:"key_sync,omitempty"`
	Type           uint32  `protobuf:"varint,5,opt,name=type,proto3" json:"type,omitempty"`
	Range          uint32  `protobuf:"varint,6,opt,name=range,proto3" json:"range,omitempty"`
	Tempo          uint32  `protobuf:"varint,7,opt,name=tempo,proto3" json:"tempo,omitempty"`
	Gate           float64 `protobuf:"fixed64,8,opt,name=gate,proto3" json:"gate,omitempty"`
	Resolution     uint32  `protobuf:"varint,9,opt,name=resolution,proto3" json:"resolution,omitempty"`
	Swing          int32   `protobuf:"zigzag32,10,opt,name=swing,proto3" json:"swing,omitempty"`
	TriggerLength  uint32  `protobuf:"varint,11,opt,name=trigger_length,json=triggerLength,proto3" json:"trigger_length,omitempty"`
	TriggerPattern uint32  `protobuf:"varint,12,opt,name=trigger_pattern,json=triggerPattern,proto3" json:"trigger_pattern,omitempty"`
}

func (m *Arpeggio) Reset()         { *m = Arpeggio{} }
func (m *Arpeggio) String() string { return proto.CompactTextString(m) }
func (*Arpeggio) ProtoMessage()    {}

func (m *Arpeggio) GetTempo() uint32 {
	if m != nil {
		return m.Tempo
	}
	return 0
}

type Envelope struct {
	A float64 `protobuf:"fixed64,1,opt,name=a,proto3" json:"a,omitempty"`
	D float64 `protobuf:"fixed64,2,opt,name=d,proto3" json:"d,omitempty"`
	S float64 `protobuf:"fixed64,3,opt,name=s,proto3" json:"s,omitempty"`
	R float64 `protobuf:"fixed64,4,opt,name=r,proto3" json:"r,omitempty"`
}

func (m *Envelope) Reset()         { *m = Envelope{} }
func (m *Envelope) String() string { return proto.CompactTextString(m) }
func (*Envelope) ProtoMessage()    {}

type LFO struct {
	Wave      uint32  `protobuf:"varint,1,opt,name=wave,proto3" json:"wave,omitempty"`
	Rate      float64 `protobuf:"fixed64,2,opt,name=rate,proto3" json:"rate,omitempty"`
	KeySync   uint32  `protobuf:"varint,3,opt,name=key_sync,json=keySync,proto3" json:"key_sync,omitempty"`
	TempoSync bool    `protobuf:"varint,4,opt,name=tempo_sync,json=tempoSync,proto3" json:"tempo_sync,omitempty"`
	SyncNote  uint32  `protobuf:"varint,5,opt,name=sync_note,json=syncNote,proto3" json:"sync_note,omitempty"`
}

func (m *LFO) Reset()         { *m = LFO{} }
func (m *LFO) String() string { return proto.CompactTextString(m) }
func (*LFO) ProtoMessage()    {}

type VirtualPatch struct {
	Src       uint32 `protobuf:"varint,1,opt,name=src,proto3" json:"src,omitempty"`
	Dest      uint32 `protobuf:"varint,2,opt,name=dest,proto3" json:"dest,omitempty"`
	Intensity int32  `protobuf:"zigzag32,3,opt,name=intensity,proto3" json:"intensity,omitempty"`
}

func (m *VirtualPatch) Reset()         { *m = VirtualPatch{} }
func (m *VirtualPatch) String() string { return proto.CompactTextString(m) }
func (*VirtualPatch) ProtoMessage()    {}

type Timbre struct {
	Assign           uint32          `protobuf:"varint,1,opt,name=assign,proto3" json:"assign,omitempty"`
	Portamento       float64         `protobuf:"fixed64,2,opt,name=portamento,proto3" json:"portamento,omitempty"`
	UnisonDetune     uint32          `protobuf:"varint,3,opt,name=unison_detune,json=unisonDetune,proto3" json:"unison_detune,omitempty"`
	Eg1Reset         bool            `protobuf:"varint,4,opt,name=eg1_reset,json=eg1Reset,proto3" json:"eg1_reset,omitempty"`
	Eg2Reset         bool            `protobuf:"varint,5,opt,name=eg2_reset,json=eg2Reset,proto3" json:"eg2_reset,omitempty"`
	Trigger          uint32          `protobuf:"varint,6,opt,name=trigger,proto3" json:"trigger,omitempty"`
	Transpose        int32           `protobuf:"zigzag32,7,opt,name=transpose,proto3" json:"transpose,omitempty"`
	Tune             int32           `protobuf:"zigzag32,8,opt,name=tune,proto3" json:"tune,omitempty"`
	BendRange        int32           `protobuf:"zigzag32,9,opt,name=bend_range,json=bendRange,proto3" json:"bend_range,omitempty"`
	Vibrato          int32           `protobuf:"zigzag32,10,opt,name=vibrato,proto3" json:"vibrato,omitempty"`
	Osc1Wave         uint32          `protobuf:"varint,11,opt,name=osc1_wave,json=osc1Wave,proto3" json:"osc1_wave,omitempty"`
	Osc1Control1     uint32          `protobuf:"varint,12,opt,name=osc1_control1,json=osc1Control1,proto3" json:"osc1_control1,omitempty"`
	Osc1Control2     uint32          `protobuf:"varint,13,opt,name=osc1_control2,json=osc1Control2,proto3" json:"osc1_control2,omitempty"`
	Osc1Dwgs         uint32          `protobuf:"varint,14,opt,name=osc1_dwgs,json=osc1Dwgs,proto3" json:"osc1_dwgs,omitempty"`
	Osc2Wave         uint32          `protobuf:"varint,15,opt,name=osc2_wave,json=osc2Wave,proto3" json:"osc2_wave,omitempty"`
	Osc2Mod          uint32          `protobuf:"varint,16,opt,name=osc2_mod,json=osc2Mod,proto3" json:"osc2_mod,omitempty"`
	Osc2Semitone     int32           `protobuf:"zigzag32,17,opt,name=osc2_semitone,json=osc2Semitone,proto3" json:"osc2_semitone,omitempty"`
	Osc2Tune         int32           `protobuf:"zigzag32,18,opt,name=osc2_tune,json=osc2Tune,proto3" json:"osc2_tune,omitempty"`
	MixerOsc1        float64         `protobuf:"fixed64,19,opt,name=mixer_osc1,json=mixerOsc1,proto3" json:"mixer_osc1,omitempty"`
	MixerOsc2        float64         `protobuf:"fixed64,20,opt,name=mixer_osc2,json=mixerOsc2,proto3" json:"mixer_osc2,omitempty"`
	MixerNoise       float64         `protobuf:"fixed64,21,opt,name=mixer_noise,json=mixerNoise,proto3" json:"mixer_noise,omitempty"`
	FilterType       uint32          `protobuf:"varint,22,opt,name=filter_type,json=filterType,proto3" json:"filter_type,omitempty"`
	FilterCutoff     uint32          `protobuf:"varint,23,opt,name=filter_cutoff,json=filterCutoff,proto3" json:"filter_cutoff,omitempty"`
	FilterResonance  float64         `protobuf:"fixed64,24,opt,name=filter_resonance,json=filterResonance,proto3" json:"filter_resonance,omitempty"`
	FilterEnvAmount  int32           `protobuf:"zigzag32,25,opt,name=filter_env_amount,json=filterEnvAmount,proto3" json:"filter_env_amount,omitempty"`
	FilterKeyTrack   int32           `protobuf:"zigzag32,26,opt,name=filter_key_track,json=filterKeyTrack,proto3" json:"filter_key_track,omitempty"`
	FilterEg         *Envelope       `protobuf:"bytes,27,opt,name=filter_eg,json=filterEg,proto3" json:"filter_eg,omitempty"`
	AmpLevel         float64         `protobuf:"fixed64,28,opt,name=amp_level,json=ampLevel,proto3" json:"amp_level,omitempty"`
	AmpPan           int32           `protobuf:"zigzag32,29,opt,name=amp_pan,json=ampPan,proto3" json:"amp_pan,omitempty"`
	AmpDist          bool            `protobuf:"varint,30,opt,name=amp_dist,json=ampDist,proto3" json:"amp_dist,omitempty"`
	AmpVelocitySense int32           `protobuf:"zigzag32,31,opt,name=amp_velocity_sense,json=ampVelocitySense,proto3" json:"amp_velocity_sense,omitempty"`
	AmpKeyTrack      int32           `protobuf:"zigzag32,32,opt,name=amp_key_track,json=ampKeyTrack,proto3" json:"amp_key_track,omitempty"`
	AmpEg            *Envelope       `protobuf:"bytes,33,opt,name=amp_eg,json=ampEg,proto3" json:"amp_eg,omitempty"`
	Lfo1             *LFO            `protobuf:"bytes,34,opt,name=lfo1,proto3" json:"lfo1,omitempty"`
	Lfo2             *LFO            `protobuf:"bytes,35,opt,name=lfo2,proto3" json:"lfo2,omitempty"`
	VPatch           []*VirtualPatch `protobuf:"bytes,36,rep,name=v_patch,json=vPatch,proto3" json:"v_patch,omitempty"`
}

func (m *Timbre) Reset()         { *m = Timbre{} }
func (m *Timbre) String() string { return proto.CompactTextString(m) }
func (*Timbre) ProtoMessage()    {}

func (m *Timbre) GetOsc1Wave() uint32 {
	if m != nil {
		return m.Osc1Wave
	}
	return 0
}

func (m *Timbre) GetVPatch() []*VirtualPatch {
	if m != nil {
		return m.VPatch
	}
	return nil
}
