package enums

type LFOWave int

const (
	LFOWave_Saw LFOWave = iota
	LFOWave_Square
	LFOWave_Triangle
	LFOWave_SampleHold
)

var lfoWaves = &table{
	kind:  "lfo wave",
	names: []string{"Saw", "Square", "Triangle", "S/H"},
	aliases: map[string]int{
		"sawtooth": 0, "squ": 1, "tri": 2,
		"samplehold": 3, "sampleandhold": 3, "sh": 3, "sine": 3, "sin": 3,
	},
}

func (w LFOWave) String() string                { return lfoWaves.name(int(w)) }
func (w LFOWave) Valid() bool                   { return lfoWaves.valid(int(w)) }
func (w LFOWave) MarshalJSON() ([]byte, error)  { return lfoWaves.marshal(int(w)) }
func (w *LFOWave) UnmarshalJSON(b []byte) error { return unmarshalInto(lfoWaves, b, (*int)(w)) }

type LFOKeySync int

const (
	LFOKeySync_Off LFOKeySync = iota
	LFOKeySync_Timbre
	LFOKeySync_Voice
)

var lfoKeySyncs = &table{
	kind:  "lfo key sync",
	names: []string{"Off", "Timbre", "Voice"},
}

func (k LFOKeySync) String() string                { return lfoKeySyncs.name(int(k)) }
func (k LFOKeySync) Valid() bool                   { return lfoKeySyncs.valid(int(k)) }
func (k LFOKeySync) MarshalJSON() ([]byte, error)  { return lfoKeySyncs.marshal(int(k)) }
func (k *LFOKeySync) UnmarshalJSON(b []byte) error { return unmarshalInto(lfoKeySyncs, b, (*int)(k)) }

// ModSource is the source of a virtual patch slot.
type ModSource int

const (
	ModSource_EG1 ModSource = iota
	ModSource_EG2
	ModSource_LFO1
	ModSource_LFO2
	ModSource_Velocity
	ModSource_KbdTrack
	ModSource_PitchBend
	ModSource_ModWheel
)

var modSources = &table{
	kind:  "mod source",
	names: []string{"EG1", "EG2", "LFO1", "LFO2", "Velocity", "KbdTrack", "PitchBend", "ModWheel"},
	aliases: map[string]int{
		"vel": 4, "keytrack": 5, "kbdtrk": 5, "bend": 6, "mod": 7, "modulation": 7,
	},
}

func (s ModSource) String() string                { return modSources.name(int(s)) }
func (s ModSource) Valid() bool                   { return modSources.valid(int(s)) }
func (s ModSource) MarshalJSON() ([]byte, error)  { return modSources.marshal(int(s)) }
func (s *ModSource) UnmarshalJSON(b []byte) error { return unmarshalInto(modSources, b, (*int)(s)) }

// ModDest is the destination of a virtual patch slot.
type ModDest int

const (
	ModDest_Pitch ModDest = iota
	ModDest_OSC2Pitch
	ModDest_OSC1Ctrl1
	ModDest_NoiseLevel
	ModDest_Cutoff
	ModDest_Amp
	ModDest_Pan
	ModDest_LFO2Freq
)

var modDests = &table{
	kind:  "mod destination",
	names: []string{"Pitch", "OSC2Pitch", "OSC1Ctrl1", "NoiseLevel", "Cutoff", "Amp", "Pan", "LFO2Freq"},
	aliases: map[string]int{
		"osc2tune": 1, "noise": 3, "filter": 4, "amplevel": 5, "lfo2rate": 7,
	},
}

func (d ModDest) String() string                { return modDests.name(int(d)) }
func (d ModDest) Valid() bool                   { return modDests.valid(int(d)) }
func (d ModDest) MarshalJSON() ([]byte, error)  { return modDests.marshal(int(d)) }
func (d *ModDest) UnmarshalJSON(b []byte) error { return unmarshalInto(modDests, b, (*int)(d)) }
