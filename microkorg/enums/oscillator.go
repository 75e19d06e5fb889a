package enums

type OSC1Wave int

const (
	OSC1Wave_Saw OSC1Wave = iota
	OSC1Wave_Square
	OSC1Wave_Triangle
	OSC1Wave_Sine
	OSC1Wave_Vox
	OSC1Wave_DWGS
	OSC1Wave_Noise
	OSC1Wave_AudioIn
)

var osc1Waves = &table{
	kind:  "osc1 wave",
	names: []string{"Saw", "Square", "Triangle", "Sine", "Vox", "DWGS", "Noise", "AudioIn"},
	aliases: map[string]int{
		"sawtooth": 0, "squ": 1, "tri": 2, "sin": 3, "audio": 7,
	},
}

func (w OSC1Wave) String() string                { return osc1Waves.name(int(w)) }
func (w OSC1Wave) Valid() bool                   { return osc1Waves.valid(int(w)) }
func (w OSC1Wave) MarshalJSON() ([]byte, error)  { return osc1Waves.marshal(int(w)) }
func (w *OSC1Wave) UnmarshalJSON(b []byte) error { return unmarshalInto(osc1Waves, b, (*int)(w)) }

// OSC2Wave has only three shapes; the field is 2 bits wide so index 3 can
// still show up in a dump.
type OSC2Wave int

const (
	OSC2Wave_Saw OSC2Wave = iota
	OSC2Wave_Square
	OSC2Wave_Triangle
)

var osc2Waves = &table{
	kind:    "osc2 wave",
	names:   []string{"Saw", "Square", "Triangle"},
	aliases: map[string]int{"sawtooth": 0, "squ": 1, "tri": 2},
}

func (w OSC2Wave) String() string                { return osc2Waves.name(int(w)) }
func (w OSC2Wave) Valid() bool                   { return osc2Waves.valid(int(w)) }
func (w OSC2Wave) MarshalJSON() ([]byte, error)  { return osc2Waves.marshal(int(w)) }
func (w *OSC2Wave) UnmarshalJSON(b []byte) error { return unmarshalInto(osc2Waves, b, (*int)(w)) }

type OSC2Mod int

const (
	OSC2Mod_Off OSC2Mod = iota
	OSC2Mod_Ring
	OSC2Mod_Sync
	OSC2Mod_RingSync
)

var osc2Mods = &table{
	kind:    "osc2 modulation",
	names:   []string{"Off", "Ring", "Sync", "RingSync"},
	aliases: map[string]int{"ring+sync": 3, "ringandsync": 3},
}

func (m OSC2Mod) String() string                { return osc2Mods.name(int(m)) }
func (m OSC2Mod) Valid() bool                   { return osc2Mods.valid(int(m)) }
func (m OSC2Mod) MarshalJSON() ([]byte, error)  { return osc2Mods.marshal(int(m)) }
func (m *OSC2Mod) UnmarshalJSON(b []byte) error { return unmarshalInto(osc2Mods, b, (*int)(m)) }

type FilterType int

const (
	FilterType_24LPF FilterType = iota
	FilterType_12LPF
	FilterType_12BPF
	FilterType_12HPF
)

var filterTypes = &table{
	kind:  "filter type",
	names: []string{"24LPF", "12LPF", "12BPF", "12HPF"},
	aliases: map[string]int{
		"lowpass24": 0, "lowpass12": 1, "bandpass": 2, "highpass": 3,
	},
}

func (f FilterType) String() string                { return filterTypes.name(int(f)) }
func (f FilterType) Valid() bool                   { return filterTypes.valid(int(f)) }
func (f FilterType) MarshalJSON() ([]byte, error)  { return filterTypes.marshal(int(f)) }
func (f *FilterType) UnmarshalJSON(b []byte) error { return unmarshalInto(filterTypes, b, (*int)(f)) }
