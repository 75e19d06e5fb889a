package enums

type ArpType int

const (
	ArpType_Up ArpType = iota
	ArpType_Down
	ArpType_Alt1
	ArpType_Alt2
	ArpType_Random
	ArpType_Trigger
)

var arpTypes = &table{
	kind:    "arpeggio type",
	names:   []string{"Up", "Down", "Alt1", "Alt2", "Random", "Trigger"},
	aliases: map[string]int{"alt": 2, "updown": 2, "rnd": 4, "trig": 5},
}

func (t ArpType) String() string                { return arpTypes.name(int(t)) }
func (t ArpType) Valid() bool                   { return arpTypes.valid(int(t)) }
func (t ArpType) MarshalJSON() ([]byte, error)  { return arpTypes.marshal(int(t)) }
func (t *ArpType) UnmarshalJSON(b []byte) error { return unmarshalInto(arpTypes, b, (*int)(t)) }

type ArpTarget int

const (
	ArpTarget_Both ArpTarget = iota
	ArpTarget_Timbre1
	ArpTarget_Timbre2
)

var arpTargets = &table{
	kind:    "arpeggio target",
	names:   []string{"Both", "Timbre1", "Timbre2"},
	aliases: map[string]int{"all": 0, "t1": 1, "t2": 2},
}

func (t ArpTarget) String() string                { return arpTargets.name(int(t)) }
func (t ArpTarget) Valid() bool                   { return arpTargets.valid(int(t)) }
func (t ArpTarget) MarshalJSON() ([]byte, error)  { return arpTargets.marshal(int(t)) }
func (t *ArpTarget) UnmarshalJSON(b []byte) error { return unmarshalInto(arpTargets, b, (*int)(t)) }

// ArpResolution is the step length of the arpeggiator as a note fraction.
type ArpResolution int

const (
	ArpResolution_1_24 ArpResolution = iota
	ArpResolution_1_16
	ArpResolution_1_12
	ArpResolution_1_8
	ArpResolution_1_6
	ArpResolution_1_4
)

var arpResolutions = &table{
	kind:  "arpeggio resolution",
	names: []string{"1/24", "1/16", "1/12", "1/8", "1/6", "1/4"},
}

func (r ArpResolution) String() string                { return arpResolutions.name(int(r)) }
func (r ArpResolution) Valid() bool                   { return arpResolutions.valid(int(r)) }
func (r ArpResolution) MarshalJSON() ([]byte, error)  { return arpResolutions.marshal(int(r)) }
func (r *ArpResolution) UnmarshalJSON(b []byte) error { return unmarshalInto(arpResolutions, b, (*int)(r)) }
