package enums

type ModFXType int

const (
	ModFXType_ChorusFlanger ModFXType = iota
	ModFXType_Ensemble
	ModFXType_Phaser
)

var modFXTypes = &table{
	kind:    "mod fx type",
	names:   []string{"Chorus/Flanger", "Ensemble", "Phaser"},
	aliases: map[string]int{"chorus": 0, "flanger": 0, "choflg": 0, "ens": 1},
}

func (t ModFXType) String() string                { return modFXTypes.name(int(t)) }
func (t ModFXType) Valid() bool                   { return modFXTypes.valid(int(t)) }
func (t ModFXType) MarshalJSON() ([]byte, error)  { return modFXTypes.marshal(int(t)) }
func (t *ModFXType) UnmarshalJSON(b []byte) error { return unmarshalInto(modFXTypes, b, (*int)(t)) }

type DelayType int

const (
	DelayType_Stereo DelayType = iota
	DelayType_Cross
	DelayType_LR
)

var delayTypes = &table{
	kind:  "delay type",
	names: []string{"StereoDelay", "CrossDelay", "L/R Delay"},
	aliases: map[string]int{
		"stereo": 0, "cross": 1, "lr": 2, "l/r": 2, "leftright": 2,
	},
}

func (t DelayType) String() string                { return delayTypes.name(int(t)) }
func (t DelayType) Valid() bool                   { return delayTypes.valid(int(t)) }
func (t DelayType) MarshalJSON() ([]byte, error)  { return delayTypes.marshal(int(t)) }
func (t *DelayType) UnmarshalJSON(b []byte) error { return unmarshalInto(delayTypes, b, (*int)(t)) }
