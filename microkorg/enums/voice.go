package enums

// VoiceMode is the program-level voicing. Index 1 is unused on the wire.
type VoiceMode int

const (
	VoiceMode_Single  VoiceMode = 0
	VoiceMode_Layer   VoiceMode = 2
	VoiceMode_Vocoder VoiceMode = 3
)

var voiceModes = &table{
	kind:  "voice mode",
	names: []string{"Single", "", "Layer", "Vocoder"},
}

func (m VoiceMode) String() string                { return voiceModes.name(int(m)) }
func (m VoiceMode) Valid() bool                   { return voiceModes.valid(int(m)) }
func (m VoiceMode) MarshalJSON() ([]byte, error)  { return voiceModes.marshal(int(m)) }
func (m *VoiceMode) UnmarshalJSON(b []byte) error { return unmarshalInto(voiceModes, b, (*int)(m)) }

// AssignMode is the per-timbre key assignment. It is a different field from
// VoiceMode even though editors often show both under "voice mode".
type AssignMode int

const (
	AssignMode_Mono AssignMode = iota
	AssignMode_Poly
	AssignMode_Unison
)

var assignModes = &table{
	kind:  "assign mode",
	names: []string{"Mono", "Poly", "Unison"},
}

func (m AssignMode) String() string                { return assignModes.name(int(m)) }
func (m AssignMode) Valid() bool                   { return assignModes.valid(int(m)) }
func (m AssignMode) MarshalJSON() ([]byte, error)  { return assignModes.marshal(int(m)) }
func (m *AssignMode) UnmarshalJSON(b []byte) error { return unmarshalInto(assignModes, b, (*int)(m)) }

type TriggerMode int

const (
	TriggerMode_Single TriggerMode = iota
	TriggerMode_Multi
)

var triggerModes = &table{
	kind:  "trigger mode",
	names: []string{"Single", "Multi"},
}

func (m TriggerMode) String() string                { return triggerModes.name(int(m)) }
func (m TriggerMode) Valid() bool                   { return triggerModes.valid(int(m)) }
func (m TriggerMode) MarshalJSON() ([]byte, error)  { return triggerModes.marshal(int(m)) }
func (m *TriggerMode) UnmarshalJSON(b []byte) error { return unmarshalInto(triggerModes, b, (*int)(m)) }

func unmarshalInto(t *table, b []byte, dst *int) error {
	i, err := t.unmarshal(b)
	if err != nil {
		return err
	}
	*dst = i
	return nil
}
