package enums

import "fmt"

// Function is the function code following the model ID in a Korg exclusive message.
type Function byte

const (
	Function_CurrentProgram Function = 0x40
	Function_AllPrograms    Function = 0x4C
)

func (f Function) String() string {
	switch f {
	case Function_CurrentProgram:
		return "CurrentProgramDataDump(0x40)"
	case Function_AllPrograms:
		return "AllProgramDataDump(0x4C)"
	}
	return fmt.Sprintf("Function(0x%02X)", byte(f))
}

func (f Function) Supported() bool {
	return f == Function_CurrentProgram || f == Function_AllPrograms
}
