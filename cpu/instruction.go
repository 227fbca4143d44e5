package cpu

import (
	"fmt"
)

// Instruction is one entry of the dispatch table. A word is handled by the
// first entry where word&Mask == Pattern.
type Instruction struct {
	Name    string
	Mask    uint16
	Pattern uint16

	exec   func(cpu *Cpu, code Code) error
	format func(code Code) string
}

// Instructions is the ordered dispatch table.
var Instructions []Instruction

func init() {
	Instructions = []Instruction{
		{Name: "halt", Mask: 0xffff, Pattern: 0x0000,
			exec:   (*Cpu).opHalt,
			format: func(Code) string { return "halt" },
		},
		{Name: "return", Mask: 0xffff, Pattern: 0x00ee,
			exec:   (*Cpu).opReturn,
			format: func(Code) string { return "return" },
		},
		{Name: "call", Mask: 0xf000, Pattern: 0x2000,
			exec: (*Cpu).opCall,
			format: func(code Code) string {
				return fmt.Sprintf("call 0x%03x", code.NNN())
			},
		},
		{Name: "add", Mask: 0xf00f, Pattern: 0x8004,
			exec: (*Cpu).opAdd,
			format: func(code Code) string {
				return fmt.Sprintf("add v%x v%x", code.X(), code.Y())
			},
		},
	}
}

// Match returns true if the instruction handles code.
func (in *Instruction) Match(code Code) bool {
	return uint16(code)&in.Mask == in.Pattern
}

// Format returns the assembler text for code.
func (in *Instruction) Format(code Code) string {
	return in.format(code)
}

// Lookup finds the dispatch table entry for code.
func Lookup(code Code) (in *Instruction, ok bool) {
	for n := range Instructions {
		if Instructions[n].Match(code) {
			return &Instructions[n], true
		}
	}

	return
}

func (cpu *Cpu) opHalt(code Code) error {
	cpu.State = STATE_HALTED
	return nil
}

func (cpu *Cpu) opReturn(code Code) error {
	return cpu.Return()
}

func (cpu *Cpu) opCall(code Code) error {
	return cpu.Call(code.NNN())
}

func (cpu *Cpu) opAdd(code Code) error {
	cpu.addXY(code.X(), code.Y())
	return nil
}

// addXY adds vy into vx, wrapping at 8 bits, and sets vf to the carry.
// The carry is taken from the operands before either register changes,
// and vf is written last.
func (cpu *Cpu) addXY(x, y uint8) {
	sum := uint16(cpu.Register[x]) + uint16(cpu.Register[y])

	cpu.Register[x] = uint8(sum)
	if sum > 0xff {
		cpu.Register[REGISTER_FLAG] = 1
	} else {
		cpu.Register[REGISTER_FLAG] = 0
	}
}
