package cpu

import (
	"iter"
	"maps"
)

// Program is an assembled listing, ready to be loaded into memory.
type Program struct {
	Opcodes []Opcode
	Label   map[string]int // Label addresses.
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the opcode, and the word index within it, that covers address.
func (prog *Program) Debug(address uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(address) >= op.Address && int(address) < op.Address+op.Size() {
			index := (int(address) - op.Address) / WORD_SIZE
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  index,
			}
			break
		}
	}

	return
}

// Entry returns the address of label, if defined.
func (prog *Program) Entry(label string) (address uint16, ok bool) {
	value, ok := prog.Label[label]
	if ok {
		address = uint16(value)
	}
	return
}

// Labels iterates over all of the labels and their addresses.
func (prog *Program) Labels() iter.Seq2[string, int] {
	return maps.All(prog.Label)
}

// Codes iterates over every instruction word, by address.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	return func(yield func(address uint16, code Code) bool) {
		for _, op := range prog.Opcodes {
			address := uint16(op.Address)
			for n, code := range op.Codes {
				if !yield(address+uint16(n*WORD_SIZE), code) {
					return
				}
			}
		}
	}
}

// Load writes every instruction word of the program into the CPU memory.
func (prog *Program) Load(cpu *Cpu) (err error) {
	for address, code := range prog.Codes() {
		err = cpu.WriteInstruction(address, uint16(code))
		if err != nil {
			return
		}
	}

	return
}
