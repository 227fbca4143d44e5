package cpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strconv"
)

// State is the run state of the fetch/decode/dispatch loop.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_HALTED  = State(0) // halted
	STATE_RUNNING = State(1) // running
)

// Cpu is the simulation context for the interpreter.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   [MEMORY_SIZE]byte     // Unified code and data memory.
	Register [REGISTER_COUNT]uint8 // Register bank, v0-vf.
	Stack    Stack                 // Return address stack.
	State    State                 // Run state.
	pc       uint16                // Address of the next instruction word.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new zero initialized CPU.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears memory, registers and the stack.
// - Zeros the program counter and tick counter.
// - Leaves the CPU halted.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.Register[:])
	cpu.Stack.Reset()
	cpu.State = STATE_HALTED
	cpu.pc = 0
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"state",
		"v0", "v1", "v2", "v3", "v4", "v5", "v6", "v7",
		"v8", "v9", "va", "vb", "vc", "vd", "ve", "vf",
		"sp",
		"stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%03X", cpu.pc)
		case "state":
			strval = cpu.State.String()
		case "sp":
			strval = fmt.Sprintf("%d", cpu.Stack.Depth())
		case "stack":
			val, ok := cpu.Stack.Peek()
			if ok {
				strval = fmt.Sprintf("%03X", val)
			} else {
				strval = "---"
			}
		default:
			index, _ := strconv.ParseUint(reg[1:], 16, 8)
			strval = fmt.Sprintf("%02X", cpu.Register[index])
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// WriteInstruction stores word at address, high byte first.
func (cpu *Cpu) WriteInstruction(address uint16, word uint16) (err error) {
	if !validAddress(address) {
		err = ErrAddressInvalid
		return
	}

	binary.BigEndian.PutUint16(cpu.Memory[address:], word)

	return
}

// ReadInstruction returns the big-endian word at address.
func (cpu *Cpu) ReadInstruction(address uint16) (word uint16, err error) {
	if !validAddress(address) {
		err = ErrAddressInvalid
		return
	}

	word = binary.BigEndian.Uint16(cpu.Memory[address:])

	return
}

// ProgramCounter returns the address of the next instruction word.
func (cpu *Cpu) ProgramCounter() uint16 {
	return cpu.pc
}

// SetProgramCounter moves the program counter to an even, in-bounds address.
func (cpu *Cpu) SetProgramCounter(value uint16) (err error) {
	if !validProgramCounter(value) {
		err = ErrProgramCounter
		return
	}

	cpu.pc = value

	return
}

// WriteRegister sets register index to value.
func (cpu *Cpu) WriteRegister(index int, value uint8) (err error) {
	if index < 0 || index >= len(cpu.Register) {
		err = ErrRegisterInvalid
		return
	}

	cpu.Register[index] = value

	return
}

// ReadRegister returns the value of register index, which must be in range.
func (cpu *Cpu) ReadRegister(index int) uint8 {
	return cpu.Register[index]
}

// Call pushes the program counter and jumps to address.
func (cpu *Cpu) Call(address uint16) (err error) {
	if !validProgramCounter(address) {
		err = ErrProgramCounter
		return
	}

	if !cpu.Stack.Push(cpu.pc) {
		err = ErrStackOverflow
		return
	}

	cpu.pc = address

	return
}

// Return pops the most recent return address into the program counter.
func (cpu *Cpu) Return() (err error) {
	address, ok := cpu.Stack.Peek()
	if !ok {
		err = ErrStackUnderflow
		return
	}

	if !validProgramCounter(address) {
		err = ErrProgramCounter
		return
	}

	cpu.Stack.Pop()
	cpu.pc = address

	return
}

// FetchCode reads the instruction word at the program counter, and
// advances the program counter past it.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if !validProgramCounter(cpu.pc) {
		err = ErrProgramCounter
		return
	}

	word, err := cpu.ReadInstruction(cpu.pc)
	if err != nil {
		return
	}

	cpu.pc += WORD_SIZE
	code = Code(word)

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	cpu.Ticks += 1

	return
}

// Execute executes a single decoded instruction. The program counter
// must already be past the instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%03x: %v", cpu.pc-WORD_SIZE, code)
	}

	in, ok := Lookup(code)
	if !ok {
		err = ErrOpcodeUnimplemented
		return
	}

	err = in.exec(cpu, code)

	return
}

// Run executes instructions until a halt instruction, or an error.
// A nil return means the program halted normally. On error the CPU
// is left halted.
func (cpu *Cpu) Run() (err error) {
	cpu.State = STATE_RUNNING

	for cpu.State == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			cpu.State = STATE_HALTED
			if cpu.Verbose {
				log.Printf("cpu: %v\n%v", err, cpu)
			}
			return
		}
	}

	return
}
