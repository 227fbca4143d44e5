// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/chip8core/cpu"
	"github.com/ezrec/chip8core/internal"
)

const (
	ENTRY_LABEL = "start" // Label of the program entry point, if present.
)

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Preset map[int]uint8 // Register values preset on reset.
	Entry  uint16        // Entry point used when the program has no ENTRY_LABEL.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
		Preset:  map[int]uint8{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"ENTRY": fmt.Sprintf("%#x", emu.Entry),
	}

	return internal.Concat2(maps.All(defines),
		emu.Cpu.Defines(),
	)
}

// Reset the CPU, load the program, preset the registers, and move
// the program counter to the entry point.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	err = emu.Program.Load(emu.Cpu)
	if err != nil {
		return
	}

	for index, value := range emu.Preset {
		err = emu.Cpu.WriteRegister(index, value)
		if err != nil {
			err = &ErrRegister{Index: index, Err: err}
			return
		}
	}

	entry, ok := emu.Program.Entry(ENTRY_LABEL)
	if !ok {
		entry = emu.Entry
	}

	err = emu.Cpu.SetProgramCounter(entry)
	if err != nil {
		return
	}

	emu.Cpu.State = cpu.STATE_RUNNING

	if emu.Verbose {
		log.Printf("emulator: entry 0x%03x", entry)
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.ProgramCounter())
}

// Code returns the instruction code at the program counter.
func (emu *Emulator) Code() cpu.Code {
	for address, code := range emu.Program.Codes() {
		if emu.Cpu.ProgramCounter() == address {
			return code
		}
	}

	return cpu.Code(0)
}

// LineNo returns the source line number for the instruction at the program counter.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.ProgramCounter())
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Cpu.State == cpu.STATE_HALTED {
		done = true
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	address := emu.Cpu.ProgramCounter()
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			emu.Cpu.State = cpu.STATE_HALTED
			err = &ErrRuntime{LineNo: lineno, Address: address, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.State == cpu.STATE_HALTED

	return
}

// Run ticks the emulator until the program halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
