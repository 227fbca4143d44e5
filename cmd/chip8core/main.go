// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/chip8core/cpu"
	"github.com/ezrec/chip8core/emulator"
	"github.com/ezrec/chip8core/internal"
)

// Calls a doubling subroutine twice; v0 ends up as 45.
const demo = `
start:
	call double
	call double
	halt

.org 0x100
double:
	add v0 v1
	add v0 v1
	return
`

// options are the parsed command line settings.
type options struct {
	compile     string
	entry       uint
	list        bool
	disassemble bool
	verbose     bool
	preset      map[int]uint8
	predefine   map[string]string
}

// parseArgs parses the command line into options.
func parseArgs(fs *flag.FlagSet, args []string) (opts options, err error) {
	opts.preset = map[int]uint8{}
	opts.predefine = map[string]string{}

	fs.StringVar(&opts.compile, "c", "", ".asm file to compile (default: built-in demo)")
	fs.UintVar(&opts.entry, "e", 0, "Entry point, if the program has no 'start' label")
	fs.Func("r", "Register preset N=V (repeatable)", func(arg string) (err error) {
		index, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%v: expected N=V", arg)
		}
		n, err := strconv.ParseUint(index, 0, 8)
		if err != nil {
			return
		}
		v, err := strconv.ParseUint(value, 0, 8)
		if err != nil {
			return
		}
		opts.preset[int(n)] = uint8(v)
		return
	})
	fs.Func("D", "Predefine NAME=VALUE (repeatable)", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("%v: expected NAME=VALUE", arg)
		}
		opts.predefine[name] = value
		return nil
	})
	fs.BoolVar(&opts.list, "l", false, "List predefined equates, do not execute")
	fs.BoolVar(&opts.disassemble, "d", false, "Disassemble the program, do not execute")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose mode")

	err = fs.Parse(args)
	if err != nil {
		return
	}

	if fs.NArg() != 0 {
		err = fmt.Errorf("unknown arguments: %v", fs.Args())
		return
	}

	return
}

func main() {
	opts, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opts.verbose
	emu.Entry = uint16(opts.entry)
	emu.Preset = opts.preset

	if len(opts.compile) == 0 && len(opts.preset) == 0 {
		emu.Preset[0] = 5
		emu.Preset[1] = 10
	}

	defines := internal.Sorted2(emu.Defines())
	if opts.list {
		for key, value := range defines {
			fmt.Printf("%v=%v\n", key, value)
		}
		return
	}

	asm := &cpu.Assembler{Verbose: opts.verbose}
	for key, value := range defines {
		asm.Predefine(key, value)
	}
	for key, value := range opts.predefine {
		asm.Predefine(key, value)
	}

	var source io.Reader = strings.NewReader(demo)
	name := "demo"
	if len(opts.compile) != 0 {
		inf, err := os.Open(opts.compile)
		if err != nil {
			log.Fatalf("%v: %v", opts.compile, err)
		}
		defer inf.Close()
		source = inf
		name = opts.compile
	}

	prog, err := asm.Parse(source)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	if opts.disassemble {
		for address, code := range prog.Codes() {
			fmt.Printf("%03x: %04x  %v\n", address, uint16(code), code)
		}
		return
	}

	emu.Program = prog
	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	err = emu.Run()
	if err != nil {
		fmt.Fprint(os.Stderr, emu.Cpu.String())
		log.Fatalf("%v: %v", name, err)
	}

	for n := range cpu.REGISTER_COUNT {
		fmt.Printf("v%x=%d\n", n, emu.Cpu.ReadRegister(n))
	}
}
